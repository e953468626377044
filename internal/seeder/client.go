package seeder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spectral-layer/arcade/internal/domain/ranking"
)

// submitResponse mirrors the /submit-score envelope.
type submitResponse struct {
	OK       bool   `json:"ok"`
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason"`
	Error    string `json:"error"`
}

// boardResponse mirrors the /wall-of-fame envelope.
type boardResponse struct {
	Frozen bool            `json:"frozen"`
	Winner *ranking.Entry  `json:"winner"`
	Top20  []ranking.Entry `json:"top20"`
}

type client struct {
	baseURL string
	http    *http.Client
}

func (c *client) submit(ctx context.Context, sub submission) (submitResponse, error) {
	body, err := json.Marshal(sub)
	if err != nil {
		return submitResponse{}, fmt.Errorf("marshaling submission: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/submit-score", bytes.NewReader(body))
	if err != nil {
		return submitResponse{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return submitResponse{}, fmt.Errorf("posting submission: %w", err)
	}
	defer resp.Body.Close()

	var out submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return submitResponse{}, fmt.Errorf("decoding response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return out, fmt.Errorf("submit returned %d: %s", resp.StatusCode, out.Error)
	}
	return out, nil
}

func (c *client) wallOfFame(ctx context.Context) (boardResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/wall-of-fame", nil)
	if err != nil {
		return boardResponse{}, fmt.Errorf("building request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return boardResponse{}, fmt.Errorf("fetching wall of fame: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return boardResponse{}, fmt.Errorf("wall-of-fame returned %d", resp.StatusCode)
	}
	var out boardResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return boardResponse{}, fmt.Errorf("decoding response: %w", err)
	}
	return out, nil
}

func (c *client) healthy(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return nil
}
