// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

// CORSPolicy implements the allowlist-with-fallback origin policy: listed
// origins are echoed back, everything else receives the fixed default
// origin. An unlisted origin never sees its own origin allowed.
type CORSPolicy struct {
	allowed       map[string]struct{}
	defaultOrigin string
}

// NewCORSPolicy builds a policy from the allowlist and fallback origin.
func NewCORSPolicy(origins []string, defaultOrigin string) *CORSPolicy {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}
	return &CORSPolicy{allowed: allowed, defaultOrigin: defaultOrigin}
}

// Apply sets the CORS response headers for r's origin.
func (p *CORSPolicy) Apply(w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get("Origin")
	allowOrigin := p.defaultOrigin
	if _, ok := p.allowed[origin]; ok {
		allowOrigin = origin
	}
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", allowOrigin)
	h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "authorization, apikey, content-type")
	h.Set("Vary", "Origin")
}
