package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrDuplicateRunID = errors.New("duplicate run id")
	ErrInvalidRecord  = errors.New("invalid record")
)
