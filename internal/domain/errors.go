package domain

import "errors"

var (
	// ErrNotFound indicates resource not found
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidRequest indicates invalid request
	ErrInvalidRequest = errors.New("invalid request")
	// ErrRateLimited indicates the per-session message limit was reached
	ErrRateLimited = errors.New("rate limit exceeded")
)
