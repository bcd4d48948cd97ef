package ai

import (
	"context"
	"errors"
)

// AI is the upstream gateway seen from the domain side: one system+user
// exchange in, free text out. It knows nothing about actions or schemas.
type AI interface {
	Complete(ctx context.Context, systemPrompt string, userMessage string) (string, error)
}

// Failure classes the caller is expected to distinguish. The handler maps
// each to its own HTTP status; nothing here is retried.
var (
	ErrMissingCredential = errors.New("ai: gateway credential is not configured")
	ErrRateLimited       = errors.New("ai: gateway rate limit exceeded")
	ErrQuotaExhausted    = errors.New("ai: gateway credits exhausted")
	ErrService           = errors.New("ai: gateway error")
)
