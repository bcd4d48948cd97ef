package copilot

import (
	"context"
	"encoding/json"
)

// Action selects both the validation schema and the prompt pair. The set is
// closed; nothing outside it is ever dispatched.
type Action string

const (
	ActionIdeation     Action = "ideation"
	ActionCreation     Action = "creation"
	ActionOptimization Action = "optimization"
	ActionPlanning     Action = "planning"
	ActionProfile      Action = "profile"
)

// Request is a validated (action, fields) pair. Fields holds only declared
// fields, trimmed; absent optional fields have no entry.
type Request struct {
	Action Action
	Fields map[string]string
}

// Profile mirrors what the UI collects during onboarding. AIProfile is the
// model's profile analysis, stored opaque.
type Profile struct {
	CreatorID   string          `json:"creatorId"`
	Niche       string          `json:"niche"`
	Platform    string          `json:"platform"`
	Experience  string          `json:"experience"`
	Goal        string          `json:"goal"`
	DisplayName string          `json:"displayName,omitempty"`
	AIProfile   json.RawMessage `json:"aiProfile,omitempty"`
	UpdatedAt   int64           `json:"updatedAt,omitempty"`
}

// ProfileRepo — persistence for creator profiles. Get returns (nil, nil)
// when no profile exists.
type ProfileRepo interface {
	Get(ctx context.Context, creatorID string) (*Profile, error)
	Set(ctx context.Context, p *Profile) error
	Clear(ctx context.Context, creatorID string) error
}

// Service — one request in, one normalized result out.
type Service interface {
	Dispatch(ctx context.Context, action string, payload map[string]any) (any, error)
}
