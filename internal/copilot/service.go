package copilot

import (
	"context"
	"encoding/json"
	"log"

	"github.com/creatorly/creator-copilot/internal/ai"
)

type service struct {
	ai ai.AI
}

func NewService(aiClient ai.AI) Service {
	return &service{ai: aiClient}
}

// Dispatch runs one request through the whole chain: validate, render the
// prompt pair, call the gateway once, normalize the reply. No state is kept
// between calls and nothing is retried.
func (s *service) Dispatch(ctx context.Context, action string, payload map[string]any) (any, error) {
	req, err := Validate(action, payload)
	if err != nil {
		return nil, err
	}

	pair := Render(req)

	fields, _ := json.Marshal(req.Fields)
	log.Printf("[copilot] action=%s payload=%s", req.Action, short(string(fields)))

	raw, err := s.ai.Complete(ctx, pair.System, pair.User)
	if err != nil {
		return nil, err
	}

	log.Printf("[copilot] response received, length=%d", len(raw))

	return Normalize(raw), nil
}

func short(s string) string {
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}
