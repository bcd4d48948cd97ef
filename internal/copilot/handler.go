package copilot

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"github.com/creatorly/creator-copilot/internal/ai"
)

// Caller-facing messages. Validation detail stays in the log; upstream
// failure classes each get their own status so the UI can tell a retryable
// 429 from a terminal 402.
const (
	msgInvalidInput  = "invalid input"
	msgNotConfigured = "AI service is not configured. Please try again later."
	msgRateLimited   = "AI rate limit exceeded. Please try again in a moment."
	msgQuota         = "AI credits exhausted. Please add more credits."
	msgServiceError  = "AI service error. Please try again."
)

type Handler struct {
	svc      Service
	profiles ProfileRepo
}

func NewHandler(svc Service, profiles ProfileRepo) *Handler {
	return &Handler{svc: svc, profiles: profiles}
}

// HandleCopilot — POST /api/copilot
func (h *Handler) HandleCopilot(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Action  string         `json:"action"`
		Payload map[string]any `json:"payload"`
	}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidInput)
		return
	}

	result, err := h.svc.Dispatch(r.Context(), body.Action, body.Payload)
	if err != nil {
		h.writeDispatchError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"result": result})
}

func (h *Handler) writeDispatchError(w http.ResponseWriter, err error) {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		log.Printf("[copilot] rejected: %v", vErr)
		writeError(w, http.StatusBadRequest, msgInvalidInput)
	case errors.Is(err, ai.ErrMissingCredential):
		writeError(w, http.StatusServiceUnavailable, msgNotConfigured)
	case errors.Is(err, ai.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, msgRateLimited)
	case errors.Is(err, ai.ErrQuotaExhausted):
		writeError(w, http.StatusPaymentRequired, msgQuota)
	default:
		log.Printf("[copilot] dispatch error: %v", err)
		writeError(w, http.StatusInternalServerError, msgServiceError)
	}
}

// HandleGetProfile — GET /api/profile/{creatorID}
func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	creatorID := chi.URLParam(r, "creatorID")

	p, err := h.profiles.Get(r.Context(), creatorID)
	if err != nil {
		log.Printf("[copilot] profile get error: %v", err)
		writeError(w, http.StatusInternalServerError, msgServiceError)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// HandleSetProfile — PUT /api/profile/{creatorID}
func (h *Handler) HandleSetProfile(w http.ResponseWriter, r *http.Request) {
	creatorID := chi.URLParam(r, "creatorID")

	var body Profile
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidInput)
		return
	}

	// Same bounds as the profile action; displayName is optional.
	req, err := Validate(string(ActionProfile), map[string]any{
		"niche":      body.Niche,
		"platform":   body.Platform,
		"experience": body.Experience,
		"goal":       body.Goal,
	})
	if err != nil {
		log.Printf("[copilot] profile rejected: %v", err)
		writeError(w, http.StatusBadRequest, msgInvalidInput)
		return
	}

	displayName := strings.TrimSpace(body.DisplayName)
	if utf8.RuneCountInString(displayName) > 100 {
		log.Printf("[copilot] profile rejected: field %q: %s", "displayName", ReasonFieldTooLong)
		writeError(w, http.StatusBadRequest, msgInvalidInput)
		return
	}

	p := &Profile{
		CreatorID:   creatorID,
		Niche:       req.Fields["niche"],
		Platform:    req.Fields["platform"],
		Experience:  req.Fields["experience"],
		Goal:        req.Fields["goal"],
		DisplayName: displayName,
		AIProfile:   body.AIProfile,
	}

	if err := h.profiles.Set(r.Context(), p); err != nil {
		log.Printf("[copilot] profile set error: %v", err)
		writeError(w, http.StatusInternalServerError, msgServiceError)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// HandleClearProfile — DELETE /api/profile/{creatorID}. Idempotent.
func (h *Handler) HandleClearProfile(w http.ResponseWriter, r *http.Request) {
	creatorID := chi.URLParam(r, "creatorID")

	if err := h.profiles.Clear(r.Context(), creatorID); err != nil {
		log.Printf("[copilot] profile clear error: %v", err)
		writeError(w, http.StatusInternalServerError, msgServiceError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
