package copilot

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/api/copilot", h.HandleCopilot)
	r.Get("/api/profile/{creatorID}", h.HandleGetProfile)
	r.Put("/api/profile/{creatorID}", h.HandleSetProfile)
	r.Delete("/api/profile/{creatorID}", h.HandleClearProfile)
}
