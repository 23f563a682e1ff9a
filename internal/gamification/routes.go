package gamification

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/stats", h.GetStats)
	r.Get("/badges", h.ListBadges)
	r.Post("/badges/notify", h.MarkNotified)
	return r
}
