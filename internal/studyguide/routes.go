package studyguide

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.GenerateGuide)
	r.Get("/", h.ListGuides)
	r.Get("/{id}", h.GetGuide)
	return r
}
