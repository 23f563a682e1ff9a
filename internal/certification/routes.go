package certification

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListCertifications)
	r.Get("/{id}", h.GetCertification)
	r.Get("/{id}/categories", h.ListCategories)
	return r
}
