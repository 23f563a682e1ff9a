package mastery

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.GetBreakdown)
	r.Get("/categories/{categoryID}", h.GetCategoryMastery)
	return r
}
