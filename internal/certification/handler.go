package certification

import (
	"errors"
	"net/http"

	"github.com/certlab/certprep-lambda/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ListCertifications(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	certs, err := h.service.ListCertifications(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list certifications")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, certs)
}

func (h *Handler) GetCertification(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid certification id", http.StatusBadRequest)
		return
	}

	cert, err := h.service.GetCertification(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrCertificationNotFound) {
			http.Error(w, "certification not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to load certification")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, cert)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid certification id", http.StatusBadRequest)
		return
	}

	categories, err := h.service.ListCategories(r.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to list categories")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, categories)
}
