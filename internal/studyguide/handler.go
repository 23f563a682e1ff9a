package studyguide

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/certlab/certprep-lambda/internal/auth"
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

func (h *Handler) GenerateGuide(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	userID := uuid.MustParse(claims.UserID)

	var dto GenerateGuideDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	guide, err := h.service.Generate(r.Context(), userID, dto)
	if err != nil {
		if errors.Is(err, ErrEmptyTopic) {
			http.Error(w, "topic is required", http.StatusBadRequest)
			return
		}
		if errors.Is(err, ErrProviderUnavailable) {
			http.Error(w, "study guide generation is unavailable", http.StatusServiceUnavailable)
			return
		}
		log.WithError(err).Error("Failed to generate study guide")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, guide)
}

func (h *Handler) GetGuide(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	userID := uuid.MustParse(claims.UserID)

	guideID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid guide id", http.StatusBadRequest)
		return
	}

	guide, err := h.service.GetByID(r.Context(), userID, guideID)
	if err != nil {
		if errors.Is(err, ErrGuideNotFound) {
			http.Error(w, "study guide not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to load study guide")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, guide)
}

func (h *Handler) ListGuides(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	userID := uuid.MustParse(claims.UserID)

	guides, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to list study guides")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, guides)
}
