package gamification

import (
	"net/http"

	"github.com/certlab/certprep-lambda/internal/auth"
	"github.com/certlab/certprep-lambda/internal/config"
	"github.com/google/uuid"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	userID := uuid.MustParse(claims.UserID)

	stats, err := h.service.GetStats(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to load game stats")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	streak, err := h.service.StudyStreak(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to compute study streak")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"stats":        stats,
		"study_streak": streak,
	})
}

func (h *Handler) ListBadges(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	userID := uuid.MustParse(claims.UserID)

	earned, err := h.service.ListUserBadges(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to list user badges")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	preview, err := h.service.BadgeProgress(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to compute badge progress")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"earned":      earned,
		"in_progress": preview,
	})
}

func (h *Handler) MarkNotified(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	userID := uuid.MustParse(claims.UserID)

	if err := h.service.MarkNotified(r.Context(), userID); err != nil {
		log.WithError(err).Error("Failed to mark badges as notified")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "badges marked as notified",
	})
}
