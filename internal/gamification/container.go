package gamification

import (
	"github.com/certlab/certprep-lambda/internal/mastery"
	"gorm.io/gorm"
)

type GamificationContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewGamificationContainer(db *gorm.DB, masteryRepo mastery.Repository) *GamificationContainer {
	repo := NewRepository(db)
	service := NewService(repo, masteryRepo)
	handler := NewHandler(service)

	return &GamificationContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
