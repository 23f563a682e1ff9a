package quiz

import (
	"github.com/certlab/certprep-lambda/internal/gamification"
	"github.com/certlab/certprep-lambda/internal/mastery"
	"github.com/certlab/certprep-lambda/internal/progress"
	"gorm.io/gorm"
)

type QuizContainer struct {
	Repo    QuizRepository
	Service QuizService
	Handler *Handler
}

func NewQuizContainer(db *gorm.DB, masteryService mastery.Service, progressService progress.Service, gamificationService gamification.Service) *QuizContainer {
	repo := NewRepository(db)
	service := NewService(repo, masteryService, progressService, gamificationService)
	handler := NewHandler(service)

	return &QuizContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
