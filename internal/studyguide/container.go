package studyguide

import (
	"context"

	"github.com/certlab/certprep-lambda/internal/config"
	"github.com/certlab/certprep-lambda/internal/progress"
	"gorm.io/gorm"
)

type StudyGuideContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewStudyGuideContainer(db *gorm.DB, progressRepo progress.Repository) *StudyGuideContainer {
	ctx := context.Background()

	provider, err := NewGeminiProvider(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Gemini provider unavailable, study guide generation disabled")
	}

	repo := NewRepository(db)
	service := NewService(repo, provider, progressRepo)
	handler := NewHandler(service)

	return &StudyGuideContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
