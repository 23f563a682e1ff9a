package studyguide

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/certlab/certprep-lambda/internal/config"
	"github.com/certlab/certprep-lambda/internal/progress"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var (
	ErrGuideNotFound       = errors.New("study guide not found")
	ErrEmptyTopic          = errors.New("topic is required")
	ErrProviderUnavailable = errors.New("study guide provider is not configured")
)

type Service interface {
	Generate(ctx context.Context, userID uuid.UUID, dto GenerateGuideDTO) (*StudyGuide, error)
	GetByID(ctx context.Context, userID, guideID uuid.UUID) (*StudyGuide, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*StudyGuide, error)
}

type service struct {
	repo         Repository
	provider     Provider
	progressRepo progress.Repository
}

func NewService(repo Repository, provider Provider, progressRepo progress.Repository) Service {
	return &service{repo: repo, provider: provider, progressRepo: progressRepo}
}

// Generate builds a guide for the topic, steering the model toward the
// subcategories the adaptive controller currently flags as weak.
func (s *service) Generate(ctx context.Context, userID uuid.UUID, dto GenerateGuideDTO) (*StudyGuide, error) {
	log := config.WithContext(ctx)

	if dto.Topic == "" {
		return nil, ErrEmptyTopic
	}
	if s.provider == nil {
		log.Warn("Study guide requested but no provider is configured")
		return nil, ErrProviderUnavailable
	}

	weakAreas, err := s.collectWeakAreas(userID, dto.CategoryIDs)
	if err != nil {
		log.WithError(err).Warn("Failed to load weak areas, generating without focus")
		weakAreas = nil
	}

	content, err := s.provider.GenerateGuide(ctx, systemPrompt, buildUserPrompt(dto.Topic, weakAreas))
	if err != nil {
		log.WithError(err).Error("Failed to generate study guide content")
		return nil, err
	}

	focus, err := json.Marshal(weakAreas)
	if err != nil {
		return nil, err
	}

	guide := &StudyGuide{
		ID:              uuid.New(),
		UserID:          userID,
		CertificationID: dto.CertificationID,
		Topic:           dto.Topic,
		Content:         content,
		FocusAreas:      datatypes.JSON(focus),
	}
	if err := s.repo.Create(guide); err != nil {
		log.WithError(err).Error("Failed to persist study guide")
		return nil, err
	}

	log.WithField("guide_id", guide.ID).Info("Study guide generated")
	return guide, nil
}

func (s *service) collectWeakAreas(userID uuid.UUID, categoryIDs []uuid.UUID) ([]string, error) {
	list, err := s.progressRepo.ListByUserAndCategories(userID, categoryIDs)
	if err != nil {
		return nil, err
	}

	var areas []string
	for _, p := range list {
		ids, err := p.WeakSubcategoryIDs()
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			areas = append(areas, id.String())
		}
	}
	return areas, nil
}

func (s *service) GetByID(ctx context.Context, userID, guideID uuid.UUID) (*StudyGuide, error) {
	log := config.WithContext(ctx)

	guide, err := s.repo.GetByID(guideID)
	if err != nil {
		log.WithError(err).Error("Failed to load study guide")
		return nil, err
	}
	if guide == nil || guide.UserID != userID {
		return nil, ErrGuideNotFound
	}
	return guide, nil
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID) ([]*StudyGuide, error) {
	log := config.WithContext(ctx)

	guides, err := s.repo.ListByUser(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list study guides")
		return nil, err
	}
	return guides, nil
}
