package studyguide

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(guide *StudyGuide) error
	GetByID(id uuid.UUID) (*StudyGuide, error)
	ListByUser(userID uuid.UUID) ([]*StudyGuide, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(guide *StudyGuide) error {
	return r.db.Create(guide).Error
}

func (r *repository) GetByID(id uuid.UUID) (*StudyGuide, error) {
	var guide StudyGuide
	if err := r.db.First(&guide, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &guide, nil
}

func (r *repository) ListByUser(userID uuid.UUID) ([]*StudyGuide, error) {
	var guides []*StudyGuide
	if err := r.db.
		Select("id, user_id, certification_id, topic, focus_areas, created_at").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&guides).Error; err != nil {
		return nil, err
	}
	return guides, nil
}
