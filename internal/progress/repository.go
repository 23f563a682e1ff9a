package progress

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	FindByKey(userID, categoryID uuid.UUID) (*CategoryProgress, error)
	ListByUser(userID uuid.UUID) ([]*CategoryProgress, error)
	ListByUserAndCategories(userID uuid.UUID, categoryIDs []uuid.UUID) ([]*CategoryProgress, error)
	Save(p *CategoryProgress) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByKey(userID, categoryID uuid.UUID) (*CategoryProgress, error) {
	var p CategoryProgress
	err := r.db.
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) ListByUser(userID uuid.UUID) ([]*CategoryProgress, error) {
	var list []*CategoryProgress
	if err := r.db.
		Where("user_id = ?", userID).
		Order("category_id ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) ListByUserAndCategories(userID uuid.UUID, categoryIDs []uuid.UUID) ([]*CategoryProgress, error) {
	if len(categoryIDs) == 0 {
		return nil, nil
	}
	var list []*CategoryProgress
	if err := r.db.
		Where("user_id = ? AND category_id IN ?", userID, categoryIDs).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) Save(p *CategoryProgress) error {
	return r.db.Save(p).Error
}
