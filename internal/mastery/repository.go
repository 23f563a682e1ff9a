package mastery

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	FindByKey(userID, categoryID, subcategoryID uuid.UUID) (*MasteryRecord, error)
	ListByUser(userID uuid.UUID) ([]*MasteryRecord, error)
	ListByUserAndCategory(userID, categoryID uuid.UUID) ([]*MasteryRecord, error)
	Create(record *MasteryRecord) error
	Update(record *MasteryRecord) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByKey(userID, categoryID, subcategoryID uuid.UUID) (*MasteryRecord, error) {
	var record MasteryRecord
	err := r.db.
		Where("user_id = ? AND category_id = ? AND subcategory_id = ?", userID, categoryID, subcategoryID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *repository) ListByUser(userID uuid.UUID) ([]*MasteryRecord, error) {
	var records []*MasteryRecord
	if err := r.db.
		Where("user_id = ?", userID).
		Order("category_id ASC, subcategory_id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository) ListByUserAndCategory(userID, categoryID uuid.UUID) ([]*MasteryRecord, error) {
	var records []*MasteryRecord
	if err := r.db.
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Order("subcategory_id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository) Create(record *MasteryRecord) error {
	return r.db.Create(record).Error
}

func (r *repository) Update(record *MasteryRecord) error {
	return r.db.Save(record).Error
}
