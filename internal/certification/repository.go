package certification

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	ListActive() ([]*Certification, error)
	GetByID(id uuid.UUID) (*Certification, error)
	ListCategories(certificationID uuid.UUID) ([]*Category, error)
	GetCategory(id uuid.UUID) (*Category, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListActive() ([]*Certification, error) {
	var certs []*Certification
	if err := r.db.
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&certs).Error; err != nil {
		return nil, err
	}
	return certs, nil
}

func (r *repository) GetByID(id uuid.UUID) (*Certification, error) {
	var cert Certification
	if err := r.db.
		Preload("Categories.Subcategories").
		First(&cert, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cert, nil
}

func (r *repository) ListCategories(certificationID uuid.UUID) ([]*Category, error) {
	var categories []*Category
	if err := r.db.
		Preload("Subcategories").
		Where("certification_id = ?", certificationID).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *repository) GetCategory(id uuid.UUID) (*Category, error) {
	var category Category
	if err := r.db.
		Preload("Subcategories").
		First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}
