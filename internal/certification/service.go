package certification

import (
	"context"
	"errors"

	"github.com/certlab/certprep-lambda/internal/config"
	"github.com/google/uuid"
)

var ErrCertificationNotFound = errors.New("certification not found")

type Service interface {
	ListCertifications(ctx context.Context) ([]*Certification, error)
	GetCertification(ctx context.Context, id uuid.UUID) (*Certification, error)
	ListCategories(ctx context.Context, certificationID uuid.UUID) ([]*Category, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListCertifications(ctx context.Context) ([]*Certification, error) {
	log := config.WithContext(ctx)

	certs, err := s.repo.ListActive()
	if err != nil {
		log.WithError(err).Error("Failed to list certifications")
		return nil, err
	}
	return certs, nil
}

func (s *service) GetCertification(ctx context.Context, id uuid.UUID) (*Certification, error) {
	log := config.WithContext(ctx)

	cert, err := s.repo.GetByID(id)
	if err != nil {
		log.WithError(err).Error("Failed to load certification")
		return nil, err
	}
	if cert == nil {
		return nil, ErrCertificationNotFound
	}
	return cert, nil
}

func (s *service) ListCategories(ctx context.Context, certificationID uuid.UUID) ([]*Category, error) {
	log := config.WithContext(ctx)

	categories, err := s.repo.ListCategories(certificationID)
	if err != nil {
		log.WithError(err).Error("Failed to list certification categories")
		return nil, err
	}
	return categories, nil
}
