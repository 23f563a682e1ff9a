package certification

import "gorm.io/gorm"

type CertificationContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewCertificationContainer(db *gorm.DB) *CertificationContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &CertificationContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
