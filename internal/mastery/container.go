package mastery

import "gorm.io/gorm"

type MasteryContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewMasteryContainer(db *gorm.DB) *MasteryContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &MasteryContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
