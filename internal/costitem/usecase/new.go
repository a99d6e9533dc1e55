package usecase

import (
	"cost-item-service/internal/costitem/repository"
	"cost-item-service/pkg/log"
)

// implUseCase is the private implementation of costitem.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new cost item UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
