package service

import (
	"context"

	"tebaba-backend/internal/model"
	"tebaba-backend/internal/repository"

	"github.com/google/uuid"
)

type PackService interface {
	List(ctx context.Context, skip, limit int, activeOnly bool) ([]*model.Pack, error)
	GetByID(ctx context.Context, id string) (*model.Pack, error)
	Create(ctx context.Context, pack *model.Pack) (*model.Pack, error)
	Update(ctx context.Context, id string, params model.UpdatePackParams) (*model.Pack, error)
	Delete(ctx context.Context, id string) error
}

type PackServiceImpl struct {
	repo repository.PackRepository
}

func NewPackService(repo repository.PackRepository) PackService {
	return &PackServiceImpl{repo: repo}
}

func (s *PackServiceImpl) List(ctx context.Context, skip, limit int, activeOnly bool) ([]*model.Pack, error) {
	return s.repo.List(ctx, skip, limit, activeOnly)
}

func (s *PackServiceImpl) GetByID(ctx context.Context, id string) (*model.Pack, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PackServiceImpl) Create(ctx context.Context, pack *model.Pack) (*model.Pack, error) {
	if pack.ID == "" {
		pack.ID = uuid.NewString()
	}
	return s.repo.Create(ctx, pack)
}

func (s *PackServiceImpl) Update(ctx context.Context, id string, params model.UpdatePackParams) (*model.Pack, error) {
	return s.repo.Update(ctx, id, params)
}

func (s *PackServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
