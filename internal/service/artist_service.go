package service

import (
	"context"

	"tebaba-backend/internal/model"
	"tebaba-backend/internal/repository"

	"github.com/google/uuid"
)

type ArtistService interface {
	List(ctx context.Context, skip, limit int) ([]*model.Artist, error)
	GetByID(ctx context.Context, id string) (*model.Artist, error)
	Create(ctx context.Context, artist *model.Artist) (*model.Artist, error)
	Update(ctx context.Context, id string, params model.UpdateArtistParams) (*model.Artist, error)
	Delete(ctx context.Context, id string) error
}

type ArtistServiceImpl struct {
	repo repository.ArtistRepository
}

func NewArtistService(repo repository.ArtistRepository) ArtistService {
	return &ArtistServiceImpl{repo: repo}
}

func (s *ArtistServiceImpl) List(ctx context.Context, skip, limit int) ([]*model.Artist, error) {
	return s.repo.List(ctx, skip, limit)
}

func (s *ArtistServiceImpl) GetByID(ctx context.Context, id string) (*model.Artist, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ArtistServiceImpl) Create(ctx context.Context, artist *model.Artist) (*model.Artist, error) {
	if artist.ID == "" {
		artist.ID = uuid.NewString()
	}
	return s.repo.Create(ctx, artist)
}

func (s *ArtistServiceImpl) Update(ctx context.Context, id string, params model.UpdateArtistParams) (*model.Artist, error) {
	return s.repo.Update(ctx, id, params)
}

func (s *ArtistServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
