package service

import (
	"context"

	"tebaba-backend/internal/model"
	"tebaba-backend/internal/repository"

	"github.com/google/uuid"
)

type EventService interface {
	List(ctx context.Context, filter model.EventFilter) ([]*model.Event, error)
	// Featured returns upcoming featured events, capped at limit.
	Featured(ctx context.Context, limit int) ([]*model.Event, error)
	GetByID(ctx context.Context, id string) (*model.Event, error)
	Create(ctx context.Context, event *model.Event, artists []model.EventArtistEntry, packs []model.EventPackEntry) (*model.Event, error)
	Update(ctx context.Context, id string, params model.UpdateEventParams, artists []model.EventArtistEntry, packs []model.EventPackEntry) (*model.Event, error)
	Delete(ctx context.Context, id string) error
	SetPackSoldout(ctx context.Context, eventID, packID string, soldout bool) error
}

type EventServiceImpl struct {
	repo repository.EventRepository
}

func NewEventService(repo repository.EventRepository) EventService {
	return &EventServiceImpl{repo: repo}
}

func (s *EventServiceImpl) List(ctx context.Context, filter model.EventFilter) ([]*model.Event, error) {
	return s.repo.List(ctx, filter)
}

func (s *EventServiceImpl) Featured(ctx context.Context, limit int) ([]*model.Event, error) {
	featured := true
	status := "upcoming"
	return s.repo.List(ctx, model.EventFilter{
		Featured: &featured,
		Status:   &status,
		Limit:    limit,
	})
}

func (s *EventServiceImpl) GetByID(ctx context.Context, id string) (*model.Event, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EventServiceImpl) Create(ctx context.Context, event *model.Event, artists []model.EventArtistEntry, packs []model.EventPackEntry) (*model.Event, error) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Status == "" {
		event.Status = "upcoming"
	}
	if _, err := s.repo.Create(ctx, event, artists, packs); err != nil {
		return nil, err
	}
	// reload with associations so the response reflects skipped references
	return s.repo.FindByID(ctx, event.ID)
}

func (s *EventServiceImpl) Update(ctx context.Context, id string, params model.UpdateEventParams, artists []model.EventArtistEntry, packs []model.EventPackEntry) (*model.Event, error) {
	if err := s.repo.Update(ctx, id, params, artists, packs); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *EventServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *EventServiceImpl) SetPackSoldout(ctx context.Context, eventID, packID string, soldout bool) error {
	return s.repo.SetPackSoldout(ctx, eventID, packID, soldout)
}
