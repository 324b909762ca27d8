package service

import (
	"context"
	"testing"

	"tebaba-backend/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockEventRepository struct {
	mock.Mock
}

func (m *mockEventRepository) Create(ctx context.Context, event *model.Event, artists []model.EventArtistEntry, packs []model.EventPackEntry) (*model.Event, error) {
	args := m.Called(ctx, event, artists, packs)
	var created *model.Event
	if v := args.Get(0); v != nil {
		created = v.(*model.Event)
	}
	return created, args.Error(1)
}

func (m *mockEventRepository) List(ctx context.Context, filter model.EventFilter) ([]*model.Event, error) {
	args := m.Called(ctx, filter)
	var events []*model.Event
	if v := args.Get(0); v != nil {
		events = v.([]*model.Event)
	}
	return events, args.Error(1)
}

func (m *mockEventRepository) FindByID(ctx context.Context, id string) (*model.Event, error) {
	args := m.Called(ctx, id)
	var event *model.Event
	if v := args.Get(0); v != nil {
		event = v.(*model.Event)
	}
	return event, args.Error(1)
}

func (m *mockEventRepository) Update(ctx context.Context, id string, params model.UpdateEventParams, artists []model.EventArtistEntry, packs []model.EventPackEntry) error {
	return m.Called(ctx, id, params, artists, packs).Error(0)
}

func (m *mockEventRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockEventRepository) SetPackSoldout(ctx context.Context, eventID, packID string, soldout bool) error {
	return m.Called(ctx, eventID, packID, soldout).Error(0)
}

func TestEventCreateAssignsIDAndStatus(t *testing.T) {
	repo := new(mockEventRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.Event) bool {
		_, err := uuid.Parse(e.ID)
		return err == nil && e.Status == "upcoming"
	}), mock.Anything, mock.Anything).Return(&model.Event{}, nil)
	repo.On("FindByID", mock.Anything, mock.Anything).Return(&model.Event{ID: "reloaded"}, nil)
	svc := NewEventService(repo)

	created, err := svc.Create(context.Background(), &model.Event{Title: "Party"}, nil, nil)

	require.NoError(t, err)
	// the create response is the reloaded event, so skipped association
	// references never surface in it
	assert.Equal(t, "reloaded", created.ID)
	repo.AssertExpectations(t)
}

func TestEventCreateKeepsExplicitStatus(t *testing.T) {
	repo := new(mockEventRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.Event) bool {
		return e.Status == "past"
	}), mock.Anything, mock.Anything).Return(&model.Event{}, nil)
	repo.On("FindByID", mock.Anything, mock.Anything).Return(&model.Event{}, nil)
	svc := NewEventService(repo)

	_, err := svc.Create(context.Background(), &model.Event{Title: "Archive", Status: "past"}, nil, nil)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestFeaturedFilter(t *testing.T) {
	repo := new(mockEventRepository)
	repo.On("List", mock.Anything, mock.MatchedBy(func(f model.EventFilter) bool {
		return f.Featured != nil && *f.Featured &&
			f.Status != nil && *f.Status == "upcoming" &&
			f.Limit == 3 && f.Category == nil
	})).Return([]*model.Event{}, nil)
	svc := NewEventService(repo)

	_, err := svc.Featured(context.Background(), 3)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestEventUpdateReloads(t *testing.T) {
	repo := new(mockEventRepository)
	title := "Renamed"
	params := model.UpdateEventParams{Title: &title}
	repo.On("Update", mock.Anything, "e1", params, []model.EventArtistEntry(nil), []model.EventPackEntry(nil)).Return(nil)
	repo.On("FindByID", mock.Anything, "e1").Return(&model.Event{ID: "e1", Title: "Renamed"}, nil)
	svc := NewEventService(repo)

	updated, err := svc.Update(context.Background(), "e1", params, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	repo.AssertExpectations(t)
}
