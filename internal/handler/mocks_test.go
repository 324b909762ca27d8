package handler

import (
	"context"

	"tebaba-backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// passThrough stands in for the auth middlewares on routes whose test does
// not exercise authentication.
func passThrough(c *gin.Context) {
	c.Next()
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	args := m.Called(ctx, email, password)
	var user *model.User
	if v := args.Get(1); v != nil {
		user = v.(*model.User)
	}
	return args.String(0), user, args.Error(2)
}

func (m *mockAuthService) CurrentUser(ctx context.Context, rawToken string) (*model.User, error) {
	args := m.Called(ctx, rawToken)
	var user *model.User
	if v := args.Get(0); v != nil {
		user = v.(*model.User)
	}
	return user, args.Error(1)
}

type mockArtistService struct {
	mock.Mock
}

func (m *mockArtistService) List(ctx context.Context, skip, limit int) ([]*model.Artist, error) {
	args := m.Called(ctx, skip, limit)
	var artists []*model.Artist
	if v := args.Get(0); v != nil {
		artists = v.([]*model.Artist)
	}
	return artists, args.Error(1)
}

func (m *mockArtistService) GetByID(ctx context.Context, id string) (*model.Artist, error) {
	args := m.Called(ctx, id)
	var artist *model.Artist
	if v := args.Get(0); v != nil {
		artist = v.(*model.Artist)
	}
	return artist, args.Error(1)
}

func (m *mockArtistService) Create(ctx context.Context, artist *model.Artist) (*model.Artist, error) {
	args := m.Called(ctx, artist)
	var created *model.Artist
	if v := args.Get(0); v != nil {
		created = v.(*model.Artist)
	}
	return created, args.Error(1)
}

func (m *mockArtistService) Update(ctx context.Context, id string, params model.UpdateArtistParams) (*model.Artist, error) {
	args := m.Called(ctx, id, params)
	var updated *model.Artist
	if v := args.Get(0); v != nil {
		updated = v.(*model.Artist)
	}
	return updated, args.Error(1)
}

func (m *mockArtistService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockPackService struct {
	mock.Mock
}

func (m *mockPackService) List(ctx context.Context, skip, limit int, activeOnly bool) ([]*model.Pack, error) {
	args := m.Called(ctx, skip, limit, activeOnly)
	var packs []*model.Pack
	if v := args.Get(0); v != nil {
		packs = v.([]*model.Pack)
	}
	return packs, args.Error(1)
}

func (m *mockPackService) GetByID(ctx context.Context, id string) (*model.Pack, error) {
	args := m.Called(ctx, id)
	var pack *model.Pack
	if v := args.Get(0); v != nil {
		pack = v.(*model.Pack)
	}
	return pack, args.Error(1)
}

func (m *mockPackService) Create(ctx context.Context, pack *model.Pack) (*model.Pack, error) {
	args := m.Called(ctx, pack)
	var created *model.Pack
	if v := args.Get(0); v != nil {
		created = v.(*model.Pack)
	}
	return created, args.Error(1)
}

func (m *mockPackService) Update(ctx context.Context, id string, params model.UpdatePackParams) (*model.Pack, error) {
	args := m.Called(ctx, id, params)
	var updated *model.Pack
	if v := args.Get(0); v != nil {
		updated = v.(*model.Pack)
	}
	return updated, args.Error(1)
}

func (m *mockPackService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockEventService struct {
	mock.Mock
}

func (m *mockEventService) List(ctx context.Context, filter model.EventFilter) ([]*model.Event, error) {
	args := m.Called(ctx, filter)
	var events []*model.Event
	if v := args.Get(0); v != nil {
		events = v.([]*model.Event)
	}
	return events, args.Error(1)
}

func (m *mockEventService) Featured(ctx context.Context, limit int) ([]*model.Event, error) {
	args := m.Called(ctx, limit)
	var events []*model.Event
	if v := args.Get(0); v != nil {
		events = v.([]*model.Event)
	}
	return events, args.Error(1)
}

func (m *mockEventService) GetByID(ctx context.Context, id string) (*model.Event, error) {
	args := m.Called(ctx, id)
	var event *model.Event
	if v := args.Get(0); v != nil {
		event = v.(*model.Event)
	}
	return event, args.Error(1)
}

func (m *mockEventService) Create(ctx context.Context, event *model.Event, artists []model.EventArtistEntry, packs []model.EventPackEntry) (*model.Event, error) {
	args := m.Called(ctx, event, artists, packs)
	var created *model.Event
	if v := args.Get(0); v != nil {
		created = v.(*model.Event)
	}
	return created, args.Error(1)
}

func (m *mockEventService) Update(ctx context.Context, id string, params model.UpdateEventParams, artists []model.EventArtistEntry, packs []model.EventPackEntry) (*model.Event, error) {
	args := m.Called(ctx, id, params, artists, packs)
	var updated *model.Event
	if v := args.Get(0); v != nil {
		updated = v.(*model.Event)
	}
	return updated, args.Error(1)
}

func (m *mockEventService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockEventService) SetPackSoldout(ctx context.Context, eventID, packID string, soldout bool) error {
	return m.Called(ctx, eventID, packID, soldout).Error(0)
}
