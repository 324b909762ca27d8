package handler

import (
	"net/http"

	"tebaba-backend/internal/model"
	"tebaba-backend/internal/service"
	apperrors "tebaba-backend/pkg/app_errors"
	"tebaba-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ArtistHandler struct {
	service service.ArtistService
}

func NewArtistHandler(service service.ArtistService) *ArtistHandler {
	return &ArtistHandler{service: service}
}

func (h *ArtistHandler) RegisterRoutes(api *gin.RouterGroup, authn, admin gin.HandlerFunc) {
	artists := api.Group("/artists")
	{
		artists.GET("", h.List)
		artists.GET("/:id", h.Get)
		artists.POST("", authn, admin, h.Create)
		artists.PUT("/:id", authn, admin, h.Update)
		artists.DELETE("/:id", authn, admin, h.Delete)
	}
}

type ListArtistsQuery struct {
	Skip  int `form:"skip,default=0" binding:"gte=0"`
	Limit int `form:"limit,default=100" binding:"gte=1"`
}

type CreateArtistRequest struct {
	Name                    string            `json:"name" binding:"required"`
	Role                    *string           `json:"role"`
	RoleTranslations        map[string]string `json:"role_translations"`
	Description             *string           `json:"description"`
	DescriptionTranslations map[string]string `json:"description_translations"`
	ImageURL                *string           `json:"image_url"`
	EventsCount             int               `json:"events_count"`
	Badge                   *string           `json:"badge" binding:"omitempty,oneof=star fire premium"`
	Instagram               *string           `json:"instagram"`
	ShowOnWebsite           *bool             `json:"show_on_website"`
}

type UpdateArtistRequest struct {
	Name                    *string           `json:"name"`
	Role                    *string           `json:"role"`
	RoleTranslations        map[string]string `json:"role_translations"`
	Description             *string           `json:"description"`
	DescriptionTranslations map[string]string `json:"description_translations"`
	ImageURL                *string           `json:"image_url"`
	EventsCount             *int              `json:"events_count"`
	Badge                   *string           `json:"badge" binding:"omitempty,oneof=star fire premium"`
	Instagram               *string           `json:"instagram"`
	ShowOnWebsite           *bool             `json:"show_on_website"`
}

func (h *ArtistHandler) List(c *gin.Context) {
	var query ListArtistsQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}
	artists, err := h.service.List(c, query.Skip, query.Limit)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, artists)
}

func (h *ArtistHandler) Get(c *gin.Context) {
	artist, err := h.service.GetByID(c, c.Param("id"))
	if err != nil {
		h.handleError(c, err, "Get")
		return
	}
	c.JSON(http.StatusOK, artist)
}

func (h *ArtistHandler) Create(c *gin.Context) {
	var req CreateArtistRequest
	if err := BindJSON(c, &req); err != nil {
		return
	}

	showOnWebsite := true
	if req.ShowOnWebsite != nil {
		showOnWebsite = *req.ShowOnWebsite
	}

	artist := &model.Artist{
		Name:                    req.Name,
		Role:                    req.Role,
		RoleTranslations:        req.RoleTranslations,
		Description:             req.Description,
		DescriptionTranslations: req.DescriptionTranslations,
		ImageURL:                req.ImageURL,
		EventsCount:             req.EventsCount,
		Badge:                   req.Badge,
		Instagram:               req.Instagram,
		ShowOnWebsite:           showOnWebsite,
	}

	created, err := h.service.Create(c, artist)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ArtistHandler) Update(c *gin.Context) {
	var req UpdateArtistRequest
	if err := BindJSON(c, &req); err != nil {
		return
	}

	params := model.UpdateArtistParams{
		Name:                    req.Name,
		Role:                    req.Role,
		RoleTranslations:        req.RoleTranslations,
		Description:             req.Description,
		DescriptionTranslations: req.DescriptionTranslations,
		ImageURL:                req.ImageURL,
		EventsCount:             req.EventsCount,
		Badge:                   req.Badge,
		Instagram:               req.Instagram,
		ShowOnWebsite:           req.ShowOnWebsite,
	}

	updated, err := h.service.Update(c, c.Param("id"), params)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ArtistHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c, c.Param("id")); err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Artist deleted"})
}

func (h *ArtistHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrArtistNotFound:
		log.Warn("Artist not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
