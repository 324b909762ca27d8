package handler

import (
	"net/http"
	"strconv"

	"tebaba-backend/internal/model"
	"tebaba-backend/internal/service"
	apperrors "tebaba-backend/pkg/app_errors"
	"tebaba-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(api *gin.RouterGroup, authn, admin gin.HandlerFunc) {
	events := api.Group("/events")
	{
		events.GET("/featured", h.Featured)
		events.GET("", h.List)
		events.GET("/:id", h.Get)
		events.POST("", authn, admin, h.Create)
		events.PUT("/:id", authn, admin, h.Update)
		events.DELETE("/:id", authn, admin, h.Delete)
		events.PATCH("/:id/packs/:pack_id/soldout", authn, admin, h.SetPackSoldout)
	}
}

type ListEventsQuery struct {
	Skip     int     `form:"skip,default=0" binding:"gte=0"`
	Limit    int     `form:"limit,default=100" binding:"gte=1"`
	Category *string `form:"category" binding:"omitempty,oneof=concert festival party wedding"`
	Featured *bool   `form:"featured"`
	Status   *string `form:"status" binding:"omitempty,oneof=upcoming past cancelled"`
}

type FeaturedEventsQuery struct {
	Limit int `form:"limit,default=3" binding:"gte=1"`
}

// EventArtistInput carries one lineup entry of a create/update payload.
type EventArtistInput struct {
	ArtistID  string  `json:"artist_id" binding:"required"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Order     int     `json:"order"`
}

type EventPackInput struct {
	PackID    string `json:"pack_id" binding:"required"`
	IsSoldout bool   `json:"is_soldout"`
}

type CreateEventRequest struct {
	Title                   string             `json:"title" binding:"required"`
	TitleTranslations       map[string]string  `json:"title_translations"`
	Description             string             `json:"description" binding:"required"`
	DescriptionTranslations map[string]string  `json:"description_translations"`
	Category                string             `json:"category" binding:"required,oneof=concert festival party wedding"`
	Date                    string             `json:"date" binding:"required"`
	Time                    string             `json:"time" binding:"required"`
	Location                string             `json:"location" binding:"required"`
	Address                 *string            `json:"address"`
	City                    string             `json:"city" binding:"required"`
	MapsEmbedURL            *string            `json:"maps_embed_url"`
	ImageURL                *string            `json:"image_url"`
	Capacity                *int               `json:"capacity"`
	Featured                bool               `json:"featured"`
	Status                  string             `json:"status" binding:"omitempty,oneof=upcoming past cancelled"`
	Artists                 []EventArtistInput `json:"artists"`
	Packs                   []EventPackInput   `json:"packs"`
}

// UpdateEventRequest patches only the supplied fields. Artists and Packs
// distinguish "omitted" (nil pointer, associations untouched) from
// "explicit empty list" (association set cleared).
type UpdateEventRequest struct {
	Title                   *string             `json:"title"`
	TitleTranslations       map[string]string   `json:"title_translations"`
	Description             *string             `json:"description"`
	DescriptionTranslations map[string]string   `json:"description_translations"`
	Category                *string             `json:"category" binding:"omitempty,oneof=concert festival party wedding"`
	Date                    *string             `json:"date"`
	Time                    *string             `json:"time"`
	Location                *string             `json:"location"`
	Address                 *string             `json:"address"`
	City                    *string             `json:"city"`
	MapsEmbedURL            *string             `json:"maps_embed_url"`
	ImageURL                *string             `json:"image_url"`
	Capacity                *int                `json:"capacity"`
	Featured                *bool               `json:"featured"`
	Status                  *string             `json:"status" binding:"omitempty,oneof=upcoming past cancelled"`
	Artists                 *[]EventArtistInput `json:"artists"`
	Packs                   *[]EventPackInput   `json:"packs"`
}

func (h *EventHandler) Featured(c *gin.Context) {
	var query FeaturedEventsQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}
	events, err := h.service.Featured(c, query.Limit)
	if err != nil {
		h.handleError(c, err, "Featured")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) List(c *gin.Context) {
	var query ListEventsQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}
	filter := model.EventFilter{
		Category: query.Category,
		Featured: query.Featured,
		Status:   query.Status,
		Skip:     query.Skip,
		Limit:    query.Limit,
	}
	events, err := h.service.List(c, filter)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) Get(c *gin.Context) {
	event, err := h.service.GetByID(c, c.Param("id"))
	if err != nil {
		h.handleError(c, err, "Get")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := BindJSON(c, &req); err != nil {
		return
	}

	event := &model.Event{
		Title:                   req.Title,
		TitleTranslations:       req.TitleTranslations,
		Description:             req.Description,
		DescriptionTranslations: req.DescriptionTranslations,
		Category:                req.Category,
		Date:                    req.Date,
		Time:                    req.Time,
		Location:                req.Location,
		Address:                 req.Address,
		City:                    req.City,
		MapsEmbedURL:            req.MapsEmbedURL,
		ImageURL:                req.ImageURL,
		Capacity:                req.Capacity,
		Featured:                req.Featured,
		Status:                  req.Status,
	}

	created, err := h.service.Create(c, event, artistEntries(req.Artists), packEntries(req.Packs))
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EventHandler) Update(c *gin.Context) {
	var req UpdateEventRequest
	if err := BindJSON(c, &req); err != nil {
		return
	}

	params := model.UpdateEventParams{
		Title:                   req.Title,
		TitleTranslations:       req.TitleTranslations,
		Description:             req.Description,
		DescriptionTranslations: req.DescriptionTranslations,
		Category:                req.Category,
		Date:                    req.Date,
		Time:                    req.Time,
		Location:                req.Location,
		Address:                 req.Address,
		City:                    req.City,
		MapsEmbedURL:            req.MapsEmbedURL,
		ImageURL:                req.ImageURL,
		Capacity:                req.Capacity,
		Featured:                req.Featured,
		Status:                  req.Status,
	}

	var artists []model.EventArtistEntry
	if req.Artists != nil {
		artists = artistEntries(*req.Artists)
	}
	var packs []model.EventPackEntry
	if req.Packs != nil {
		packs = packEntries(*req.Packs)
	}

	updated, err := h.service.Update(c, c.Param("id"), params, artists, packs)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c, c.Param("id")); err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}

func (h *EventHandler) SetPackSoldout(c *gin.Context) {
	soldout, err := strconv.ParseBool(c.Query("is_soldout"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Invalid query parameters",
			"detail": []gin.H{{"field": "is_soldout", "rule": "boolean"}},
		})
		return
	}

	if err := h.service.SetPackSoldout(c, c.Param("id"), c.Param("pack_id"), soldout); err != nil {
		h.handleError(c, err, "SetPackSoldout")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Soldout status updated", "is_soldout": soldout})
}

func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrEventNotFound:
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case err == apperrors.ErrEventPackNotFound:
		log.Warn("Event pack association not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event pack association not found"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// artistEntries always returns a non-nil slice: for updates, a present but
// empty list must clear the association set rather than leave it alone.
func artistEntries(inputs []EventArtistInput) []model.EventArtistEntry {
	entries := make([]model.EventArtistEntry, 0, len(inputs))
	for _, in := range inputs {
		entries = append(entries, model.EventArtistEntry{
			ArtistID:  in.ArtistID,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
			Order:     in.Order,
		})
	}
	return entries
}

func packEntries(inputs []EventPackInput) []model.EventPackEntry {
	entries := make([]model.EventPackEntry, 0, len(inputs))
	for _, in := range inputs {
		entries = append(entries, model.EventPackEntry{
			PackID:    in.PackID,
			IsSoldout: in.IsSoldout,
		})
	}
	return entries
}
