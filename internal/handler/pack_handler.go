package handler

import (
	"net/http"

	"tebaba-backend/internal/model"
	"tebaba-backend/internal/service"
	apperrors "tebaba-backend/pkg/app_errors"
	"tebaba-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PackHandler struct {
	service service.PackService
}

func NewPackHandler(service service.PackService) *PackHandler {
	return &PackHandler{service: service}
}

func (h *PackHandler) RegisterRoutes(api *gin.RouterGroup, authn, admin gin.HandlerFunc) {
	packs := api.Group("/packs")
	{
		packs.GET("", h.List)
		packs.GET("/:id", h.Get)
		packs.POST("", authn, admin, h.Create)
		packs.PUT("/:id", authn, admin, h.Update)
		packs.DELETE("/:id", authn, admin, h.Delete)
	}
}

type ListPacksQuery struct {
	Skip       int  `form:"skip,default=0" binding:"gte=0"`
	Limit      int  `form:"limit,default=100" binding:"gte=1"`
	ActiveOnly bool `form:"active_only,default=true"`
}

type CreatePackRequest struct {
	Name                    string              `json:"name" binding:"required"`
	NameTranslations        map[string]string   `json:"name_translations"`
	Type                    string              `json:"type" binding:"required,oneof=standard premium vip"`
	Description             *string             `json:"description"`
	DescriptionTranslations map[string]string   `json:"description_translations"`
	Price                   decimal.Decimal     `json:"price"`
	Currency                string              `json:"currency"`
	Unit                    *string             `json:"unit"`
	Features                []string            `json:"features"`
	FeaturesTranslations    map[string][]string `json:"features_translations"`
	IsActive                *bool               `json:"is_active"`
}

type UpdatePackRequest struct {
	Name                    *string             `json:"name"`
	NameTranslations        map[string]string   `json:"name_translations"`
	Type                    *string             `json:"type" binding:"omitempty,oneof=standard premium vip"`
	Description             *string             `json:"description"`
	DescriptionTranslations map[string]string   `json:"description_translations"`
	Price                   *decimal.Decimal    `json:"price"`
	Currency                *string             `json:"currency"`
	Unit                    *string             `json:"unit"`
	Features                []string            `json:"features"`
	FeaturesTranslations    map[string][]string `json:"features_translations"`
	IsActive                *bool               `json:"is_active"`
}

func (h *PackHandler) List(c *gin.Context) {
	var query ListPacksQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}
	packs, err := h.service.List(c, query.Skip, query.Limit, query.ActiveOnly)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, packs)
}

func (h *PackHandler) Get(c *gin.Context) {
	pack, err := h.service.GetByID(c, c.Param("id"))
	if err != nil {
		h.handleError(c, err, "Get")
		return
	}
	c.JSON(http.StatusOK, pack)
}

func (h *PackHandler) Create(c *gin.Context) {
	var req CreatePackRequest
	if err := BindJSON(c, &req); err != nil {
		return
	}
	if req.Price.IsNegative() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Invalid request body",
			"detail": []gin.H{{"field": "price", "rule": "gte=0"}},
		})
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "€"
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	pack := &model.Pack{
		Name:                    req.Name,
		NameTranslations:        req.NameTranslations,
		Type:                    req.Type,
		Description:             req.Description,
		DescriptionTranslations: req.DescriptionTranslations,
		Price:                   req.Price,
		Currency:                currency,
		Unit:                    req.Unit,
		Features:                req.Features,
		FeaturesTranslations:    req.FeaturesTranslations,
		IsActive:                isActive,
	}

	created, err := h.service.Create(c, pack)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PackHandler) Update(c *gin.Context) {
	var req UpdatePackRequest
	if err := BindJSON(c, &req); err != nil {
		return
	}
	if req.Price != nil && req.Price.IsNegative() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Invalid request body",
			"detail": []gin.H{{"field": "price", "rule": "gte=0"}},
		})
		return
	}

	params := model.UpdatePackParams{
		Name:                    req.Name,
		NameTranslations:        req.NameTranslations,
		Type:                    req.Type,
		Description:             req.Description,
		DescriptionTranslations: req.DescriptionTranslations,
		Price:                   req.Price,
		Currency:                req.Currency,
		Unit:                    req.Unit,
		Features:                req.Features,
		FeaturesTranslations:    req.FeaturesTranslations,
		IsActive:                req.IsActive,
	}

	updated, err := h.service.Update(c, c.Param("id"), params)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *PackHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c, c.Param("id")); err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pack deleted"})
}

func (h *PackHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrPackNotFound:
		log.Warn("Pack not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Pack not found"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
