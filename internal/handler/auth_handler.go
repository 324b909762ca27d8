package handler

import (
	"net/http"

	"tebaba-backend/internal/middleware"
	"tebaba-backend/internal/service"
	apperrors "tebaba-backend/pkg/app_errors"
	"tebaba-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) RegisterRoutes(api *gin.RouterGroup, authn gin.HandlerFunc) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.GET("/me", authn, h.Me)
		auth.POST("/logout", authn, h.Logout)
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := BindJSON(c, &req); err != nil {
		return
	}

	token, user, err := h.service.Login(c, req.Email, req.Password)
	if err != nil {
		h.handleError(c, err, "Login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user.Public(),
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, user.Public())
}

// Logout is informational only: tokens are stateless and expire on their
// own, nothing is invalidated server-side.
func (h *AuthHandler) Logout(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out",
		"user":    user.Email,
	})
}

func (h *AuthHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrInvalidCredentials:
		log.Warn("Login rejected")
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
