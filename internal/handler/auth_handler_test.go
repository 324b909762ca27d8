package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tebaba-backend/internal/middleware"
	"tebaba-backend/internal/model"
	apperrors "tebaba-backend/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(svc *mockAuthService) *gin.Engine {
	router := gin.New()
	api := router.Group("/api")
	NewAuthHandler(svc).RegisterRoutes(api, middleware.Authenticate(svc))
	return router
}

func postLogin(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginSuccess(t *testing.T) {
	svc := new(mockAuthService)
	user := &model.User{ID: "u1", Email: "admin@example.com", Username: "admin", Role: model.RoleAdmin}
	svc.On("Login", mock.Anything, "admin@example.com", "s3cret").Return("signed-token", user, nil)

	w := postLogin(t, newAuthRouter(svc), `{"email":"admin@example.com","password":"s3cret"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "signed-token", body["access_token"])
	assert.Equal(t, "bearer", body["token_type"])
	userBody := body["user"].(map[string]any)
	assert.Equal(t, "admin@example.com", userBody["email"])
	assert.NotContains(t, w.Body.String(), "hashed_password")
	svc.AssertExpectations(t)
}

// Unknown email and wrong password must be indistinguishable in status,
// headers and body.
func TestLoginGenericRejection(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("Login", mock.Anything, "ghost@example.com", "whatever").
		Return("", nil, apperrors.ErrInvalidCredentials)
	svc.On("Login", mock.Anything, "admin@example.com", "wrong").
		Return("", nil, apperrors.ErrInvalidCredentials)
	router := newAuthRouter(svc)

	unknownUser := postLogin(t, router, `{"email":"ghost@example.com","password":"whatever"}`)
	wrongPassword := postLogin(t, router, `{"email":"admin@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, unknownUser.Body.String(), wrongPassword.Body.String())
	assert.Equal(t, unknownUser.Header().Get("WWW-Authenticate"), wrongPassword.Header().Get("WWW-Authenticate"))
	assert.Contains(t, unknownUser.Body.String(), "Incorrect email or password")
}

func TestLoginValidation(t *testing.T) {
	svc := new(mockAuthService)
	router := newAuthRouter(svc)

	missingPassword := postLogin(t, router, `{"email":"admin@example.com"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, missingPassword.Code)
	assert.Contains(t, missingPassword.Body.String(), "Password")

	badEmail := postLogin(t, router, `{"email":"not-an-email","password":"x"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, badEmail.Code)

	svc.AssertNotCalled(t, "Login")
}

func TestMeReturnsCurrentUser(t *testing.T) {
	svc := new(mockAuthService)
	user := &model.User{ID: "u1", Email: "admin@example.com", Username: "admin", Role: model.RoleAdmin}
	svc.On("CurrentUser", mock.Anything, "valid-token").Return(user, nil)
	router := newAuthRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"admin@example.com"`)
	assert.NotContains(t, w.Body.String(), "hashed_password")
}

func TestMeWithoutToken(t *testing.T) {
	svc := new(mockAuthService)
	router := newAuthRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	svc.AssertNotCalled(t, "CurrentUser")
}
