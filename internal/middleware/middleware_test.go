package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"tebaba-backend/internal/model"
	apperrors "tebaba-backend/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
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

func protectedRouter(svc *mockAuthService, adminOnly bool) *gin.Engine {
	router := gin.New()
	handlers := []gin.HandlerFunc{Authenticate(svc)}
	if adminOnly {
		handlers = append(handlers, RequireAdmin())
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": CurrentUser(c).Email})
	})
	router.GET("/protected", handlers...)
	return router
}

func get(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthenticateMissingHeader(t *testing.T) {
	svc := new(mockAuthService)
	router := protectedRouter(svc, false)

	w := get(router, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	assert.Contains(t, w.Body.String(), "Could not validate credentials")
	svc.AssertNotCalled(t, "CurrentUser")
}

func TestAuthenticateWrongScheme(t *testing.T) {
	svc := new(mockAuthService)
	router := protectedRouter(svc, false)

	for _, header := range []string{"Basic abc123", "Bearer", "Bearer "} {
		w := get(router, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
	svc.AssertNotCalled(t, "CurrentUser")
}

// Missing header, bad token and unknown user all answer with the same body.
func TestAuthenticateUniformFailures(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("CurrentUser", mock.Anything, "bad-token").Return(nil, apperrors.ErrInvalidToken)
	router := protectedRouter(svc, false)

	missing := get(router, "")
	badToken := get(router, "Bearer bad-token")

	assert.Equal(t, missing.Code, badToken.Code)
	assert.Equal(t, missing.Body.String(), badToken.Body.String())
}

func TestAuthenticateSuccess(t *testing.T) {
	svc := new(mockAuthService)
	user := &model.User{ID: "u1", Email: "user@example.com", Role: model.RoleUser}
	svc.On("CurrentUser", mock.Anything, "good-token").Return(user, nil)
	router := protectedRouter(svc, false)

	w := get(router, "Bearer good-token")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user@example.com")
}

func TestRequireAdminForbidsNonAdmin(t *testing.T) {
	svc := new(mockAuthService)
	user := &model.User{ID: "u1", Email: "user@example.com", Role: model.RoleUser}
	svc.On("CurrentUser", mock.Anything, "good-token").Return(user, nil)
	router := protectedRouter(svc, true)

	w := get(router, "Bearer good-token")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Insufficient privileges")
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	svc := new(mockAuthService)
	admin := &model.User{ID: "u1", Email: "admin@example.com", Role: model.RoleAdmin}
	svc.On("CurrentUser", mock.Anything, "admin-token").Return(admin, nil)
	router := protectedRouter(svc, true)

	w := get(router, "Bearer admin-token")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCurrentUserWithoutAuthentication(t *testing.T) {
	router := gin.New()
	router.GET("/open", func(c *gin.Context) {
		assert.Nil(t, CurrentUser(c))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
