package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LuisBatalla/auto-admin-portal/internal/auth"
	"github.com/LuisBatalla/auto-admin-portal/internal/models"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	authService, _ := auth.NewService()
	middleware := NewAuthMiddleware(authService)

	t.Run("valid token", func(t *testing.T) {
		user := &models.User{
			ID:       primitive.NewObjectID(),
			Username: "mecanico",
			Role:     models.RoleUser,
		}
		token, _ := authService.GenerateToken(user)

		req := httptest.NewRequest("GET", "/api/vehicles", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		handlerCalled := false
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
			claims, ok := GetUserFromContext(r.Context())
			assert.True(t, ok)
			assert.Equal(t, user.Username, claims.Username)
			assert.Equal(t, user.Role, claims.Role)
		})

		middleware.Authenticate(handler).ServeHTTP(w, req)
		assert.True(t, handlerCalled)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing authorization header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/vehicles", nil)
		w := httptest.NewRecorder()

		handlerCalled := false
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
		})

		middleware.Authenticate(handler).ServeHTTP(w, req)
		assert.False(t, handlerCalled)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/vehicles", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()

		middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("login endpoint skips auth", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/auth/login", nil)
		w := httptest.NewRecorder()

		handlerCalled := false
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
		})

		middleware.Authenticate(handler).ServeHTTP(w, req)
		assert.True(t, handlerCalled)
	})

	t.Run("register attaches claims when a valid token is sent", func(t *testing.T) {
		admin := &models.User{ID: primitive.NewObjectID(), Username: "jefe", Role: models.RoleAdmin}
		token, _ := authService.GenerateToken(admin)

		req := httptest.NewRequest("POST", "/api/auth/register", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetUserFromContext(r.Context())
			assert.True(t, ok)
			assert.True(t, claims.IsAdmin())
		})

		middleware.Authenticate(handler).ServeHTTP(w, req)
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	authService, _ := auth.NewService()
	m := NewAuthMiddleware(authService)

	callWithRole := func(role models.Role, required models.Role) *httptest.ResponseRecorder {
		user := &models.User{ID: primitive.NewObjectID(), Username: "u", Role: role}
		token, _ := authService.GenerateToken(user)

		req := httptest.NewRequest("POST", "/api/vehicles/123/archive", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		m.Authenticate(m.RequireRole(required)(inner)).ServeHTTP(w, req)
		return w
	}

	t.Run("admin passes admin-only check", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, callWithRole(models.RoleAdmin, models.RoleAdmin).Code)
	})

	t.Run("regular user rejected from admin-only check", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, callWithRole(models.RoleUser, models.RoleAdmin).Code)
	})

	t.Run("missing claims rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/vehicles/123/archive", nil)
		w := httptest.NewRecorder()
		m.RequireRole(models.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthMiddleware_RequirePermission(t *testing.T) {
	authService, _ := auth.NewService()
	m := NewAuthMiddleware(authService)

	call := func(role models.Role, action string) *httptest.ResponseRecorder {
		user := &models.User{ID: primitive.NewObjectID(), Username: "u", Role: role}
		token, _ := authService.GenerateToken(user)

		req := httptest.NewRequest("GET", "/api/export", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		m.Authenticate(m.RequirePermission(action)(inner)).ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, call(models.RoleUser, "export_data").Code)
	assert.Equal(t, http.StatusForbidden, call(models.RoleUser, "archive_vehicle").Code)
	assert.Equal(t, http.StatusOK, call(models.RoleAdmin, "archive_vehicle").Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	m := NewRateLimitMiddleware()
	limited := m.RateLimit(2, 60)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/api/vehicles", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		limited.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	req := httptest.NewRequest("GET", "/api/vehicles", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	limited.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// A different client is not affected.
	req = httptest.NewRequest("GET", "/api/vehicles", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w = httptest.NewRecorder()
	limited.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
