package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kdanso/campus-ministry-backend/config"
	"github.com/kdanso/campus-ministry-backend/internal/auth"
)

func setupAuth(t *testing.T) (auth.Service, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&auth.User{}))

	cfg := &config.Config{JWTAccessSecret: "test-secret", JWTAccessTTLHours: 1}
	return auth.NewService(auth.NewRepository(db), cfg, nil), db
}

func protectedRouter(svc auth.Service, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{AuthMiddleware(svc)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		user := c.MustGet("user").(auth.User)
		c.JSON(http.StatusOK, gin.H{"username": user.Username})
	})
	r.GET("/protected", handlers...)
	return r
}

func loginToken(t *testing.T, svc auth.Service, username, password string) string {
	_, err := svc.Signup(auth.SignupInput{Username: username, Password: password})
	require.NoError(t, err)
	token, err := svc.Login(username, password)
	require.NoError(t, err)
	return token
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	svc, _ := setupAuth(t)
	r := protectedRouter(svc)

	token := loginToken(t, svc, "kwame", "s3cret")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "kwame")
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	svc, _ := setupAuth(t)
	r := protectedRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	svc, _ := setupAuth(t)
	r := protectedRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareBadToken(t *testing.T) {
	svc, _ := setupAuth(t)
	r := protectedRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestRequireActiveRejectsDisabledUser(t *testing.T) {
	svc, db := setupAuth(t)
	r := protectedRouter(svc, RequireActive())

	token := loginToken(t, svc, "kwame", "s3cret")
	require.NoError(t, db.Model(&auth.User{}).
		Where("username = ?", "kwame").Update("disabled", true).Error)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "inactive user")
}

func TestRequireAdminForbidsRegularUser(t *testing.T) {
	svc, _ := setupAuth(t)
	r := protectedRouter(svc, RequireAdmin())

	token := loginToken(t, svc, "kwame", "s3cret")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "admin rights required")
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	svc, db := setupAuth(t)
	r := protectedRouter(svc, RequireAdmin())

	token := loginToken(t, svc, "admin", "s3cret")
	require.NoError(t, db.Model(&auth.User{}).
		Where("username = ?", "admin").Update("is_admin", true).Error)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
