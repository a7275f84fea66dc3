package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ipRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuditMiddleware())
	r.GET("/ip", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("client_ip"))
	})
	return r
}

func TestClientIPFromForwardedFor(t *testing.T) {
	r := ipRouter()

	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "203.0.113.7", w.Body.String())
}

func TestClientIPFromRealIP(t *testing.T) {
	r := ipRouter()

	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.Header.Set("X-Real-Ip", "198.51.100.4")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "198.51.100.4", w.Body.String())
}

func TestClientIPFallsBackToRemoteAddr(t *testing.T) {
	r := ipRouter()

	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.RemoteAddr = "192.0.2.9:4312"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "192.0.2.9", w.Body.String())
}

func TestClientIPIgnoresGarbageForwardedFor(t *testing.T) {
	r := ipRouter()

	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.Header.Set("X-Forwarded-For", "not-an-ip")
	req.RemoteAddr = "192.0.2.9:4312"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "192.0.2.9", w.Body.String())
}
