package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationContext(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantOffset int
		wantLimit  int
	}{
		{"defaults", "", 0, 100},
		{"explicit values", "offset=20&limit=50", 20, 50},
		{"limit capped", "limit=500", 0, 100},
		{"zero limit allowed", "limit=0", 0, 0},
		{"negative offset reset", "offset=-3", 0, 100},
		{"negative limit reset", "limit=-1", 0, 100},
		{"garbage falls back", "offset=abc&limit=xyz", 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := paginationContext(tt.query)
			offset, limit := ParsePagination(c, 100, 100)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}
