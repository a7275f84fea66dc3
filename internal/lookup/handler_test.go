package lookup

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hallRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(setupHallService(t))

	r := gin.New()
	group := r.Group("/api/halls")
	group.POST("", h.Create)
	group.GET("", h.List)
	group.GET("/:id", h.GetByID)
	group.PATCH("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
	return r
}

func do(r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if payload != nil {
		body, _ := json.Marshal(payload)
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHallCRUDOverHTTP(t *testing.T) {
	r := hallRouter(t)

	w := do(r, http.MethodPost, "/api/halls", gin.H{"name": "Unity Hall"})
	require.Equal(t, http.StatusCreated, w.Code)

	var created Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Unity Hall", created.Name)

	w = do(r, http.MethodGet, "/api/halls/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPatch, "/api/halls/1", gin.H{"name": "Republic Hall"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Republic Hall")

	w = do(r, http.MethodDelete, "/api/halls/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/halls/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "hall not found")
}

func TestHallDuplicateIs409(t *testing.T) {
	r := hallRouter(t)

	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/halls", gin.H{"name": "Unity Hall"}).Code)

	w := do(r, http.MethodPost, "/api/halls", gin.H{"name": "Unity Hall"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "hall name already exists")
}

func TestHallMissingNameIs400(t *testing.T) {
	r := hallRouter(t)

	w := do(r, http.MethodPost, "/api/halls", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHallBadIDIs400(t *testing.T) {
	r := hallRouter(t)

	w := do(r, http.MethodGet, "/api/halls/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHallListPaginationOverHTTP(t *testing.T) {
	r := hallRouter(t)

	for _, n := range []string{"A", "B", "C"} {
		require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/halls", gin.H{"name": n}).Code)
	}

	w := do(r, http.MethodGet, "/api/halls?offset=1&limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "B", items[0].Name)
}
