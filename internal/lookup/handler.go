package lookup

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kdanso/campus-ministry-backend/internal/auth"
	"github.com/kdanso/campus-ministry-backend/utils"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

type createRequest struct {
	Name string `json:"name" binding:"required"`
}

type updateRequest struct {
	Name *string `json:"name"`
}

// Create - POST /api/<resource>/
func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.service.Create(req.Name, actorName(c), c.GetString("client_ip"))
	if err != nil {
		if errors.Is(err, ErrNameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": h.service.Label() + " name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create " + h.service.Label()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// List - GET /api/<resource>/
func (h *Handler) List(c *gin.Context) {
	offset, limit := utils.ParsePagination(c, 100, 100)

	items, err := h.service.List(offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch " + h.service.Label() + " list"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetByID - GET /api/<resource>/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	item, err := h.service.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": h.service.Label() + " not found"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// Update - PATCH /api/<resource>/:id
func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.service.Update(id, req.Name, actorName(c), c.GetString("client_ip"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": h.service.Label() + " not found"})
		case errors.Is(err, ErrNameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": h.service.Label() + " name already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update " + h.service.Label()})
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

// Delete - DELETE /api/<resource>/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(id, actorName(c), c.GetString("client_ip")); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": h.service.Label() + " not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete " + h.service.Label()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ID"})
		return 0, false
	}
	return uint(id), true
}

func actorName(c *gin.Context) *string {
	if userVal, exists := c.Get("user"); exists {
		if user, ok := userVal.(auth.User); ok {
			return &user.Username
		}
	}
	return nil
}
