package event

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kdanso/campus-ministry-backend/internal/auth"
	"github.com/kdanso/campus-ministry-backend/utils"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ===========================
// 🎯 Create Event - POST /api/events/
func (h *Handler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	resp, err := h.Service.Create(&req, actorName(c), c.GetString("client_ip"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ===========================
// 📄 List Events - GET /api/events/
func (h *Handler) List(c *gin.Context) {
	offset, limit := utils.ParsePagination(c, 100, 100)

	events, err := h.Service.List(offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, events)
}

// ===========================
// 🔍 Get Event - GET /api/events/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch event"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ===========================
// 🛠 Update Event - PATCH /api/events/:id
func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	resp, err := h.Service.Update(id, &req, actorName(c), c.GetString("client_ip"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ===========================
// ❌ Delete Event - DELETE /api/events/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.Service.Delete(id, actorName(c), c.GetString("client_ip")); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ===========================
// ➕ Add Attendee - POST /api/events/:id/add_attendee?member_id=
func (h *Handler) AddAttendee(c *gin.Context) {
	eventID, ok := pathID(c)
	if !ok {
		return
	}

	memberID, err := strconv.Atoi(c.Query("member_id"))
	if err != nil || memberID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member_id"})
		return
	}

	err = h.Service.AddAttendee(eventID, uint(memberID), actorName(c), c.GetString("client_ip"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		case errors.Is(err, ErrMemberNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
		case errors.Is(err, ErrAlreadyAttended):
			c.JSON(http.StatusConflict, gin.H{"error": "member already attended"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add attendee"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ===========================
// Helpers

func writeServiceError(c *gin.Context, err error) {
	var lookupErr *LookupError
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
	case errors.As(err, &lookupErr):
		c.JSON(http.StatusNotFound, gin.H{"error": lookupErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
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
