package reports

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kdanso/campus-ministry-backend/internal/auth"
)

type Handler struct {
	service ReportService
}

func NewHandler(svc ReportService) *Handler {
	return &Handler{service: svc}
}

// GetMembersReport serves the members roster. Without a format param the
// rows come back as JSON; with one the response is a file download.
func (h *Handler) GetMembersReport(c *gin.Context) {
	format := c.Query("format")
	if format == "" {
		rows, err := h.service.GetMembersReport()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load members report"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": rows, "total": len(rows)})
		return
	}

	data, filename, contentType, err := h.service.ExportMembersReport(
		c.Request.Context(), format, actorName(c), c.GetString("client_ip"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}

// GetAttendanceReport serves the attendee list of one event.
func (h *Handler) GetAttendanceReport(c *gin.Context) {
	eventIDStr := c.Query("event_id")
	if eventIDStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event_id query param required"})
		return
	}
	eventID, err := strconv.ParseUint(eventIDStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event_id"})
		return
	}

	format := c.Query("format")
	if format == "" {
		rows, err := h.service.GetAttendanceReport(uint(eventID))
		if err != nil {
			if errors.Is(err, ErrEventNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load attendance report"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": rows, "total": len(rows)})
		return
	}

	data, filename, contentType, err := h.service.ExportAttendanceReport(
		c.Request.Context(), uint(eventID), format, actorName(c), c.GetString("client_ip"))
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}

func actorName(c *gin.Context) *string {
	userVal, exists := c.Get("user")
	if !exists {
		return nil
	}
	user, ok := userVal.(auth.User)
	if !ok {
		return nil
	}
	return &user.Username
}
