package member

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
// 🎯 Create Member - POST /api/members/
func (h *Handler) Create(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	resp, err := h.Service.Create(&req, actor, c.GetString("client_ip"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ===========================
// 📄 List Members - GET /api/members/
func (h *Handler) List(c *gin.Context) {
	offset, limit := pageParams(c)

	members, err := h.Service.List(offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch members"})
		return
	}

	c.JSON(http.StatusOK, members)
}

// ===========================
// 🪪 List Member Cards - GET /api/members_cards/
func (h *Handler) ListCards(c *gin.Context) {
	offset, limit := pageParams(c)

	cards, err := h.Service.ListCards(offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch members"})
		return
	}

	c.JSON(http.StatusOK, cards)
}

// ===========================
// 🔍 Get Member - GET /api/members/:id
func (h *Handler) GetByID(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	if !canAccessMember(actor, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to access this member"})
		return
	}

	resp, err := h.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch member"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ===========================
// 🛠 Update Member - PATCH /api/members/:id
func (h *Handler) Update(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	if !canAccessMember(actor, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to modify this member"})
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	resp, err := h.Service.Update(id, &req, actor, c.GetString("client_ip"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ===========================
// ❌ Delete Member - DELETE /api/members/:id (admin only via routes)
func (h *Handler) Delete(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.Service.Delete(id, actor, c.GetString("client_ip")); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete member"})
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
		c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
	case errors.Is(err, ErrInvalidDOB):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &lookupErr):
		c.JSON(http.StatusNotFound, gin.H{"error": lookupErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func currentUser(c *gin.Context) (*auth.User, bool) {
	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return nil, false
	}

	user, ok := userVal.(auth.User)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user object"})
		return nil, false
	}

	return &user, true
}

// canAccessMember restricts non-admin callers to their own linked record
func canAccessMember(actor *auth.User, memberID uint) bool {
	if actor.IsAdmin {
		return true
	}
	return actor.MemberID != nil && *actor.MemberID == memberID
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member ID"})
		return 0, false
	}
	return uint(id), true
}

func pageParams(c *gin.Context) (int, int) {
	return utils.ParsePagination(c, 1000, 1000)
}
