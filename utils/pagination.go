package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParsePagination reads offset/limit query params with a default and a
// hard cap on limit. Bad or negative values fall back to the defaults.
func ParsePagination(c *gin.Context, defaultLimit, maxLimit int) (int, int) {
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return offset, limit
}
