package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultOffset = 0
	defaultLimit  = 10
	maxLimit      = 100
)

// parsePagination reads offset/limit query params, clamping to sane bounds.
func parsePagination(c *fiber.Ctx) (int, int) {
	offset := defaultOffset
	if raw := c.Query("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			offset = v
		}
	}
	limit := defaultLimit
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return offset, limit
}
