package handlers

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	app := fiber.New()

	var offset, limit int
	app.Get("/items", func(c *fiber.Ctx) error {
		offset, limit = parsePagination(c)
		return c.SendStatus(fiber.StatusOK)
	})

	cases := []struct {
		query      string
		wantOffset int
		wantLimit  int
	}{
		{"", 0, 10},
		{"?offset=20&limit=50", 20, 50},
		{"?offset=-5&limit=0", 0, 10},
		{"?offset=abc&limit=xyz", 0, 10},
		{"?limit=5000", 0, 100},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", fmt.Sprintf("/items%s", tc.query), nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, tc.wantOffset, offset, tc.query)
		assert.Equal(t, tc.wantLimit, limit, tc.query)
	}
}
