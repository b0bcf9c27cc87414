package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/clinic-service/internal/domain"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

func rolesTestApp(principal *Principal, allowed ...domain.StaffRole) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		if err != nil {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"error": fiber.Map{"code": domainErr.Code}})
		}
		return nil
	})
	if principal != nil {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("auth_principal", principal)
			return c.Next()
		})
	}
	app.Get("/guarded", RequireRole(allowed...), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRequireRoleUnauthenticated(t *testing.T) {
	app := rolesTestApp(nil, domain.StaffRoleAdmin)

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRoleForbidden(t *testing.T) {
	principal := &Principal{Account: &domain.StaffAccount{ID: "1"}, Role: domain.StaffRoleCustomer}
	app := rolesTestApp(principal, domain.StaffRoleAdmin, domain.StaffRoleSuperAdmin)

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRoleAllowed(t *testing.T) {
	principal := &Principal{Account: &domain.StaffAccount{ID: "1"}, Role: domain.StaffRoleAdmin}
	app := rolesTestApp(principal, domain.StaffRoleAdmin, domain.StaffRoleSuperAdmin)

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRoleEmptyAllowlistAdmitsAnyAuthenticated(t *testing.T) {
	principal := &Principal{Account: &domain.StaffAccount{ID: "1"}, Role: domain.StaffRoleCustomer}
	app := rolesTestApp(principal)

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
