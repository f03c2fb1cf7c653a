package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	models "github.com/arjunsharma6622/galaxygrow-server/core/api/models/mongodb"
)

// roleGateApp mounts RequireRole behind a middleware seeding the given
// principal, the same shape Authenticated leaves behind.
func roleGateApp(principal any, roles ...string) *fiber.App {
	app := fiber.New()
	app.Use(func(c fiber.Ctx) error {
		if principal != nil {
			c.Locals(LocalPrincipal, principal)
		}
		return c.Next()
	})
	app.Use(RequireRole(roles...))
	app.Get("/", func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func gateStatus(t *testing.T, app *fiber.App) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return resp.StatusCode
}

func TestRequireRoleAdmitsMatchingRole(t *testing.T) {
	app := roleGateApp(&models.User{Role: models.RoleAdmin}, models.RoleAdmin)
	if got := gateStatus(t, app); got != fiber.StatusOK {
		t.Errorf("admin behind admin gate: expected 200, got %d", got)
	}
}

// An authenticated principal without the required role is a 403, never
// a 401. 401 is reserved for missing or broken credentials.
func TestRequireRoleMissingRoleIsForbidden(t *testing.T) {
	app := roleGateApp(&models.User{Role: models.RoleUser}, models.RoleAdmin)
	if got := gateStatus(t, app); got != fiber.StatusForbidden {
		t.Errorf("plain user behind admin gate: expected 403, got %d", got)
	}
}

func TestRequireRoleVendorImplicitRole(t *testing.T) {
	app := roleGateApp(&models.Vendor{}, models.RoleVendor)
	if got := gateStatus(t, app); got != fiber.StatusOK {
		t.Errorf("vendor behind vendor gate: expected 200, got %d", got)
	}

	app = roleGateApp(&models.Vendor{}, models.RoleAdmin)
	if got := gateStatus(t, app); got != fiber.StatusForbidden {
		t.Errorf("vendor behind admin gate: expected 403, got %d", got)
	}
}

func TestRequireRoleNoPrincipalIsForbidden(t *testing.T) {
	app := roleGateApp(nil, models.RoleAdmin)
	if got := gateStatus(t, app); got != fiber.StatusForbidden {
		t.Errorf("no principal behind admin gate: expected 403, got %d", got)
	}
}
