package router

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func requestStatus(t *testing.T, app *fiber.App, method, target string) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return resp.StatusCode
}

// Group middleware attached with .Use() matches on the raw path prefix,
// so a guard on /category also sees /category-title requests. Public
// routes on the longer prefix must be registered first to win the
// match. This mirrors the registration order of registerCategoryRoutes.
func TestGuardedGroupDoesNotShadowLongerPrefix(t *testing.T) {
	app := fiber.New()
	api := app.Group("/api/v1")

	deny := func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	ok := func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}

	api.Get("/category/", ok)
	api.Get("/category-title/", ok)
	registerRouteWithMiddleware(api, "/category-title", "POST", "/", []fiber.Handler{deny}, ok)
	registerRouteWithMiddleware(api, "/category", "POST", "/", []fiber.Handler{deny}, ok)

	if got := requestStatus(t, app, "GET", "/api/v1/category-title/"); got != fiber.StatusOK {
		t.Errorf("public title list: expected 200, got %d", got)
	}
	if got := requestStatus(t, app, "GET", "/api/v1/category/"); got != fiber.StatusOK {
		t.Errorf("public category list: expected 200, got %d", got)
	}
	if got := requestStatus(t, app, "POST", "/api/v1/category/"); got != fiber.StatusUnauthorized {
		t.Errorf("guarded category create: expected 401, got %d", got)
	}
	if got := requestStatus(t, app, "POST", "/api/v1/category-title/"); got != fiber.StatusUnauthorized {
		t.Errorf("guarded title create: expected 401, got %d", got)
	}
}

// Registering the guarded /category group before the public
// /category-title read is exactly the order that leaks the guard onto
// the longer prefix. Kept as a canary for the Fiber matching behavior
// the registration order relies on.
func TestGuardRegisteredFirstInterceptsLongerPrefix(t *testing.T) {
	app := fiber.New()
	api := app.Group("/api/v1")

	deny := func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	ok := func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}

	registerRouteWithMiddleware(api, "/category", "POST", "/", []fiber.Handler{deny}, ok)
	api.Get("/category-title/", ok)

	if got := requestStatus(t, app, "GET", "/api/v1/category-title/"); got != fiber.StatusUnauthorized {
		t.Errorf("expected the /category guard to intercept, got %d", got)
	}
}
