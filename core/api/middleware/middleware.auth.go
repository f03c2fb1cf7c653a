// Package middleware contains the authentication and authorization
// middleware of the HTTP layer.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	models "github.com/arjunsharma6622/galaxygrow-server/core/api/models/mongodb"
	"github.com/arjunsharma6622/galaxygrow-server/core/api/services"
	"github.com/arjunsharma6622/galaxygrow-server/core/common"
)

// Context keys for the authenticated principal.
const (
	LocalPrincipal     = "principal"
	LocalPrincipalKind = "principal_kind"
	LocalPrincipalID   = "principal_id"
)

// Principal namespaces accepted by Authenticated.
const (
	NamespaceUser   = "user"
	NamespaceVendor = "vendor"
	NamespaceAny    = "any"
)

// writeError writes an error through the uniform response envelope.
func writeError(c fiber.Ctx, err error) error {
	customErr, ok := err.(*common.Error)
	if !ok {
		customErr = common.NewError(common.ErrCodeInternalServer, err.Error(), common.StatusInternalServerError, nil).(*common.Error)
	}

	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(customErr.StatusCode).JSON(fiber.Map{
		"code":    customErr.Code.Code,
		"message": customErr.Message,
		"status":  "error",
	})
}

// extractToken pulls the bearer token from the Authorization header,
// falling back to the token cookie.
func extractToken(c fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
		return ""
	}

	return c.Cookies("token")
}

// Authenticated verifies the access token, loads the principal it names
// and guards its namespace. A token of the wrong kind gets a 403, a
// valid token whose principal vanished gets a 404.
func Authenticated(namespace string) fiber.Handler {
	return func(c fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return writeError(c, common.ErrTokenMissing)
		}

		tokens := services.NewTokenService()
		claims, err := tokens.Verify(tokenString)
		if err != nil {
			return writeError(c, err)
		}

		if namespace != NamespaceAny && claims.Kind != namespace {
			return writeError(c, common.ErrForbidden)
		}

		auth, err := services.NewAuthService()
		if err != nil {
			return writeError(c, err)
		}

		principal, err := auth.Principal(c.Context(), claims.ID, claims.Kind)
		if err != nil {
			return writeError(c, err)
		}

		c.Locals(LocalPrincipal, principal)
		c.Locals(LocalPrincipalKind, claims.Kind)
		c.Locals(LocalPrincipalID, claims.ID)

		return c.Next()
	}
}

// RequireRole lets the request through when the principal holds one of
// the given roles. Vendors implicitly hold the vendor role; missing
// role is always 403, never 401.
func RequireRole(roles ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		var role string
		switch principal := c.Locals(LocalPrincipal).(type) {
		case *models.User:
			role = principal.Role
		case *models.Vendor:
			role = models.RoleVendor
		default:
			return writeError(c, common.ErrForbidden)
		}

		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}

		return writeError(c, common.ErrForbidden)
	}
}

// PrincipalUser returns the authenticated user stored by Authenticated.
func PrincipalUser(c fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(LocalPrincipal).(*models.User)
	return user, ok
}

// PrincipalVendor returns the authenticated vendor stored by
// Authenticated.
func PrincipalVendor(c fiber.Ctx) (*models.Vendor, bool) {
	vendor, ok := c.Locals(LocalPrincipal).(*models.Vendor)
	return vendor, ok
}
