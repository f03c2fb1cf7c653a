package handler

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/arjunsharma6622/galaxygrow-server/core/api/dto"
	"github.com/arjunsharma6622/galaxygrow-server/core/api/middleware"
	"github.com/arjunsharma6622/galaxygrow-server/core/api/services"
	"github.com/arjunsharma6622/galaxygrow-server/core/common"
	"github.com/arjunsharma6622/galaxygrow-server/core/global"
)

// AuthHandler handles authentication requests for both users and vendors.
type AuthHandler struct {
	BaseHandler
	authService *services.AuthService
}

// NewAuthHandler creates a new instance of AuthHandler
func NewAuthHandler() (*AuthHandler, error) {
	authService, err := services.NewAuthService()
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %v", err)
	}

	return &AuthHandler{authService: authService}, nil
}

// sessionCookie builds the token cookie set on login and registration.
// The cookie stays readable from script so the frontend can inspect its
// own session; the token in the response body is the primary channel.
func sessionCookie(token string) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(time.Duration(global.ServerConfig.JwtExpireHours) * time.Hour),
		HTTPOnly: false,
		SameSite: "Lax",
	}
}

// setTokenCookie mirrors the access token into a cookie so browser
// clients work without handling the token in the body.
func (h *AuthHandler) setTokenCookie(c fiber.Ctx, token string) {
	c.Cookie(sessionCookie(token))
}

// HandleLogin authenticates a user by email or phone number plus
// password. Login is user-only; vendors get their token at registration.
func (h *AuthHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.LoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, token, err := h.authService.Login(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.setTokenCookie(c, token)
		h.HandleResponse(c, fiber.Map{
			"user":     user,
			"userType": "user",
			"token":    token,
		}, nil)
		return nil
	})
}

// HandleRegisterUser creates a new user account and returns a login token.
func (h *AuthHandler) HandleRegisterUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.UserRegisterInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, token, err := h.authService.RegisterUser(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.setTokenCookie(c, token)
		h.HandleCreated(c, fiber.Map{
			"user":  user,
			"token": token,
		})
		return nil
	})
}

// HandleRegisterVendor creates a new vendor account and returns a login token.
func (h *AuthHandler) HandleRegisterVendor(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.VendorRegisterInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		vendor, token, err := h.authService.RegisterVendor(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.setTokenCookie(c, token)
		h.HandleCreated(c, fiber.Map{
			"vendor": vendor,
			"token":  token,
		})
		return nil
	})
}

// HandleMe returns the authenticated principal together with its
// account type.
func (h *AuthHandler) HandleMe(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		kind, _ := c.Locals(middleware.LocalPrincipalKind).(string)
		principal := c.Locals(middleware.LocalPrincipal)
		if principal == nil || kind == "" {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		h.HandleResponse(c, fiber.Map{
			"user":     principal,
			"userType": kind,
		}, nil)
		return nil
	})
}

// HandleLogout clears the token cookie. Issued tokens stay valid until
// they expire, there is no server side revocation list.
func (h *AuthHandler) HandleLogout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		c.Cookie(&fiber.Cookie{
			Name:     "token",
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			SameSite: "Lax",
		})

		h.HandleResponse(c, fiber.Map{"message": "Logged out successfully"}, nil)
		return nil
	})
}

// HandleRequestOTP sends a password reset OTP to a registered phone
// number.
func (h *AuthHandler) HandleRequestOTP(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.RequestOTPInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.authService.RequestOTP(c.Context(), input.Phone); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"message": "OTP sent successfully"}, nil)
		return nil
	})
}

// HandleVerifyOTP checks the OTP and issues a single use ticket for the
// password reset step.
func (h *AuthHandler) HandleVerifyOTP(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.VerifyOTPInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		ticket, err := h.authService.VerifyOTP(c.Context(), input.Phone, input.OTP)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"ticket": ticket}, nil)
		return nil
	})
}

// HandleResetPassword changes the password using the ticket issued by
// the OTP verification step.
func (h *AuthHandler) HandleResetPassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.ResetPasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.authService.ResetPassword(c.Context(), &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"message": "Password reset successfully"}, nil)
		return nil
	})
}
