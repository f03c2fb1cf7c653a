package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/arjunsharma6622/galaxygrow-server/core/api/dto"
	"github.com/arjunsharma6622/galaxygrow-server/core/api/middleware"
	models "github.com/arjunsharma6622/galaxygrow-server/core/api/models/mongodb"
	"github.com/arjunsharma6622/galaxygrow-server/core/api/services"
	"github.com/arjunsharma6622/galaxygrow-server/core/common"
)

// UserHandler handles user profile and account administration requests.
type UserHandler struct {
	BaseHandler
	userService   *services.UserService
	vendorService *services.VendorService
}

// NewUserHandler creates a new instance of UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := services.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}

	vendorService, err := services.NewVendorService()
	if err != nil {
		return nil, fmt.Errorf("failed to create vendor service: %v", err)
	}

	return &UserHandler{
		userService:   userService,
		vendorService: vendorService,
	}, nil
}

// HandleGetSelf returns the profile of the authenticated user.
func (h *UserHandler) HandleGetSelf(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user, ok := middleware.PrincipalUser(c)
		if !ok {
			h.HandleResponse(c, nil, common.ErrForbidden)
			return nil
		}

		h.HandleResponse(c, user, nil)
		return nil
	})
}

// HandleUpdateSelf updates the allow listed profile fields of the
// authenticated user.
func (h *UserHandler) HandleUpdateSelf(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user, ok := middleware.PrincipalUser(c)
		if !ok {
			h.HandleResponse(c, nil, common.ErrForbidden)
			return nil
		}

		var input dto.UserUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.userService.UpdateProfile(c.Context(), user.ID, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, updated, nil)
		return nil
	})
}

// HandleListUsers lists every account with the user role. Admin only.
func (h *UserHandler) HandleListUsers(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		users, err := h.userService.FindAllByRole(c.Context(), models.RoleUser)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, users, nil)
		return nil
	})
}

// HandleListVendors lists every vendor account. Admin only.
func (h *UserHandler) HandleListVendors(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		vendors, err := h.vendorService.Find(c.Context(), bson.M{}, nil)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, vendors, nil)
		return nil
	})
}

// HandleDelete removes a user account by id.
func (h *UserHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.userService.DeleteById(c.Context(), id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"message": "User deleted successfully"}, nil)
		return nil
	})
}
