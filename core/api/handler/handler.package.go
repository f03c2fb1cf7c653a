package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/arjunsharma6622/galaxygrow-server/core/api/dto"
	"github.com/arjunsharma6622/galaxygrow-server/core/api/services"
)

// PackageHandler handles subscription package requests.
type PackageHandler struct {
	BaseHandler
	packageService *services.PackageService
}

// NewPackageHandler creates a new instance of PackageHandler
func NewPackageHandler() (*PackageHandler, error) {
	packageService, err := services.NewPackageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create package service: %v", err)
	}

	return &PackageHandler{packageService: packageService}, nil
}

// HandleCreate stores one or more packages in a single call.
func (h *PackageHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var inputs []dto.PackageCreateInput
		if err := ParseRequestBodyList(c, &inputs); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		packages, err := h.packageService.CreateMany(c.Context(), inputs)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleCreated(c, packages)
		return nil
	})
}

// HandleListAll lists every package.
func (h *PackageHandler) HandleListAll(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		packages, err := h.packageService.Find(c.Context(), bson.M{}, nil)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, packages, nil)
		return nil
	})
}

// HandleUpdate applies a partial update to the package named by the id
// in the body.
func (h *PackageHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.PackageUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		pkg, err := h.packageService.ApplyUpdate(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, pkg, nil)
		return nil
	})
}

// HandleDelete removes a package.
func (h *PackageHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.packageService.DeleteById(c.Context(), id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"message": "Package deleted successfully"}, nil)
		return nil
	})
}
