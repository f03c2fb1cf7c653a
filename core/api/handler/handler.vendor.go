package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/arjunsharma6622/galaxygrow-server/core/api/dto"
	"github.com/arjunsharma6622/galaxygrow-server/core/api/middleware"
	"github.com/arjunsharma6622/galaxygrow-server/core/api/services"
	"github.com/arjunsharma6622/galaxygrow-server/core/common"
)

// VendorHandler handles vendor profile and vendor dashboard requests.
type VendorHandler struct {
	BaseHandler
	vendorService *services.VendorService
}

// NewVendorHandler creates a new instance of VendorHandler
func NewVendorHandler() (*VendorHandler, error) {
	vendorService, err := services.NewVendorService()
	if err != nil {
		return nil, fmt.Errorf("failed to create vendor service: %v", err)
	}

	return &VendorHandler{vendorService: vendorService}, nil
}

// HandleGetSelf returns the profile of the authenticated vendor.
func (h *VendorHandler) HandleGetSelf(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		vendor, ok := middleware.PrincipalVendor(c)
		if !ok {
			h.HandleResponse(c, nil, common.ErrForbidden)
			return nil
		}

		h.HandleResponse(c, vendor, nil)
		return nil
	})
}

// HandleUpdateSelf updates the allow listed profile fields of the
// authenticated vendor.
func (h *VendorHandler) HandleUpdateSelf(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		vendor, ok := middleware.PrincipalVendor(c)
		if !ok {
			h.HandleResponse(c, nil, common.ErrForbidden)
			return nil
		}

		var input dto.VendorUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.vendorService.UpdateProfile(c.Context(), vendor.ID, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, updated, nil)
		return nil
	})
}

// HandleListAll lists every vendor. Public endpoint.
func (h *VendorHandler) HandleListAll(c fiber.Ctx) error {
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

// HandleBusinesses lists the businesses owned by the authenticated
// vendor.
func (h *VendorHandler) HandleBusinesses(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		vendor, ok := middleware.PrincipalVendor(c)
		if !ok {
			h.HandleResponse(c, nil, common.ErrForbidden)
			return nil
		}

		businesses, err := h.vendorService.Businesses(c.Context(), vendor.ID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, businesses, nil)
		return nil
	})
}

// HandleCallLeadStats returns verified call lead counts per month of the
// current year for the authenticated vendor's businesses.
func (h *VendorHandler) HandleCallLeadStats(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		vendor, ok := middleware.PrincipalVendor(c)
		if !ok {
			h.HandleResponse(c, nil, common.ErrForbidden)
			return nil
		}

		stats, err := h.vendorService.CallLeadStats(c.Context(), vendor.ID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, stats, nil)
		return nil
	})
}

// HandleDelete removes a vendor account by id.
func (h *VendorHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.vendorService.DeleteById(c.Context(), id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"message": "Vendor deleted successfully"}, nil)
		return nil
	})
}
