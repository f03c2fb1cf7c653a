package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/arjunsharma6622/galaxygrow-server/core/api/dto"
	"github.com/arjunsharma6622/galaxygrow-server/core/api/services"
)

// EnquiryHandler handles enquiry submission and triage requests.
type EnquiryHandler struct {
	BaseHandler
	enquiryService *services.EnquiryService
}

// NewEnquiryHandler creates a new instance of EnquiryHandler
func NewEnquiryHandler() (*EnquiryHandler, error) {
	enquiryService, err := services.NewEnquiryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create enquiry service: %v", err)
	}

	return &EnquiryHandler{enquiryService: enquiryService}, nil
}

// HandleCreate submits an enquiry. Public endpoint.
func (h *EnquiryHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.EnquiryCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		enquiry, err := h.enquiryService.Create(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleCreated(c, enquiry)
		return nil
	})
}

// HandleListAll lists every enquiry. Admin only.
func (h *EnquiryHandler) HandleListAll(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		enquiries, err := h.enquiryService.Find(c.Context(), bson.M{}, nil)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, enquiries, nil)
		return nil
	})
}

// HandleGetByID returns one enquiry.
func (h *EnquiryHandler) HandleGetByID(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		enquiry, err := h.enquiryService.FindOneById(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, enquiry, nil)
		return nil
	})
}

// HandleUpdateStatus moves an enquiry through its triage states.
func (h *EnquiryHandler) HandleUpdateStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.EnquiryUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		enquiry, err := h.enquiryService.UpdateStatus(c.Context(), id, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, enquiry, nil)
		return nil
	})
}

// HandleDelete removes an enquiry.
func (h *EnquiryHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.enquiryService.DeleteById(c.Context(), id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"message": "Enquiry deleted successfully"}, nil)
		return nil
	})
}
