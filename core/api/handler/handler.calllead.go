package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/arjunsharma6622/galaxygrow-server/core/api/dto"
	"github.com/arjunsharma6622/galaxygrow-server/core/api/services"
	"github.com/arjunsharma6622/galaxygrow-server/core/utility"
)

// CallLeadHandler handles call lead capture and verification requests.
type CallLeadHandler struct {
	BaseHandler
	callLeadService *services.CallLeadService
}

// NewCallLeadHandler creates a new instance of CallLeadHandler
func NewCallLeadHandler() (*CallLeadHandler, error) {
	callLeadService, err := services.NewCallLeadService()
	if err != nil {
		return nil, fmt.Errorf("failed to create call lead service: %v", err)
	}

	return &CallLeadHandler{callLeadService: callLeadService}, nil
}

// HandleCreate records an unverified call lead and sends the caller a
// verification OTP.
func (h *CallLeadHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.CallLeadCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		lead, err := h.callLeadService.Create(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleCreated(c, lead)
		return nil
	})
}

// HandleCreateVerified records a call lead that needs no OTP, used when
// the caller is already an authenticated user.
func (h *CallLeadHandler) HandleCreateVerified(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.CallLeadCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		lead, err := h.callLeadService.CreateVerified(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleCreated(c, lead)
		return nil
	})
}

// HandleListAll lists every call lead.
func (h *CallLeadHandler) HandleListAll(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		leads, err := h.callLeadService.Find(c.Context(), bson.M{}, nil)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, leads, nil)
		return nil
	})
}

// HandleGetByID returns one call lead.
func (h *CallLeadHandler) HandleGetByID(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		lead, err := h.callLeadService.FindOneById(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, lead, nil)
		return nil
	})
}

// HandleDelete removes a call lead and unlinks it from its business.
func (h *CallLeadHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		lead, err := h.callLeadService.Remove(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, lead, nil)
		return nil
	})
}

// HandleVerify marks a lead verified when the submitted OTP matches.
func (h *CallLeadHandler) HandleVerify(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.CallLeadVerifyInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		lead, err := h.callLeadService.Verify(c.Context(), utility.String2ObjectID(input.ID), input.OTP)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, lead, nil)
		return nil
	})
}
