package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/arjunsharma6622/galaxygrow-server/core/api/dto"
	"github.com/arjunsharma6622/galaxygrow-server/core/api/services"
	"github.com/arjunsharma6622/galaxygrow-server/core/common"
)

// RatingHandler handles business rating requests.
type RatingHandler struct {
	BaseHandler
	ratingService *services.RatingService
}

// NewRatingHandler creates a new instance of RatingHandler
func NewRatingHandler() (*RatingHandler, error) {
	ratingService, err := services.NewRatingService()
	if err != nil {
		return nil, fmt.Errorf("failed to create rating service: %v", err)
	}

	return &RatingHandler{ratingService: ratingService}, nil
}

// HandleCreate stores a rating for a business, authored by the
// authenticated principal.
func (h *RatingHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		businessID, err := h.ParseObjectID(c, "businessId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.RatingCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		userID, _, ok := principalID(c)
		if !ok {
			h.HandleResponse(c, nil, common.ErrForbidden)
			return nil
		}

		rating, err := h.ratingService.Create(c.Context(), &input, businessID, userID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleCreated(c, rating)
		return nil
	})
}

// HandleSummary returns the ratings of a business joined with their
// author profiles plus the average.
func (h *RatingHandler) HandleSummary(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		businessID, err := h.ParseObjectID(c, "businessId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		summary, err := h.ratingService.Summary(c.Context(), businessID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, summary, nil)
		return nil
	})
}
