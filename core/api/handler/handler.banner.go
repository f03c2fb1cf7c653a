package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/arjunsharma6622/galaxygrow-server/core/api/dto"
	"github.com/arjunsharma6622/galaxygrow-server/core/api/services"
)

// BannerHandler handles promotional banner requests.
type BannerHandler struct {
	BaseHandler
	bannerService *services.BannerService
}

// NewBannerHandler creates a new instance of BannerHandler
func NewBannerHandler() (*BannerHandler, error) {
	bannerService, err := services.NewBannerService()
	if err != nil {
		return nil, fmt.Errorf("failed to create banner service: %v", err)
	}

	return &BannerHandler{bannerService: bannerService}, nil
}

// HandleCreate stores a banner.
func (h *BannerHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.BannerCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		banner, err := h.bannerService.InsertOne(c.Context(), input.ToModel())
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleCreated(c, banner)
		return nil
	})
}

// HandleListAll lists every banner.
func (h *BannerHandler) HandleListAll(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		banners, err := h.bannerService.Find(c.Context(), bson.M{}, nil)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, banners, nil)
		return nil
	})
}

// HandleUpdate applies a partial update to a banner.
func (h *BannerHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.BannerUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		banner, err := h.bannerService.ApplyUpdate(c.Context(), id, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, banner, nil)
		return nil
	})
}

// HandleDelete removes a banner.
func (h *BannerHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.bannerService.DeleteById(c.Context(), id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"message": "Banner deleted successfully"}, nil)
		return nil
	})
}
