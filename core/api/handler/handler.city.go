package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/arjunsharma6622/galaxygrow-server/core/api/dto"
	"github.com/arjunsharma6622/galaxygrow-server/core/api/services"
)

// CityHandler handles serviceable city requests.
type CityHandler struct {
	BaseHandler
	cityService *services.CityService
}

// NewCityHandler creates a new instance of CityHandler
func NewCityHandler() (*CityHandler, error) {
	cityService, err := services.NewCityService()
	if err != nil {
		return nil, fmt.Errorf("failed to create city service: %v", err)
	}

	return &CityHandler{cityService: cityService}, nil
}

// HandleCreate registers a serviceable city with its coordinates.
func (h *CityHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.CityCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		city, err := h.cityService.InsertOne(c.Context(), input.ToModel())
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleCreated(c, city)
		return nil
	})
}

// HandleListAll lists every serviceable city.
func (h *CityHandler) HandleListAll(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		cities, err := h.cityService.Find(c.Context(), bson.M{}, nil)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, cities, nil)
		return nil
	})
}

// HandleGetByName returns one city by its exact name.
func (h *CityHandler) HandleGetByName(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		city, err := h.cityService.FindByName(c.Context(), c.Params("cityName"))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, city, nil)
		return nil
	})
}

// HandleUpdate applies a partial update to a city. Coordinates move
// together or not at all.
func (h *CityHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.CityUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		city, err := h.cityService.ApplyUpdate(c.Context(), id, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, city, nil)
		return nil
	})
}

// HandleDelete removes a city.
func (h *CityHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.cityService.DeleteById(c.Context(), id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"message": "City deleted successfully"}, nil)
		return nil
	})
}
