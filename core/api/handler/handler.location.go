package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/arjunsharma6622/galaxygrow-server/core/clients"
	"github.com/arjunsharma6622/galaxygrow-server/core/common"
	"github.com/arjunsharma6622/galaxygrow-server/core/global"
)

// LocationHandler proxies geocoding lookups so the Maps API key never
// reaches a client.
type LocationHandler struct {
	BaseHandler
	maps *clients.GoogleMaps
}

// NewLocationHandler creates a new instance of LocationHandler
func NewLocationHandler() *LocationHandler {
	return &LocationHandler{
		maps: clients.NewGoogleMaps(global.ServerConfig.GoogleMapsAPIKey),
	}
}

// HandleFromCoords resolves lat/long into a named locality.
func (h *LocationHandler) HandleFromCoords(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		lat := c.Query("lat")
		long := c.Query("long")
		if lat == "" || long == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Latitude and longitude are required.",
				common.StatusBadRequest, nil))
			return nil
		}

		location, err := h.maps.FromCoords(c.Context(), lat, long)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, location, nil)
		return nil
	})
}

// HandleAutocomplete resolves a free text query into the address parts
// of the best matching place.
func (h *LocationHandler) HandleAutocomplete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := c.Query("input")
		if input == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Input is required.",
				common.StatusBadRequest, nil))
			return nil
		}

		details, err := h.maps.Autocomplete(c.Context(), input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, details, nil)
		return nil
	})
}

// HandleFromAddress geocodes a postal address into coordinates.
func (h *LocationHandler) HandleFromAddress(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		address := c.Query("address")
		if address == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Address is required.",
				common.StatusBadRequest, nil))
			return nil
		}

		coords, err := h.maps.FromAddress(c.Context(), address)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, coords, nil)
		return nil
	})
}
