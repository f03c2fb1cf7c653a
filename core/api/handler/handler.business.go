package handler

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/arjunsharma6622/galaxygrow-server/core/api/dto"
	"github.com/arjunsharma6622/galaxygrow-server/core/api/middleware"
	models "github.com/arjunsharma6622/galaxygrow-server/core/api/models/mongodb"
	"github.com/arjunsharma6622/galaxygrow-server/core/api/services"
	"github.com/arjunsharma6622/galaxygrow-server/core/common"
)

// BusinessHandler handles business listing and management requests.
type BusinessHandler struct {
	BaseHandler
	businessService  *services.BusinessService
	directoryService *services.DirectoryService
}

// NewBusinessHandler creates a new instance of BusinessHandler
func NewBusinessHandler() (*BusinessHandler, error) {
	businessService, err := services.NewBusinessService()
	if err != nil {
		return nil, fmt.Errorf("failed to create business service: %v", err)
	}

	directoryService, err := services.NewDirectoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create directory service: %v", err)
	}

	return &BusinessHandler{
		businessService:  businessService,
		directoryService: directoryService,
	}, nil
}

// parseCoordinate reads an optional float query parameter. A present but
// malformed value is treated as absent, matching the lenient query
// handling of the public endpoints.
func parseCoordinate(c fiber.Ctx, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}

// principalID pulls the owner id and kind out of the authenticated
// principal.
func principalID(c fiber.Ctx) (primitive.ObjectID, string, bool) {
	kind, _ := c.Locals(middleware.LocalPrincipalKind).(string)

	switch principal := c.Locals(middleware.LocalPrincipal).(type) {
	case *models.Vendor:
		return principal.ID, kind, true
	case *models.User:
		return principal.ID, kind, true
	default:
		return primitive.NilObjectID, "", false
	}
}

// HandleRegister creates a business owned by the authenticated
// principal.
func (h *BusinessHandler) HandleRegister(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.BusinessCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		ownerID, kind, ok := principalID(c)
		if !ok {
			h.HandleResponse(c, nil, common.ErrForbidden)
			return nil
		}

		business, err := h.businessService.Register(c.Context(), &input, ownerID, kind)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleCreated(c, business)
		return nil
	})
}

// HandleNearby answers the public nearby search. The origin comes from
// lat/long query parameters or a city name, the optional categoryName
// narrows the results.
func (h *BusinessHandler) HandleNearby(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		lat := parseCoordinate(c, "lat")
		long := parseCoordinate(c, "long")
		city := c.Query("city")
		categoryName := c.Query("categoryName")

		originLong, originLat, err := h.directoryService.ResolveOrigin(c.Context(), lat, long, city)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.directoryService.FindNearby(c.Context(), originLong, originLat, categoryName)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, result, nil)
		return nil
	})
}

// HandleCount returns the total number of registered businesses.
func (h *BusinessHandler) HandleCount(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		count, err := h.businessService.CountDocuments(c.Context(), bson.M{})
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"businessesCount": count}, nil)
		return nil
	})
}

// HandleListAll lists every business.
func (h *BusinessHandler) HandleListAll(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		businesses, err := h.businessService.Find(c.Context(), bson.M{}, nil)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, businesses, nil)
		return nil
	})
}

// HandleGetByID returns one business by id.
func (h *BusinessHandler) HandleGetByID(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		business, err := h.businessService.FindOneById(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, business, nil)
		return nil
	})
}

// HandleGetByName returns one business by its URL slug.
func (h *BusinessHandler) HandleGetByName(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		business, err := h.businessService.FindByName(c.Context(), c.Params("businessName"))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, business, nil)
		return nil
	})
}

// HandleGetByCategory lists the businesses of one category.
func (h *BusinessHandler) HandleGetByCategory(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		categoryID, err := h.ParseObjectID(c, "categoryId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		businesses, err := h.businessService.FindByCategory(c.Context(), categoryID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, businesses, nil)
		return nil
	})
}

// HandleUpdate applies a partial update to a business.
func (h *BusinessHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.BusinessUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.businessService.ApplyUpdate(c.Context(), id, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, updated, nil)
		return nil
	})
}

// HandleUpdatePaymentIcon updates the icon of one accepted payment mode.
func (h *BusinessHandler) HandleUpdatePaymentIcon(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.PaymentIconUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.businessService.UpdatePaymentModeIcon(c.Context(), id, input.Mode, input.Icon)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, updated, nil)
		return nil
	})
}

// HandleDelete removes a business and unlinks it from its category and
// owner.
func (h *BusinessHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		ownerID, kind, ok := principalID(c)
		if !ok {
			h.HandleResponse(c, nil, common.ErrForbidden)
			return nil
		}

		deleted, err := h.businessService.Remove(c.Context(), id, ownerID, kind)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, deleted, nil)
		return nil
	})
}
