package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/arjunsharma6622/galaxygrow-server/core/api/dto"
	"github.com/arjunsharma6622/galaxygrow-server/core/api/services"
)

// CategoryHandler handles category and category title requests.
type CategoryHandler struct {
	BaseHandler
	categoryService *services.CategoryService
	titleService    *services.CategoryTitleService
}

// NewCategoryHandler creates a new instance of CategoryHandler
func NewCategoryHandler() (*CategoryHandler, error) {
	categoryService, err := services.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}

	titleService, err := services.NewCategoryTitleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category title service: %v", err)
	}

	return &CategoryHandler{
		categoryService: categoryService,
		titleService:    titleService,
	}, nil
}

// HandleCreate stores one or more categories in a single call.
func (h *CategoryHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var inputs []dto.CategoryCreateInput
		if err := ParseRequestBodyList(c, &inputs); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		categories, err := h.categoryService.CreateMany(c.Context(), inputs)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleCreated(c, categories)
		return nil
	})
}

// HandleListAll lists every category.
func (h *CategoryHandler) HandleListAll(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		categories, err := h.categoryService.Find(c.Context(), bson.M{}, nil)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, categories, nil)
		return nil
	})
}

// HandleGetByID returns one category by id.
func (h *CategoryHandler) HandleGetByID(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		category, err := h.categoryService.FindOneById(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, category, nil)
		return nil
	})
}

// HandleGetByName returns one category matched by name, case
// insensitive.
func (h *CategoryHandler) HandleGetByName(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		category, err := h.categoryService.FindByName(c.Context(), c.Params("categoryName"))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, category, nil)
		return nil
	})
}

// HandleUpdate applies a partial update to a category.
func (h *CategoryHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.CategoryUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		category, err := h.categoryService.ApplyUpdate(c.Context(), id, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, category, nil)
		return nil
	})
}

// HandleDelete removes a category.
func (h *CategoryHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.categoryService.DeleteById(c.Context(), id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"message": "Category deleted successfully"}, nil)
		return nil
	})
}

// HandleBackfillBusinessType stamps the default business type onto
// categories created before the field existed.
func (h *CategoryHandler) HandleBackfillBusinessType(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		modified, err := h.categoryService.BackfillBusinessType(c.Context())
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"modifiedCount": modified}, nil)
		return nil
	})
}

// HandleCreateTitle stores a category title group.
func (h *CategoryHandler) HandleCreateTitle(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.CategoryTitleCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		title, err := h.titleService.InsertOne(c.Context(), input.ToModel())
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleCreated(c, title)
		return nil
	})
}

// HandleListTitles lists every title group with its categories joined
// in.
func (h *CategoryHandler) HandleListTitles(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		titles, err := h.titleService.FindAllWithCategories(c.Context())
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, titles, nil)
		return nil
	})
}

// HandleUpdateTitle applies a partial update to a title group.
func (h *CategoryHandler) HandleUpdateTitle(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.CategoryTitleUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		title, err := h.titleService.ApplyUpdate(c.Context(), id, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, title, nil)
		return nil
	})
}

// HandleDeleteTitle removes a title group.
func (h *CategoryHandler) HandleDeleteTitle(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.titleService.DeleteById(c.Context(), id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"message": "Category title deleted successfully"}, nil)
		return nil
	})
}
