package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/arjunsharma6622/galaxygrow-server/core/api/dto"
	"github.com/arjunsharma6622/galaxygrow-server/core/api/services"
)

// BlogHandler handles blog article requests.
type BlogHandler struct {
	BaseHandler
	blogService     *services.BlogService
	categoryService *services.CategoryService
}

// NewBlogHandler creates a new instance of BlogHandler
func NewBlogHandler() (*BlogHandler, error) {
	blogService, err := services.NewBlogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create blog service: %v", err)
	}

	categoryService, err := services.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}

	return &BlogHandler{
		blogService:     blogService,
		categoryService: categoryService,
	}, nil
}

// HandleCreate publishes an article.
func (h *BlogHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.BlogCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		blog, err := h.blogService.InsertOne(c.Context(), input.ToModel())
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleCreated(c, blog)
		return nil
	})
}

// HandleListAll lists every article.
func (h *BlogHandler) HandleListAll(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		blogs, err := h.blogService.Find(c.Context(), bson.M{}, nil)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, blogs, nil)
		return nil
	})
}

// HandleGetByID returns one article by id.
func (h *BlogHandler) HandleGetByID(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		blog, err := h.blogService.FindOneById(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, blog, nil)
		return nil
	})
}

// HandleGetByCategory lists the articles of a category matched by name.
func (h *BlogHandler) HandleGetByCategory(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		category, err := h.categoryService.FindByName(c.Context(), c.Params("categoryName"))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		blogs, err := h.blogService.FindByCategory(c.Context(), category.ID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, blogs, nil)
		return nil
	})
}

// HandleUpdate applies a partial update to an article.
func (h *BlogHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.BlogUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		blog, err := h.blogService.ApplyUpdate(c.Context(), id, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, blog, nil)
		return nil
	})
}

// HandleDelete removes an article together with its cover image asset.
func (h *BlogHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		blog, err := h.blogService.Remove(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, blog, nil)
		return nil
	})
}
