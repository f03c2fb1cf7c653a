package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/arjunsharma6622/galaxygrow-server/core/api/dto"
	"github.com/arjunsharma6622/galaxygrow-server/core/api/services"
)

// PostHandler handles business post requests.
type PostHandler struct {
	BaseHandler
	postService *services.PostService
}

// NewPostHandler creates a new instance of PostHandler
func NewPostHandler() (*PostHandler, error) {
	postService, err := services.NewPostService()
	if err != nil {
		return nil, fmt.Errorf("failed to create post service: %v", err)
	}

	return &PostHandler{postService: postService}, nil
}

// HandleCreate publishes a post under a business.
func (h *PostHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.PostCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		post, err := h.postService.Create(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleCreated(c, post)
		return nil
	})
}

// HandleListAll lists every post.
func (h *PostHandler) HandleListAll(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		posts, err := h.postService.Find(c.Context(), bson.M{}, nil)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, posts, nil)
		return nil
	})
}

// HandleGetByID returns one post.
func (h *PostHandler) HandleGetByID(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		post, err := h.postService.FindOneById(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, post, nil)
		return nil
	})
}

// HandleGetByBusiness lists the posts of one business.
func (h *PostHandler) HandleGetByBusiness(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		businessID, err := h.ParseObjectID(c, "businessId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		posts, err := h.postService.FindByBusiness(c.Context(), businessID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, posts, nil)
		return nil
	})
}

// HandleUpdate edits the description of a post.
func (h *PostHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.PostUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		post, err := h.postService.UpdateDescription(c.Context(), id, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, post, nil)
		return nil
	})
}

// HandleDelete removes a post and unlinks it from its business.
func (h *PostHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		post, err := h.postService.Remove(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, post, nil)
		return nil
	})
}
