package dto

import (
	models "github.com/arjunsharma6622/galaxygrow-server/core/api/models/mongodb"
	"github.com/arjunsharma6622/galaxygrow-server/core/utility"
)

// BlogCreateInput is the payload for publishing a blog article.
type BlogCreateInput struct {
	Title       string `json:"title" validate:"required,no_xss"`
	Image       string `json:"image,omitempty" validate:"omitempty,url"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty" validate:"omitempty,objectid"`
	Author      string `json:"author,omitempty" validate:"omitempty,no_xss"`
}

// ToModel converts the input into a Blog document.
func (i *BlogCreateInput) ToModel() models.Blog {
	return models.Blog{
		Title:       i.Title,
		Image:       i.Image,
		Description: i.Description,
		Category:    utility.String2ObjectID(i.Category),
		Author:      i.Author,
	}
}

// BlogUpdateInput is the payload for editing a blog article.
type BlogUpdateInput struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,no_xss"`
	Image       *string `json:"image,omitempty" validate:"omitempty,url"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty" validate:"omitempty,objectid"`
	Author      *string `json:"author,omitempty" validate:"omitempty,no_xss"`
}
