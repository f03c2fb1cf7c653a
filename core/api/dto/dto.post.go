package dto

import (
	models "github.com/arjunsharma6622/galaxygrow-server/core/api/models/mongodb"
	"github.com/arjunsharma6622/galaxygrow-server/core/utility"
)

// PostCreateInput is the payload for publishing a business post.
type PostCreateInput struct {
	BusinessID  string `json:"businessId" validate:"required,objectid"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty" validate:"omitempty,no_xss"`
}

// ToModel converts the input into a Post document.
func (i *PostCreateInput) ToModel() models.Post {
	return models.Post{
		BusinessID:  utility.String2ObjectID(i.BusinessID),
		Image:       i.Image,
		Description: i.Description,
	}
}

// PostUpdateInput is the payload for editing a post. Only the description
// may change.
type PostUpdateInput struct {
	Description *string `json:"description,omitempty" validate:"omitempty,no_xss"`
}
