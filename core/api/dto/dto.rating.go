package dto

import (
	models "github.com/arjunsharma6622/galaxygrow-server/core/api/models/mongodb"
)

// RatingCreateInput is the payload for rating a business. The business
// comes from the URI, the author from the authenticated principal.
type RatingCreateInput struct {
	Rating float64 `json:"rating" validate:"required,gte=1,lte=5"`
	Review string  `json:"review,omitempty" validate:"omitempty,no_xss"`
}

// ToModel converts the input into a Rating document.
func (i *RatingCreateInput) ToModel() models.Rating {
	return models.Rating{
		Rating: i.Rating,
		Review: i.Review,
	}
}

// RatingUpdateInput is the payload for editing a rating.
type RatingUpdateInput struct {
	Rating *float64 `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	Review *string  `json:"review,omitempty" validate:"omitempty,no_xss"`
}
