package dto

import (
	models "github.com/arjunsharma6622/galaxygrow-server/core/api/models/mongodb"
)

// BannerCreateInput is the payload for adding a home page banner.
type BannerCreateInput struct {
	Image  string `json:"image" validate:"required,url"`
	Link   string `json:"link,omitempty" validate:"omitempty,url"`
	Active bool   `json:"active"`
}

// ToModel converts the input into a Banner document.
func (i *BannerCreateInput) ToModel() models.Banner {
	return models.Banner{
		Image:  i.Image,
		Link:   i.Link,
		Active: i.Active,
	}
}

// BannerUpdateInput is the payload for updating a banner.
type BannerUpdateInput struct {
	Image  *string `json:"image,omitempty" validate:"omitempty,url"`
	Link   *string `json:"link,omitempty" validate:"omitempty,url"`
	Active *bool   `json:"active,omitempty"`
}
