package dto

import (
	models "github.com/arjunsharma6622/galaxygrow-server/core/api/models/mongodb"
)

// PackageCreateInput is the payload for creating a subscription package.
type PackageCreateInput struct {
	Name        string   `json:"name" validate:"required,no_xss"`
	Price       float64  `json:"price" validate:"required,gte=0"`
	PrevPrice   float64  `json:"prevPrice,omitempty" validate:"omitempty,gte=0"`
	Description string   `json:"desc,omitempty"`
	Category    string   `json:"category" validate:"required,oneof=service doctor manufacturer"`
	Features    []string `json:"features,omitempty"`
}

// ToModel converts the input into a Package document.
func (i *PackageCreateInput) ToModel() models.Package {
	return models.Package{
		Name:        i.Name,
		Price:       i.Price,
		PrevPrice:   i.PrevPrice,
		Description: i.Description,
		Category:    i.Category,
		Features:    i.Features,
	}
}

// PackageUpdateInput is the payload for updating a package, addressed by
// its id in the body.
type PackageUpdateInput struct {
	ID          string    `json:"id" validate:"required,objectid"`
	Name        *string   `json:"name,omitempty" validate:"omitempty,no_xss"`
	Price       *float64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	PrevPrice   *float64  `json:"prevPrice,omitempty" validate:"omitempty,gte=0"`
	Description *string   `json:"desc,omitempty"`
	Category    *string   `json:"category,omitempty" validate:"omitempty,oneof=service doctor manufacturer"`
	Features    *[]string `json:"features,omitempty"`
}
