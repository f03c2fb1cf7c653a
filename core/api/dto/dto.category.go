package dto

import (
	models "github.com/arjunsharma6622/galaxygrow-server/core/api/models/mongodb"
	"github.com/arjunsharma6622/galaxygrow-server/core/utility"
)

// CategoryCreateInput is the payload for creating a category.
type CategoryCreateInput struct {
	CategoryTitle string       `json:"categoryTitle" validate:"required,objectid"`
	Name          string       `json:"name" validate:"required,no_xss"`
	ShowOnHome    bool         `json:"showOnHome"`
	Image         models.Image `json:"image,omitempty"`
	Icon          string       `json:"icon,omitempty"`
	BusinessType  string       `json:"businessType" validate:"required,oneof=service doctor manufacturing"`
	Keywords      []string     `json:"keywords,omitempty"`
	Description   string       `json:"description,omitempty"`
}

// ToModel converts the input into a Category document.
func (i *CategoryCreateInput) ToModel() models.Category {
	return models.Category{
		CategoryTitle: utility.String2ObjectID(i.CategoryTitle),
		Name:          i.Name,
		ShowOnHome:    i.ShowOnHome,
		Image:         i.Image,
		Icon:          i.Icon,
		BusinessType:  i.BusinessType,
		Keywords:      i.Keywords,
		Description:   i.Description,
	}
}

// CategoryUpdateInput is the payload for updating a category.
type CategoryUpdateInput struct {
	CategoryTitle *string       `json:"categoryTitle,omitempty" validate:"omitempty,objectid"`
	Name          *string       `json:"name,omitempty" validate:"omitempty,no_xss"`
	ShowOnHome    *bool         `json:"showOnHome,omitempty"`
	Image         *models.Image `json:"image,omitempty"`
	Icon          *string       `json:"icon,omitempty"`
	BusinessType  *string       `json:"businessType,omitempty" validate:"omitempty,oneof=service doctor manufacturing"`
	Keywords      *[]string     `json:"keywords,omitempty"`
	Description   *string       `json:"description,omitempty"`
}

// CategoryTitleCreateInput is the payload for creating a category title.
type CategoryTitleCreateInput struct {
	Title      string `json:"title" validate:"required,no_xss"`
	ShowOnHome bool   `json:"showOnHome"`
}

// ToModel converts the input into a CategoryTitle document.
func (i *CategoryTitleCreateInput) ToModel() models.CategoryTitle {
	return models.CategoryTitle{
		Title:      i.Title,
		ShowOnHome: i.ShowOnHome,
	}
}

// CategoryTitleUpdateInput is the payload for updating a category title.
type CategoryTitleUpdateInput struct {
	Title      *string `json:"title,omitempty" validate:"omitempty,no_xss"`
	ShowOnHome *bool   `json:"showOnHome,omitempty"`
}
