package dto

import (
	models "github.com/arjunsharma6622/galaxygrow-server/core/api/models/mongodb"
	"github.com/arjunsharma6622/galaxygrow-server/core/utility"
)

// EnquiryCreateInput is the payload for submitting an enquiry.
type EnquiryCreateInput struct {
	Name     string `json:"name" validate:"required,no_xss"`
	Phone    string `json:"phone" validate:"required,len=10,numeric"`
	Message  string `json:"message,omitempty" validate:"omitempty,no_xss"`
	Business string `json:"business,omitempty" validate:"omitempty,objectid"`
	Category string `json:"category,omitempty" validate:"omitempty,objectid"`
	Location string `json:"location,omitempty"`
}

// ToModel converts the input into an Enquiry document with pending status.
func (i *EnquiryCreateInput) ToModel() models.Enquiry {
	return models.Enquiry{
		Name:     i.Name,
		Phone:    i.Phone,
		Message:  i.Message,
		Business: utility.String2ObjectID(i.Business),
		Category: utility.String2ObjectID(i.Category),
		Location: i.Location,
		Status:   models.EnquiryPending,
	}
}

// EnquiryUpdateInput is the payload for changing an enquiry's status.
type EnquiryUpdateInput struct {
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=pending resolved rejected"`
}
