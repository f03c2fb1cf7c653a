package dto

import (
	models "github.com/arjunsharma6622/galaxygrow-server/core/api/models/mongodb"
	"github.com/arjunsharma6622/galaxygrow-server/core/utility"
)

// CallLeadCreateInput is the payload for recording a call lead.
type CallLeadCreateInput struct {
	Name     string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Phone    string `json:"phone" validate:"required,len=10,numeric"`
	Business string `json:"business" validate:"required,objectid"`
}

// ToModel converts the input into an unverified CallLead document.
func (i *CallLeadCreateInput) ToModel() models.CallLead {
	return models.CallLead{
		Name:     i.Name,
		Phone:    i.Phone,
		Business: utility.String2ObjectID(i.Business),
		Verified: false,
	}
}

// CallLeadVerifyInput is the payload for verifying a lead's OTP.
type CallLeadVerifyInput struct {
	ID  string `json:"id" validate:"required,objectid"`
	OTP string `json:"otp" validate:"required,len=4,numeric"`
}
