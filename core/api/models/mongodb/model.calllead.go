package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CallLead is a phone lead for a business. Anonymous leads are verified
// through an OTP with a 10 minute window.
type CallLead struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name,omitempty" bson:"name,omitempty"`
	Phone     string             `json:"phone" bson:"phone"`
	Business  primitive.ObjectID `json:"business" bson:"business" index:"single"`
	Verified  bool               `json:"verified" bson:"verified"`
	OTP       OTP                `json:"-" bson:"otp,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// CallLeadMonthStat is one month bucket of a vendor's lead graph.
type CallLeadMonthStat struct {
	Name  string `json:"name"`
	Leads int    `json:"leads"`
}
