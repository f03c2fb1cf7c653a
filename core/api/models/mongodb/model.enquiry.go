package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Enquiry statuses.
const (
	EnquiryPending  = "pending"
	EnquiryResolved = "resolved"
	EnquiryRejected = "rejected"
)

// Enquiry is a contact request, optionally tied to a business.
type Enquiry struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Phone     string             `json:"phone" bson:"phone"`
	Message   string             `json:"message,omitempty" bson:"message,omitempty"`
	Business  primitive.ObjectID `json:"business,omitempty" bson:"business,omitempty" index:"single"`
	Category  primitive.ObjectID `json:"category,omitempty" bson:"category,omitempty"`
	Location  string             `json:"location,omitempty" bson:"location,omitempty"`
	Status    string             `json:"status" bson:"status"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
