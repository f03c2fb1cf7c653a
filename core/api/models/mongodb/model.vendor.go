package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vendor is a business owner account. Vendors implicitly carry the
// vendor role.
type Vendor struct {
	ID         primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Name       string               `json:"name" bson:"name"`
	Email      string               `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Phone      string               `json:"phone,omitempty" bson:"phone,omitempty" index:"unique,sparse"`
	Password   string               `json:"-" bson:"password,omitempty"`
	Gender     string               `json:"gender,omitempty" bson:"gender,omitempty"`
	Image      string               `json:"image,omitempty" bson:"image,omitempty"`
	Businesses []primitive.ObjectID `json:"businesses" bson:"businesses"`
	OTP        OTP                  `json:"-" bson:"otp,omitempty"`
	CreatedAt  int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64                `json:"updatedAt" bson:"updatedAt"`
}
