package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a directory end user. Role is one of user, vendor, admin and
// defaults to user at registration.
type User struct {
	ID         primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Name       string               `json:"name" bson:"name"`
	Role       string               `json:"role" bson:"role"`
	Email      string               `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Password   string               `json:"-" bson:"password,omitempty"`
	Phone      string               `json:"phone,omitempty" bson:"phone,omitempty" index:"unique,sparse"`
	Gender     string               `json:"gender,omitempty" bson:"gender,omitempty"`
	Place      string               `json:"place,omitempty" bson:"place,omitempty"`
	Image      string               `json:"image,omitempty" bson:"image,omitempty"`
	Businesses []primitive.ObjectID `json:"businesses" bson:"businesses"`
	Enquiries  []primitive.ObjectID `json:"enquiries" bson:"enquiries"`
	Ratings    []primitive.ObjectID `json:"ratings" bson:"ratings"`
	OTP        OTP                  `json:"-" bson:"otp,omitempty"`
	CreatedAt  int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64                `json:"updatedAt" bson:"updatedAt"`
}
