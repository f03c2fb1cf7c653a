package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is an update published by a business.
type Post struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	BusinessID  primitive.ObjectID `json:"businessId" bson:"businessId" index:"single"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
