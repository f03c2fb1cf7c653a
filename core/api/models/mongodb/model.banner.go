package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Banner is a promotional image shown on the home page.
type Banner struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Image     string             `json:"image" bson:"image"`
	Link      string             `json:"link,omitempty" bson:"link,omitempty"`
	Active    bool               `json:"active" bson:"active"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
