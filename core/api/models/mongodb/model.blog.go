package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog is an editorial article, optionally tied to a category.
type Blog struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Category    primitive.ObjectID `json:"category,omitempty" bson:"category,omitempty" index:"single"`
	Author      string             `json:"author,omitempty" bson:"author,omitempty"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
