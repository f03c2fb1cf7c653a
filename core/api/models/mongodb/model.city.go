package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// City is a known city with its coordinates, used to resolve the origin
// of nearby queries by name.
type City struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" index:"unique"`
	Coordinates GeoPoint           `json:"coordinates" bson:"coordinates" index:"2dsphere"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
