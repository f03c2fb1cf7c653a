package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Package is a subscription plan offered to vendors. Category is one of
// service, doctor, manufacturer.
type Package struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Price       float64            `json:"price" bson:"price"`
	PrevPrice   float64            `json:"prevPrice,omitempty" bson:"prevPrice,omitempty"`
	Description string             `json:"desc,omitempty" bson:"desc,omitempty"`
	Category    string             `json:"category" bson:"category"`
	Features    []string           `json:"features" bson:"features"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
