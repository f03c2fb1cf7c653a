package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category groups businesses under a category title.
type Category struct {
	ID            primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	CategoryTitle primitive.ObjectID   `json:"categoryTitle,omitempty" bson:"categoryTitle,omitempty" index:"single"`
	Name          string               `json:"name" bson:"name" index:"unique"`
	ShowOnHome    bool                 `json:"showOnHome" bson:"showOnHome"`
	Image         Image                `json:"image" bson:"image"`
	Icon          string               `json:"icon,omitempty" bson:"icon,omitempty"`
	Businesses    []primitive.ObjectID `json:"businesses" bson:"businesses"`
	BusinessType  string               `json:"businessType" bson:"businessType"`
	Keywords      []string             `json:"keywords" bson:"keywords"`
	Description   string               `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt     int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64                `json:"updatedAt" bson:"updatedAt"`
}

// CategoryTitle is a heading grouping several categories.
type CategoryTitle struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title      string             `json:"title" bson:"title"`
	ShowOnHome bool               `json:"showOnHome" bson:"showOnHome"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
