package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating is a review of a business by a user.
type Rating struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID     primitive.ObjectID `json:"userId" bson:"userId" index:"single"`
	BusinessID primitive.ObjectID `json:"businessId" bson:"businessId" index:"single"`
	Rating     float64            `json:"rating" bson:"rating"`
	Review     string             `json:"review" bson:"review"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}

// RatingWithAuthor is a rating joined with its author's public profile.
type RatingWithAuthor struct {
	Rating `bson:",inline"`
	Author struct {
		Name  string `json:"name" bson:"name"`
		Image string `json:"image,omitempty" bson:"image,omitempty"`
	} `json:"author" bson:"author"`
}

// RatingSummary aggregates the ratings of one business.
type RatingSummary struct {
	Ratings      []RatingWithAuthor `json:"ratings"`
	AvgRating    float64            `json:"avgRating"`
	TotalRatings int                `json:"totalRatings"`
}
