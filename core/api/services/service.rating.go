package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/arjunsharma6622/galaxygrow-server/core/api/dto"
	models "github.com/arjunsharma6622/galaxygrow-server/core/api/models/mongodb"
	"github.com/arjunsharma6622/galaxygrow-server/core/common"
	"github.com/arjunsharma6622/galaxygrow-server/core/global"
)

// RatingService manages business reviews.
type RatingService struct {
	*BaseServiceMongoImpl[models.Rating]
	businesses *BaseServiceMongoImpl[models.Business]
	users      *BaseServiceMongoImpl[models.User]
	vendors    *BaseServiceMongoImpl[models.Vendor]
}

// NewRatingService creates a RatingService wired to the registered
// collections.
func NewRatingService() (*RatingService, error) {
	ratingCollection, exist := global.RegistryCollections.Get(global.ColNames.Ratings)
	if !exist {
		return nil, fmt.Errorf("failed to get ratings collection: %v", common.ErrNotFound)
	}

	businessCollection, exist := global.RegistryCollections.Get(global.ColNames.Businesses)
	if !exist {
		return nil, fmt.Errorf("failed to get businesses collection: %v", common.ErrNotFound)
	}

	userCollection, exist := global.RegistryCollections.Get(global.ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	vendorCollection, exist := global.RegistryCollections.Get(global.ColNames.Vendors)
	if !exist {
		return nil, fmt.Errorf("failed to get vendors collection: %v", common.ErrNotFound)
	}

	return &RatingService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Rating](ratingCollection),
		businesses:           NewBaseServiceMongo[models.Business](businessCollection),
		users:                NewBaseServiceMongo[models.User](userCollection),
		vendors:              NewBaseServiceMongo[models.Vendor](vendorCollection),
	}, nil
}

// Create stores a rating for a business and links it into the
// business's rating list.
func (s *RatingService) Create(ctx context.Context, input *dto.RatingCreateInput, businessID, userID primitive.ObjectID) (models.Rating, error) {
	var zero models.Rating

	rating := input.ToModel()
	rating.BusinessID = businessID
	rating.UserID = userID

	if _, err := s.businesses.FindOneById(ctx, rating.BusinessID); err != nil {
		return zero, err
	}

	created, err := s.InsertOne(ctx, rating)
	if err != nil {
		return zero, err
	}

	if _, err := s.businesses.UpdateById(ctx, created.BusinessID,
		bson.M{"$push": bson.M{"ratings": created.ID}}); err != nil {
		return zero, err
	}

	return created, nil
}

// Summary lists a business's ratings joined with their author profiles
// and folds in the one decimal average. Ratings whose author no longer
// exists are dropped from the result.
func (s *RatingService) Summary(ctx context.Context, businessID primitive.ObjectID) (*models.RatingSummary, error) {
	ratings, err := s.Find(ctx, bson.M{"businessId": businessID}, nil)
	if err != nil {
		return nil, err
	}

	joined := make([]models.RatingWithAuthor, 0, len(ratings))
	var sum float64
	for _, rating := range ratings {
		name, image, err := s.authorProfile(ctx, rating.UserID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				continue
			}
			return nil, err
		}

		entry := models.RatingWithAuthor{Rating: rating}
		entry.Author.Name = name
		entry.Author.Image = image
		joined = append(joined, entry)
		sum += rating.Rating
	}

	var avg float64
	if len(joined) > 0 {
		avg = math.Round(sum/float64(len(joined))*10) / 10
	}

	return &models.RatingSummary{
		Ratings:      joined,
		AvgRating:    avg,
		TotalRatings: len(joined),
	}, nil
}

// authorProfile resolves a rating author, checking users first and
// vendors second.
func (s *RatingService) authorProfile(ctx context.Context, id primitive.ObjectID) (string, string, error) {
	user, err := s.users.FindOneById(ctx, id)
	if err == nil {
		return user.Name, user.Image, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return "", "", err
	}

	vendor, err := s.vendors.FindOneById(ctx, id)
	if err != nil {
		return "", "", err
	}
	return vendor.Name, vendor.Image, nil
}
