package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/arjunsharma6622/galaxygrow-server/core/api/models/mongodb"
	"github.com/arjunsharma6622/galaxygrow-server/core/common"
	"github.com/arjunsharma6622/galaxygrow-server/core/global"
)

// MaxNearbyDistanceMeters bounds the geo search radius to 100 km.
const MaxNearbyDistanceMeters = 100000

var (
	// ErrCityNotFound is returned when a nearby query names an unknown city.
	ErrCityNotFound = common.NewError(common.ErrCodeDatabaseQuery, "City not found.", common.StatusNotFound, nil)
	// ErrMissingCoordinates is returned when a nearby query carries neither
	// coordinates nor a resolvable city.
	ErrMissingCoordinates = common.NewError(common.ErrCodeValidationInput, "Latitude and longitude are required.", common.StatusBadRequest, nil)
)

// NearbyResult is the payload of a nearby query, echoing the resolved
// origin as [lng, lat].
type NearbyResult struct {
	Businesses  []models.Business `json:"businesses"`
	Coordinates []float64         `json:"coordinates"`
}

// DirectoryService answers geographic business queries.
type DirectoryService struct {
	businesses *BaseServiceMongoImpl[models.Business]
	categories *BaseServiceMongoImpl[models.Category]
	cities     *BaseServiceMongoImpl[models.City]
}

// NewDirectoryService creates a DirectoryService wired to the registered
// collections.
func NewDirectoryService() (*DirectoryService, error) {
	businessCollection, exist := global.RegistryCollections.Get(global.ColNames.Businesses)
	if !exist {
		return nil, fmt.Errorf("failed to get businesses collection: %v", common.ErrNotFound)
	}

	categoryCollection, exist := global.RegistryCollections.Get(global.ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %v", common.ErrNotFound)
	}

	cityCollection, exist := global.RegistryCollections.Get(global.ColNames.Cities)
	if !exist {
		return nil, fmt.Errorf("failed to get cities collection: %v", common.ErrNotFound)
	}

	return &DirectoryService{
		businesses: NewBaseServiceMongo[models.Business](businessCollection),
		categories: NewBaseServiceMongo[models.Category](categoryCollection),
		cities:     NewBaseServiceMongo[models.City](cityCollection),
	}, nil
}

// ResolveOrigin turns the query parameters of a nearby request into a
// lng/lat pair. An explicit lat/long pair wins over a city name.
func (s *DirectoryService) ResolveOrigin(ctx context.Context, lat, long *float64, city string) (float64, float64, error) {
	if lat != nil && long != nil {
		return *long, *lat, nil
	}

	if city != "" {
		found, err := s.cities.FindOne(ctx, bson.M{
			"name": primitive.Regex{Pattern: city, Options: "i"},
		}, nil)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return 0, 0, ErrCityNotFound
			}
			return 0, 0, err
		}
		return found.Coordinates.Longitude(), found.Coordinates.Latitude(), nil
	}

	return 0, 0, ErrMissingCoordinates
}

// BuildNearbyPipeline assembles the aggregation for a nearby query. The
// $geoNear stage sorts nearest first and writes the computed distance in
// meters; the optional category stage filters afterwards.
func BuildNearbyPipeline(long, lat float64, categoryID *primitive.ObjectID) []bson.M {
	pipeline := []bson.M{
		{
			"$geoNear": bson.M{
				"near": bson.M{
					"type":        "Point",
					"coordinates": []float64{long, lat},
				},
				"key":           "address.coordinates",
				"distanceField": "distance",
				"maxDistance":   MaxNearbyDistanceMeters,
				"spherical":     true,
			},
		},
	}

	if categoryID != nil {
		pipeline = append(pipeline, bson.M{
			"$match": bson.M{"category": *categoryID},
		})
	}

	return pipeline
}

// categoryNameFilter matches a category by a case-insensitive substring
// of its name.
func categoryNameFilter(name string) bson.M {
	return bson.M{
		"name": primitive.Regex{Pattern: regexp.QuoteMeta(name), Options: "i"},
	}
}

// FindNearby lists the businesses within 100 km of the origin, nearest
// first, optionally restricted to a category matched by a
// case-insensitive substring of its name.
func (s *DirectoryService) FindNearby(ctx context.Context, long, lat float64, categoryName string) (*NearbyResult, error) {
	var categoryID *primitive.ObjectID
	if categoryName != "" {
		category, err := s.categories.FindOne(ctx, categoryNameFilter(categoryName), nil)
		if err != nil && !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		if err == nil {
			categoryID = &category.ID
		}
	}

	pipeline := BuildNearbyPipeline(long, lat, categoryID)
	cursor, err := s.businesses.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	businesses := []models.Business{}
	if err := cursor.All(ctx, &businesses); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return &NearbyResult{
		Businesses:  businesses,
		Coordinates: []float64{long, lat},
	}, nil
}
