package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/arjunsharma6622/galaxygrow-server/core/api/dto"
	models "github.com/arjunsharma6622/galaxygrow-server/core/api/models/mongodb"
	"github.com/arjunsharma6622/galaxygrow-server/core/common"
	"github.com/arjunsharma6622/galaxygrow-server/core/global"
)

// CityService manages the known cities.
type CityService struct {
	*BaseServiceMongoImpl[models.City]
}

// NewCityService creates a CityService wired to the cities collection.
func NewCityService() (*CityService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Cities)
	if !exist {
		return nil, fmt.Errorf("failed to get cities collection: %v", common.ErrNotFound)
	}

	return &CityService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.City](collection),
	}, nil
}

// FindByName looks a city up by its exact name.
func (s *CityService) FindByName(ctx context.Context, name string) (models.City, error) {
	return s.FindOne(ctx, bson.M{"name": name}, nil)
}

// ApplyUpdate maps a validated update input onto a $set document and
// applies it. A coordinate change requires both lat and long.
func (s *CityService) ApplyUpdate(ctx context.Context, id primitive.ObjectID, input *dto.CityUpdateInput) (models.City, error) {
	set := bson.M{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Lat != nil && input.Long != nil {
		set["coordinates"] = models.NewGeoPoint(*input.Long, *input.Lat)
	} else if input.Lat != nil || input.Long != nil {
		var zero models.City
		return zero, common.NewError(common.ErrCodeValidationInput,
			"Both lat and long are required to move a city",
			common.StatusBadRequest, nil)
	}

	if len(set) == 0 {
		return s.FindOneById(ctx, id)
	}

	return s.UpdateById(ctx, id, bson.M{"$set": set})
}
