package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/arjunsharma6622/galaxygrow-server/core/api/dto"
	models "github.com/arjunsharma6622/galaxygrow-server/core/api/models/mongodb"
	"github.com/arjunsharma6622/galaxygrow-server/core/common"
	"github.com/arjunsharma6622/galaxygrow-server/core/global"
	"github.com/arjunsharma6622/galaxygrow-server/core/utility"
)

// PackageService manages vendor subscription packages.
type PackageService struct {
	*BaseServiceMongoImpl[models.Package]
}

// NewPackageService creates a PackageService wired to the packages
// collection.
func NewPackageService() (*PackageService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Packages)
	if !exist {
		return nil, fmt.Errorf("failed to get packages collection: %v", common.ErrNotFound)
	}

	return &PackageService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Package](collection),
	}, nil
}

// CreateMany stores a batch of packages in one call.
func (s *PackageService) CreateMany(ctx context.Context, inputs []dto.PackageCreateInput) ([]models.Package, error) {
	packages := make([]models.Package, 0, len(inputs))
	for i := range inputs {
		packages = append(packages, inputs[i].ToModel())
	}

	return s.InsertMany(ctx, packages)
}

// ApplyUpdate updates the package addressed by the input's id.
func (s *PackageService) ApplyUpdate(ctx context.Context, input *dto.PackageUpdateInput) (models.Package, error) {
	set := bson.M{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Price != nil {
		set["price"] = *input.Price
	}
	if input.PrevPrice != nil {
		set["prevPrice"] = *input.PrevPrice
	}
	if input.Description != nil {
		set["desc"] = *input.Description
	}
	if input.Category != nil {
		set["category"] = *input.Category
	}
	if input.Features != nil {
		set["features"] = *input.Features
	}

	id := utility.String2ObjectID(input.ID)
	if len(set) == 0 {
		return s.FindOneById(ctx, id)
	}

	return s.UpdateById(ctx, id, bson.M{"$set": set})
}
