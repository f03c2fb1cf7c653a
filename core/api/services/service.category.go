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
	"github.com/arjunsharma6622/galaxygrow-server/core/utility"
)

// CategoryService manages business categories.
type CategoryService struct {
	*BaseServiceMongoImpl[models.Category]
}

// NewCategoryService creates a CategoryService wired to the categories
// collection.
func NewCategoryService() (*CategoryService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %v", common.ErrNotFound)
	}

	return &CategoryService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Category](collection),
	}, nil
}

// CreateMany stores a batch of categories in one call.
func (s *CategoryService) CreateMany(ctx context.Context, inputs []dto.CategoryCreateInput) ([]models.Category, error) {
	categories := make([]models.Category, 0, len(inputs))
	for i := range inputs {
		category := inputs[i].ToModel()
		category.Businesses = []primitive.ObjectID{}
		categories = append(categories, category)
	}

	return s.InsertMany(ctx, categories)
}

// FindByName looks a category up by its exact name, case insensitively.
func (s *CategoryService) FindByName(ctx context.Context, name string) (models.Category, error) {
	return s.FindOne(ctx, bson.M{
		"name": primitive.Regex{Pattern: "^" + name + "$", Options: "i"},
	}, nil)
}

// ApplyUpdate maps a validated update input onto a $set document and
// applies it.
func (s *CategoryService) ApplyUpdate(ctx context.Context, id primitive.ObjectID, input *dto.CategoryUpdateInput) (models.Category, error) {
	set := bson.M{}
	if input.CategoryTitle != nil {
		set["categoryTitle"] = utility.String2ObjectID(*input.CategoryTitle)
	}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.ShowOnHome != nil {
		set["showOnHome"] = *input.ShowOnHome
	}
	if input.Image != nil {
		set["image"] = *input.Image
	}
	if input.Icon != nil {
		set["icon"] = *input.Icon
	}
	if input.BusinessType != nil {
		set["businessType"] = *input.BusinessType
	}
	if input.Keywords != nil {
		set["keywords"] = *input.Keywords
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}

	if len(set) == 0 {
		return s.FindOneById(ctx, id)
	}

	return s.UpdateById(ctx, id, bson.M{"$set": set})
}

// BackfillBusinessType stamps service on every category missing a
// business type.
func (s *CategoryService) BackfillBusinessType(ctx context.Context) (int64, error) {
	filter := bson.M{"$or": []bson.M{
		{"businessType": bson.M{"$exists": false}},
		{"businessType": ""},
	}}
	return s.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"businessType": "service"}}, nil)
}
