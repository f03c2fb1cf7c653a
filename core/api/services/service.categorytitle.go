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

// CategoryTitleService manages the headings grouping categories.
type CategoryTitleService struct {
	*BaseServiceMongoImpl[models.CategoryTitle]
	categories *BaseServiceMongoImpl[models.Category]
}

// NewCategoryTitleService creates a CategoryTitleService wired to the
// registered collections.
func NewCategoryTitleService() (*CategoryTitleService, error) {
	titleCollection, exist := global.RegistryCollections.Get(global.ColNames.CategoryTitles)
	if !exist {
		return nil, fmt.Errorf("failed to get category_titles collection: %v", common.ErrNotFound)
	}

	categoryCollection, exist := global.RegistryCollections.Get(global.ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %v", common.ErrNotFound)
	}

	return &CategoryTitleService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.CategoryTitle](titleCollection),
		categories:           NewBaseServiceMongo[models.Category](categoryCollection),
	}, nil
}

// TitleWithCategories is one heading joined with its categories.
type TitleWithCategories struct {
	models.CategoryTitle `bson:",inline"`
	Categories           []models.Category `json:"categories"`
}

// FindAllWithCategories lists every heading together with the
// categories under it.
func (s *CategoryTitleService) FindAllWithCategories(ctx context.Context) ([]TitleWithCategories, error) {
	titles, err := s.Find(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	result := make([]TitleWithCategories, 0, len(titles))
	for _, title := range titles {
		categories, err := s.categories.Find(ctx, bson.M{"categoryTitle": title.ID}, nil)
		if err != nil {
			return nil, err
		}
		result = append(result, TitleWithCategories{
			CategoryTitle: title,
			Categories:    categories,
		})
	}

	return result, nil
}

// ApplyUpdate maps a validated update input onto a $set document and
// applies it.
func (s *CategoryTitleService) ApplyUpdate(ctx context.Context, id primitive.ObjectID, input *dto.CategoryTitleUpdateInput) (models.CategoryTitle, error) {
	set := bson.M{}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.ShowOnHome != nil {
		set["showOnHome"] = *input.ShowOnHome
	}

	if len(set) == 0 {
		return s.FindOneById(ctx, id)
	}

	return s.UpdateById(ctx, id, bson.M{"$set": set})
}
