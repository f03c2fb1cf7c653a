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

// BannerService manages home page banners.
type BannerService struct {
	*BaseServiceMongoImpl[models.Banner]
}

// NewBannerService creates a BannerService wired to the banners
// collection.
func NewBannerService() (*BannerService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Banners)
	if !exist {
		return nil, fmt.Errorf("failed to get banners collection: %v", common.ErrNotFound)
	}

	return &BannerService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Banner](collection),
	}, nil
}

// ApplyUpdate maps a validated update input onto a $set document and
// applies it.
func (s *BannerService) ApplyUpdate(ctx context.Context, id primitive.ObjectID, input *dto.BannerUpdateInput) (models.Banner, error) {
	set := bson.M{}
	if input.Image != nil {
		set["image"] = *input.Image
	}
	if input.Link != nil {
		set["link"] = *input.Link
	}
	if input.Active != nil {
		set["active"] = *input.Active
	}

	if len(set) == 0 {
		return s.FindOneById(ctx, id)
	}

	return s.UpdateById(ctx, id, bson.M{"$set": set})
}
