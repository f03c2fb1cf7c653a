package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/arjunsharma6622/galaxygrow-server/core/api/dto"
	models "github.com/arjunsharma6622/galaxygrow-server/core/api/models/mongodb"
	"github.com/arjunsharma6622/galaxygrow-server/core/clients"
	"github.com/arjunsharma6622/galaxygrow-server/core/common"
	"github.com/arjunsharma6622/galaxygrow-server/core/global"
	"github.com/arjunsharma6622/galaxygrow-server/core/logger"
	"github.com/arjunsharma6622/galaxygrow-server/core/utility"
)

// blogImageFolder is the Cloudinary folder where blog covers live.
const blogImageFolder = "aresuno/blogs"

// BlogService manages editorial articles.
type BlogService struct {
	*BaseServiceMongoImpl[models.Blog]
	cloudinary *clients.Cloudinary
}

// NewBlogService creates a BlogService wired to the blogs collection.
func NewBlogService() (*BlogService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Blogs)
	if !exist {
		return nil, fmt.Errorf("failed to get blogs collection: %v", common.ErrNotFound)
	}

	return &BlogService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Blog](collection),
		cloudinary: clients.NewCloudinary(
			global.ServerConfig.CloudinaryCloudName,
			global.ServerConfig.CloudinaryAPIKey,
			global.ServerConfig.CloudinaryAPISecret,
		),
	}, nil
}

// FindByCategory lists the articles of one category.
func (s *BlogService) FindByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Blog, error) {
	return s.Find(ctx, bson.M{"category": categoryID}, nil)
}

// ApplyUpdate maps a validated update input onto a $set document and
// applies it.
func (s *BlogService) ApplyUpdate(ctx context.Context, id primitive.ObjectID, input *dto.BlogUpdateInput) (models.Blog, error) {
	set := bson.M{}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Image != nil {
		set["image"] = *input.Image
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Category != nil {
		set["category"] = utility.String2ObjectID(*input.Category)
	}
	if input.Author != nil {
		set["author"] = *input.Author
	}

	if len(set) == 0 {
		return s.FindOneById(ctx, id)
	}

	return s.UpdateById(ctx, id, bson.M{"$set": set})
}

// Remove deletes an article and destroys its cover image on Cloudinary.
func (s *BlogService) Remove(ctx context.Context, id primitive.ObjectID) (models.Blog, error) {
	log := logger.GetAppLogger()

	blog, err := s.FindOneAndDelete(ctx, bson.M{"_id": id}, nil)
	if err != nil {
		var zero models.Blog
		return zero, err
	}

	if blog.Image != "" {
		publicID := clients.ExtractPublicID(blog.Image)
		if publicID != "" {
			if err := s.cloudinary.Destroy(ctx, blogImageFolder+"/"+publicID); err != nil {
				// the article is gone, an orphaned image is not fatal
				log.WithError(err).WithField("blogId", id.Hex()).Warn("Cannot destroy blog image")
			}
		}
	}

	return blog, nil
}
