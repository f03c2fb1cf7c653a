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

// PostService manages business posts.
type PostService struct {
	*BaseServiceMongoImpl[models.Post]
	businesses *BaseServiceMongoImpl[models.Business]
}

// NewPostService creates a PostService wired to the registered
// collections.
func NewPostService() (*PostService, error) {
	postCollection, exist := global.RegistryCollections.Get(global.ColNames.Posts)
	if !exist {
		return nil, fmt.Errorf("failed to get posts collection: %v", common.ErrNotFound)
	}

	businessCollection, exist := global.RegistryCollections.Get(global.ColNames.Businesses)
	if !exist {
		return nil, fmt.Errorf("failed to get businesses collection: %v", common.ErrNotFound)
	}

	return &PostService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Post](postCollection),
		businesses:           NewBaseServiceMongo[models.Business](businessCollection),
	}, nil
}

// Create publishes a post and links it into the business's post list.
func (s *PostService) Create(ctx context.Context, input *dto.PostCreateInput) (models.Post, error) {
	var zero models.Post

	post := input.ToModel()
	if _, err := s.businesses.FindOneById(ctx, post.BusinessID); err != nil {
		return zero, err
	}

	created, err := s.InsertOne(ctx, post)
	if err != nil {
		return zero, err
	}

	if _, err := s.businesses.UpdateById(ctx, created.BusinessID,
		bson.M{"$push": bson.M{"posts": created.ID}}); err != nil {
		return zero, err
	}

	return created, nil
}

// FindByBusiness lists the posts of one business.
func (s *PostService) FindByBusiness(ctx context.Context, businessID primitive.ObjectID) ([]models.Post, error) {
	return s.Find(ctx, bson.M{"businessId": businessID}, nil)
}

// Remove deletes a post and pulls its id out of the owning business.
func (s *PostService) Remove(ctx context.Context, id primitive.ObjectID) (models.Post, error) {
	post, err := s.FindOneAndDelete(ctx, bson.M{"_id": id}, nil)
	if err != nil {
		var zero models.Post
		return zero, err
	}

	// business may have been removed already, not an error here
	_, _ = s.businesses.UpdateById(ctx, post.BusinessID,
		bson.M{"$pull": bson.M{"posts": id}})

	return post, nil
}

// UpdateDescription edits a post's description, the only mutable field.
func (s *PostService) UpdateDescription(ctx context.Context, id primitive.ObjectID, input *dto.PostUpdateInput) (models.Post, error) {
	if input.Description == nil {
		return s.FindOneById(ctx, id)
	}
	return s.UpdateById(ctx, id, bson.M{"$set": bson.M{"description": *input.Description}})
}
