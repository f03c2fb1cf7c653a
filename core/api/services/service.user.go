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

// UserService manages user accounts.
type UserService struct {
	*BaseServiceMongoImpl[models.User]
}

// NewUserService creates a UserService wired to the users collection.
func NewUserService() (*UserService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.User](collection),
	}, nil
}

// FindAllByRole lists the accounts holding the given role.
func (s *UserService) FindAllByRole(ctx context.Context, role string) ([]models.User, error) {
	return s.Find(ctx, bson.M{"role": role}, nil)
}

// UpdateProfile applies the allowed profile changes to one user. A new
// password is hashed before it is stored.
func (s *UserService) UpdateProfile(ctx context.Context, id primitive.ObjectID, input *dto.UserUpdateInput) (models.User, error) {
	set := bson.M{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Place != nil {
		set["place"] = *input.Place
	}
	if input.Image != nil {
		set["image"] = *input.Image
	}
	if input.Password != nil {
		hashed, err := utility.HashPassword(*input.Password)
		if err != nil {
			var zero models.User
			return zero, err
		}
		set["password"] = hashed
	}

	if len(set) == 0 {
		return s.FindOneById(ctx, id)
	}

	return s.UpdateById(ctx, id, bson.M{"$set": set})
}
