package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/arjunsharma6622/galaxygrow-server/core/api/dto"
	models "github.com/arjunsharma6622/galaxygrow-server/core/api/models/mongodb"
	"github.com/arjunsharma6622/galaxygrow-server/core/common"
	"github.com/arjunsharma6622/galaxygrow-server/core/global"
)

// ErrBusinessNameTaken is returned when a business registers under a
// name that already exists.
var ErrBusinessNameTaken = common.NewError(common.ErrCodeDatabaseQuery, "Business name already in use", common.StatusConflict, nil)

// BusinessService manages business listings and their cross references
// into categories and owners.
type BusinessService struct {
	*BaseServiceMongoImpl[models.Business]
	categories *BaseServiceMongoImpl[models.Category]
	users      *BaseServiceMongoImpl[models.User]
	vendors    *BaseServiceMongoImpl[models.Vendor]
}

// NewBusinessService creates a BusinessService wired to the registered
// collections.
func NewBusinessService() (*BusinessService, error) {
	businessCollection, exist := global.RegistryCollections.Get(global.ColNames.Businesses)
	if !exist {
		return nil, fmt.Errorf("failed to get businesses collection: %v", common.ErrNotFound)
	}

	categoryCollection, exist := global.RegistryCollections.Get(global.ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %v", common.ErrNotFound)
	}

	userCollection, exist := global.RegistryCollections.Get(global.ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	vendorCollection, exist := global.RegistryCollections.Get(global.ColNames.Vendors)
	if !exist {
		return nil, fmt.Errorf("failed to get vendors collection: %v", common.ErrNotFound)
	}

	return &BusinessService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Business](businessCollection),
		categories:           NewBaseServiceMongo[models.Category](categoryCollection),
		users:                NewBaseServiceMongo[models.User](userCollection),
		vendors:              NewBaseServiceMongo[models.Vendor](vendorCollection),
	}, nil
}

// Register creates a business for a vendor and links it into the
// category and the owner's business list.
func (s *BusinessService) Register(ctx context.Context, input *dto.BusinessCreateInput, vendorID primitive.ObjectID, vendorKind string) (models.Business, error) {
	var zero models.Business

	taken, err := s.DocumentExists(ctx, bson.M{"name": input.Name})
	if err != nil {
		return zero, err
	}
	if taken {
		return zero, ErrBusinessNameTaken
	}

	business := input.ToModel()
	business.VendorID = vendorID
	business.Posts = []primitive.ObjectID{}
	business.Ratings = []primitive.ObjectID{}
	business.CallLeads = []primitive.ObjectID{}
	business.Enquiries = []primitive.ObjectID{}

	created, err := s.InsertOne(ctx, business)
	if err != nil {
		return zero, err
	}

	push := bson.M{"$push": bson.M{"businesses": created.ID}}
	if !created.Category.IsZero() {
		if _, err := s.categories.UpdateById(ctx, created.Category, push); err != nil {
			return zero, err
		}
	}

	// admins register on behalf of user accounts, vendors own directly
	switch vendorKind {
	case models.PrincipalVendor:
		if _, err := s.vendors.UpdateById(ctx, vendorID, push); err != nil {
			return zero, err
		}
	default:
		if _, err := s.users.UpdateById(ctx, vendorID, push); err != nil {
			return zero, err
		}
	}

	return created, nil
}

// FindByName looks a business up by its URL slug, with hyphens standing
// in for spaces.
func (s *BusinessService) FindByName(ctx context.Context, slug string) (models.Business, error) {
	name := regexp.QuoteMeta(strings.ReplaceAll(slug, "-", " "))

	return s.FindOne(ctx, bson.M{
		"name": primitive.Regex{Pattern: "^" + name + "$", Options: "i"},
	}, nil)
}

// FindByCategory lists the businesses of one category.
func (s *BusinessService) FindByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Business, error) {
	return s.Find(ctx, bson.M{"category": categoryID}, nil)
}

// ApplyUpdate maps a validated update input onto a $set document and
// applies it.
func (s *BusinessService) ApplyUpdate(ctx context.Context, id primitive.ObjectID, input *dto.BusinessUpdateInput) (models.Business, error) {
	set := bson.M{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Type != nil {
		set["type"] = *input.Type
	}
	if input.ProfileImg != nil {
		set["profileImg"] = *input.ProfileImg
	}
	if input.VendorName != nil {
		set["vendorName"] = *input.VendorName
	}
	if input.FoundedIn != nil {
		set["foundedIn"] = *input.FoundedIn
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Email != nil {
		set["email"] = *input.Email
	}
	if input.Category != nil {
		categoryID, err := primitive.ObjectIDFromHex(*input.Category)
		if err != nil {
			var zero models.Business
			return zero, common.ErrInvalidFormat
		}
		set["category"] = categoryID
	}
	if input.Services != nil {
		set["services"] = *input.Services
	}
	if input.Address != nil {
		set["address"] = *input.Address
	}
	if input.Iframe != nil {
		set["iframe"] = *input.Iframe
	}
	if input.Phone != nil {
		set["phone"] = *input.Phone
	}
	if input.Timing != nil {
		set["timing"] = *input.Timing
	}
	if input.Images != nil {
		set["images"] = *input.Images
	}
	if input.ModeOfPayment != nil {
		set["modeOfPayment"] = *input.ModeOfPayment
	}
	if input.SocialLinks != nil {
		set["socialLinks"] = *input.SocialLinks
	}
	if input.FAQs != nil {
		set["faqs"] = *input.FAQs
	}

	if len(set) == 0 {
		return s.FindOneById(ctx, id)
	}

	return s.UpdateById(ctx, id, bson.M{"$set": set})
}

// UpdatePaymentModeIcon replaces the icon of one payment mode by name.
func (s *BusinessService) UpdatePaymentModeIcon(ctx context.Context, id primitive.ObjectID, modeName, icon string) (models.Business, error) {
	business, err := s.FindOneById(ctx, id)
	if err != nil {
		var zero models.Business
		return zero, err
	}

	for i := range business.ModeOfPayment {
		if business.ModeOfPayment[i].Name == modeName {
			business.ModeOfPayment[i].Icon = icon
		}
	}

	return s.UpdateById(ctx, id, bson.M{"$set": bson.M{"modeOfPayment": business.ModeOfPayment}})
}

// Remove deletes a business and pulls its id out of the owning category
// and principal.
func (s *BusinessService) Remove(ctx context.Context, id primitive.ObjectID, ownerID primitive.ObjectID, ownerKind string) (models.Business, error) {
	business, err := s.FindOneAndDelete(ctx, bson.M{"_id": id}, nil)
	if err != nil {
		var zero models.Business
		return zero, err
	}

	pull := bson.M{"$pull": bson.M{"businesses": id}}
	if !business.Category.IsZero() {
		// category may have been removed already, not an error here
		_, _ = s.categories.UpdateById(ctx, business.Category, pull)
	}

	switch ownerKind {
	case models.PrincipalVendor:
		_, _ = s.vendors.UpdateById(ctx, ownerID, pull)
	default:
		_, _ = s.users.UpdateById(ctx, ownerID, pull)
	}

	return business, nil
}
