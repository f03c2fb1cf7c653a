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

// EnquiryService manages contact enquiries.
type EnquiryService struct {
	*BaseServiceMongoImpl[models.Enquiry]
	businesses *BaseServiceMongoImpl[models.Business]
}

// NewEnquiryService creates an EnquiryService wired to the registered
// collections.
func NewEnquiryService() (*EnquiryService, error) {
	enquiryCollection, exist := global.RegistryCollections.Get(global.ColNames.Enquiries)
	if !exist {
		return nil, fmt.Errorf("failed to get enquiries collection: %v", common.ErrNotFound)
	}

	businessCollection, exist := global.RegistryCollections.Get(global.ColNames.Businesses)
	if !exist {
		return nil, fmt.Errorf("failed to get businesses collection: %v", common.ErrNotFound)
	}

	return &EnquiryService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Enquiry](enquiryCollection),
		businesses:           NewBaseServiceMongo[models.Business](businessCollection),
	}, nil
}

// Create stores an enquiry and, when it targets a business, links it
// into that business's enquiry list.
func (s *EnquiryService) Create(ctx context.Context, input *dto.EnquiryCreateInput) (models.Enquiry, error) {
	var zero models.Enquiry

	enquiry := input.ToModel()
	created, err := s.InsertOne(ctx, enquiry)
	if err != nil {
		return zero, err
	}

	if !created.Business.IsZero() {
		if _, err := s.businesses.UpdateById(ctx, created.Business,
			bson.M{"$push": bson.M{"enquiries": created.ID}}); err != nil {
			return zero, err
		}
	}

	return created, nil
}

// UpdateStatus moves an enquiry between pending, resolved and rejected.
func (s *EnquiryService) UpdateStatus(ctx context.Context, id primitive.ObjectID, input *dto.EnquiryUpdateInput) (models.Enquiry, error) {
	if input.Status == nil {
		return s.FindOneById(ctx, id)
	}
	return s.UpdateById(ctx, id, bson.M{"$set": bson.M{"status": *input.Status}})
}
