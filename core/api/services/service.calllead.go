package services

import (
	"context"
	"fmt"
	"time"

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

// CallLeadService manages phone leads and their OTP verification.
type CallLeadService struct {
	*BaseServiceMongoImpl[models.CallLead]
	businesses *BaseServiceMongoImpl[models.Business]
	sms        *clients.Fast2SMS
}

// NewCallLeadService creates a CallLeadService wired to the registered
// collections.
func NewCallLeadService() (*CallLeadService, error) {
	callLeadCollection, exist := global.RegistryCollections.Get(global.ColNames.CallLeads)
	if !exist {
		return nil, fmt.Errorf("failed to get call_leads collection: %v", common.ErrNotFound)
	}

	businessCollection, exist := global.RegistryCollections.Get(global.ColNames.Businesses)
	if !exist {
		return nil, fmt.Errorf("failed to get businesses collection: %v", common.ErrNotFound)
	}

	return &CallLeadService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.CallLead](callLeadCollection),
		businesses:           NewBaseServiceMongo[models.Business](businessCollection),
		sms:                  clients.NewFast2SMS(global.ServerConfig.Fast2SMSAPIKey),
	}, nil
}

// Create records an anonymous lead, links it into the business and
// dispatches a verification OTP with a 10 minute window.
func (s *CallLeadService) Create(ctx context.Context, input *dto.CallLeadCreateInput) (models.CallLead, error) {
	log := logger.GetAppLogger()
	var zero models.CallLead

	lead := input.ToModel()
	if _, err := s.businesses.FindOneById(ctx, lead.Business); err != nil {
		return zero, err
	}

	created, err := s.InsertOne(ctx, lead)
	if err != nil {
		return zero, err
	}

	if _, err := s.businesses.UpdateById(ctx, created.Business,
		bson.M{"$push": bson.M{"callLeads": created.ID}}); err != nil {
		return zero, err
	}

	otp := utility.GenerateOTP()
	updated, err := s.UpdateById(ctx, created.ID, bson.M{"$set": bson.M{"otp": bson.M{
		"value":   otp,
		"expires": time.Now().Add(CallLeadOTPTTL).UnixMilli(),
	}}})
	if err != nil {
		return zero, err
	}

	if err := s.sms.SendOTP(ctx, created.Phone, otp); err != nil {
		// the lead stands, verification can be retried
		log.WithError(err).WithField("phone", created.Phone).Warn("Cannot dispatch call lead OTP")
	}

	return updated, nil
}

// CreateVerified records a lead from an authenticated caller, skipping
// OTP verification.
func (s *CallLeadService) CreateVerified(ctx context.Context, input *dto.CallLeadCreateInput) (models.CallLead, error) {
	var zero models.CallLead

	lead := input.ToModel()
	lead.Verified = true

	if _, err := s.businesses.FindOneById(ctx, lead.Business); err != nil {
		return zero, err
	}

	created, err := s.InsertOne(ctx, lead)
	if err != nil {
		return zero, err
	}

	if _, err := s.businesses.UpdateById(ctx, created.Business,
		bson.M{"$push": bson.M{"callLeads": created.ID}}); err != nil {
		return zero, err
	}

	return created, nil
}

// Verify checks a lead's OTP, clears it and marks the lead verified.
func (s *CallLeadService) Verify(ctx context.Context, id primitive.ObjectID, otp string) (models.CallLead, error) {
	var zero models.CallLead

	lead, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}

	if err := CheckOTP(lead.OTP.Value, lead.OTP.Expires, otp); err != nil {
		return zero, err
	}

	return s.UpdateById(ctx, id, &UpdateData{
		Set:   map[string]interface{}{"verified": true},
		Unset: map[string]interface{}{"otp": ""},
	})
}

// Remove deletes a lead and unlinks it from its business.
func (s *CallLeadService) Remove(ctx context.Context, id primitive.ObjectID) (models.CallLead, error) {
	lead, err := s.FindOneAndDelete(ctx, bson.M{"_id": id}, nil)
	if err != nil {
		var zero models.CallLead
		return zero, err
	}

	// business may have been removed already, not an error here
	_, _ = s.businesses.UpdateById(ctx, lead.Business,
		bson.M{"$pull": bson.M{"callLeads": id}})

	return lead, nil
}
