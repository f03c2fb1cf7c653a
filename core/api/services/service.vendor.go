package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/arjunsharma6622/galaxygrow-server/core/api/dto"
	models "github.com/arjunsharma6622/galaxygrow-server/core/api/models/mongodb"
	"github.com/arjunsharma6622/galaxygrow-server/core/common"
	"github.com/arjunsharma6622/galaxygrow-server/core/global"
	"github.com/arjunsharma6622/galaxygrow-server/core/utility"
)

var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// VendorService manages vendor accounts and their aggregate views.
type VendorService struct {
	*BaseServiceMongoImpl[models.Vendor]
	businesses *BaseServiceMongoImpl[models.Business]
	callLeads  *BaseServiceMongoImpl[models.CallLead]
}

// NewVendorService creates a VendorService wired to the registered
// collections.
func NewVendorService() (*VendorService, error) {
	vendorCollection, exist := global.RegistryCollections.Get(global.ColNames.Vendors)
	if !exist {
		return nil, fmt.Errorf("failed to get vendors collection: %v", common.ErrNotFound)
	}

	businessCollection, exist := global.RegistryCollections.Get(global.ColNames.Businesses)
	if !exist {
		return nil, fmt.Errorf("failed to get businesses collection: %v", common.ErrNotFound)
	}

	callLeadCollection, exist := global.RegistryCollections.Get(global.ColNames.CallLeads)
	if !exist {
		return nil, fmt.Errorf("failed to get call_leads collection: %v", common.ErrNotFound)
	}

	return &VendorService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Vendor](vendorCollection),
		businesses:           NewBaseServiceMongo[models.Business](businessCollection),
		callLeads:            NewBaseServiceMongo[models.CallLead](callLeadCollection),
	}, nil
}

// Businesses lists the businesses owned by one vendor.
func (s *VendorService) Businesses(ctx context.Context, vendorID primitive.ObjectID) ([]models.Business, error) {
	return s.businesses.Find(ctx, bson.M{"vendorId": vendorID}, nil)
}

// CallLeadStats buckets the vendor's call leads by calendar month,
// always returning all twelve months.
func (s *VendorService) CallLeadStats(ctx context.Context, vendorID primitive.ObjectID) ([]models.CallLeadMonthStat, error) {
	businesses, err := s.Businesses(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	businessIDs := make([]primitive.ObjectID, 0, len(businesses))
	for _, business := range businesses {
		businessIDs = append(businessIDs, business.ID)
	}

	counts := make(map[string]int)
	if len(businessIDs) > 0 {
		leads, err := s.callLeads.Find(ctx, bson.M{"business": bson.M{"$in": businessIDs}}, nil)
		if err != nil {
			return nil, err
		}
		for _, lead := range leads {
			month := time.UnixMilli(lead.CreatedAt).Month()
			counts[monthNames[int(month)-1]]++
		}
	}

	stats := make([]models.CallLeadMonthStat, 0, len(monthNames))
	for _, name := range monthNames {
		stats = append(stats, models.CallLeadMonthStat{Name: name, Leads: counts[name]})
	}

	return stats, nil
}

// UpdateProfile applies the allowed profile changes to one vendor.
func (s *VendorService) UpdateProfile(ctx context.Context, id primitive.ObjectID, input *dto.VendorUpdateInput) (models.Vendor, error) {
	set := bson.M{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Image != nil {
		set["image"] = *input.Image
	}
	if input.Password != nil {
		hashed, err := utility.HashPassword(*input.Password)
		if err != nil {
			var zero models.Vendor
			return zero, err
		}
		set["password"] = hashed
	}

	if len(set) == 0 {
		return s.FindOneById(ctx, id)
	}

	return s.UpdateById(ctx, id, bson.M{"$set": set})
}
