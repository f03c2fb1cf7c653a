package dto

import (
	models "github.com/arjunsharma6622/galaxygrow-server/core/api/models/mongodb"
	"github.com/arjunsharma6622/galaxygrow-server/core/utility"
)

// BusinessCreateInput is the payload for registering a business.
type BusinessCreateInput struct {
	Name          string               `json:"name" validate:"required,no_xss"`
	Type          string               `json:"type" validate:"required,oneof=service doctor manufacturing"`
	ProfileImg    string               `json:"profileImg,omitempty"`
	VendorName    string               `json:"vendorName,omitempty"`
	FoundedIn     int64                `json:"foundedIn,omitempty"`
	Description   string               `json:"description,omitempty"`
	Email         string               `json:"email,omitempty" validate:"omitempty,email"`
	Category      string               `json:"category" validate:"required,objectid"`
	Services      []string             `json:"services,omitempty"`
	Address       models.Address       `json:"address"`
	Iframe        models.Iframe        `json:"iframe,omitempty"`
	Phone         string               `json:"phone,omitempty" validate:"omitempty,len=10,numeric"`
	Timing        []models.Timing      `json:"timing,omitempty"`
	Images        models.BusinessImages `json:"images,omitempty"`
	ModeOfPayment []models.PaymentMode `json:"modeOfPayment,omitempty"`
	SocialLinks   models.SocialLinks   `json:"socialLinks,omitempty"`
	FAQs          []models.FAQ         `json:"faqs,omitempty"`
}

// ToModel converts the input into a Business document. The vendor id is
// filled by the service from the authenticated principal.
func (i *BusinessCreateInput) ToModel() models.Business {
	return models.Business{
		Name:          i.Name,
		Type:          i.Type,
		ProfileImg:    i.ProfileImg,
		VendorName:    i.VendorName,
		FoundedIn:     i.FoundedIn,
		Description:   i.Description,
		Email:         i.Email,
		Category:      utility.String2ObjectID(i.Category),
		Services:      i.Services,
		Address:       i.Address,
		Iframe:        i.Iframe,
		Phone:         i.Phone,
		Timing:        i.Timing,
		Images:        i.Images,
		ModeOfPayment: i.ModeOfPayment,
		SocialLinks:   i.SocialLinks,
		FAQs:          i.FAQs,
	}
}

// BusinessUpdateInput is the payload for updating a business. Unknown
// fields in the request body are rejected at parse time.
type BusinessUpdateInput struct {
	Name          *string               `json:"name,omitempty" validate:"omitempty,no_xss"`
	Type          *string               `json:"type,omitempty" validate:"omitempty,oneof=service doctor manufacturing"`
	ProfileImg    *string               `json:"profileImg,omitempty"`
	VendorName    *string               `json:"vendorName,omitempty"`
	FoundedIn     *int64                `json:"foundedIn,omitempty"`
	Description   *string               `json:"description,omitempty"`
	Email         *string               `json:"email,omitempty" validate:"omitempty,email"`
	Category      *string               `json:"category,omitempty" validate:"omitempty,objectid"`
	Services      *[]string             `json:"services,omitempty"`
	Address       *models.Address       `json:"address,omitempty"`
	Iframe        *models.Iframe        `json:"iframe,omitempty"`
	Phone         *string               `json:"phone,omitempty" validate:"omitempty,len=10,numeric"`
	Timing        *[]models.Timing      `json:"timing,omitempty"`
	Images        *models.BusinessImages `json:"images,omitempty"`
	ModeOfPayment *[]models.PaymentMode `json:"modeOfPayment,omitempty"`
	SocialLinks   *models.SocialLinks   `json:"socialLinks,omitempty"`
	FAQs          *[]models.FAQ         `json:"faqs,omitempty"`
}

// PaymentIconUpdateInput is the payload for replacing the icon of one
// accepted payment mode, matched by name.
type PaymentIconUpdateInput struct {
	Mode string `json:"mode" validate:"required"`
	Icon string `json:"icon" validate:"required,url"`
}
