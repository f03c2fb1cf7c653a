package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is a business location. Coordinates carries the 2dsphere index
// used by the nearby query. It is optional; a business without a geo
// point is stored without the field so the index does not reject it,
// and it never appears in nearby results.
type Address struct {
	Street      string    `json:"street,omitempty" bson:"street,omitempty"`
	Landmark    string    `json:"landmark,omitempty" bson:"landmark,omitempty"`
	Pincode     string    `json:"pincode,omitempty" bson:"pincode,omitempty"`
	City        string    `json:"city,omitempty" bson:"city,omitempty"`
	District    string    `json:"district,omitempty" bson:"district,omitempty"`
	State       string    `json:"state,omitempty" bson:"state,omitempty"`
	Coordinates *GeoPoint `json:"coordinates,omitempty" bson:"coordinates,omitempty"`
}

// Iframe holds the embedded map link of a business.
type Iframe struct {
	EmbedLink     string `json:"embedLink,omitempty" bson:"embedLink,omitempty"`
	ExtractedLink string `json:"extractedLink,omitempty" bson:"extractedLink,omitempty"`
}

// Timing is the opening window for one day of the week.
type Timing struct {
	Day    string `json:"day" bson:"day"`
	From   string `json:"from,omitempty" bson:"from,omitempty"`
	To     string `json:"to,omitempty" bson:"to,omitempty"`
	IsOpen bool   `json:"isOpen" bson:"isOpen"`
}

// BusinessImages groups the logo, cover and gallery images.
type BusinessImages struct {
	Logo    string   `json:"logo,omitempty" bson:"logo,omitempty"`
	Cover   string   `json:"cover,omitempty" bson:"cover,omitempty"`
	Gallery []string `json:"gallery" bson:"gallery"`
}

// PaymentMode is an accepted payment method with its icon.
type PaymentMode struct {
	Name string `json:"name" bson:"name"`
	Icon string `json:"icon,omitempty" bson:"icon,omitempty"`
}

// SocialLinks holds the outbound social profiles of a business.
type SocialLinks struct {
	Website   string `json:"website,omitempty" bson:"website,omitempty"`
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
	Whatsapp  string `json:"whatsapp,omitempty" bson:"whatsapp,omitempty"`
	Twitter   string `json:"twitter,omitempty" bson:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty" bson:"facebook,omitempty"`
	Youtube   string `json:"youtube,omitempty" bson:"youtube,omitempty"`
}

// FAQ is a frequently asked question of a business.
type FAQ struct {
	Question string `json:"question" bson:"question"`
	Answer   string `json:"answer" bson:"answer"`
}

// Business is a listed business. Type is one of service, doctor,
// manufacturing.
type Business struct {
	ID            primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Name          string               `json:"name" bson:"name" index:"unique"`
	Type          string               `json:"type" bson:"type"`
	ProfileImg    string               `json:"profileImg,omitempty" bson:"profileImg,omitempty"`
	VendorID      primitive.ObjectID   `json:"vendorId,omitempty" bson:"vendorId,omitempty" index:"single"`
	VendorName    string               `json:"vendorName,omitempty" bson:"vendorName,omitempty"`
	FoundedIn     int64                `json:"foundedIn,omitempty" bson:"foundedIn,omitempty"` // unix millis
	Description   string               `json:"description,omitempty" bson:"description,omitempty"`
	Email         string               `json:"email,omitempty" bson:"email,omitempty"`
	Category      primitive.ObjectID   `json:"category,omitempty" bson:"category,omitempty" index:"single"`
	Services      []string             `json:"services" bson:"services"`
	Address       Address              `json:"address" bson:"address" index:"2dsphere:address.coordinates"`
	Iframe        Iframe               `json:"iframe,omitempty" bson:"iframe,omitempty"`
	Phone         string               `json:"phone,omitempty" bson:"phone,omitempty"`
	Timing        []Timing             `json:"timing" bson:"timing"`
	Posts         []primitive.ObjectID `json:"posts" bson:"posts"`
	Images        BusinessImages       `json:"images" bson:"images"`
	ModeOfPayment []PaymentMode        `json:"modeOfPayment" bson:"modeOfPayment"`
	Ratings       []primitive.ObjectID `json:"ratings" bson:"ratings"`
	SocialLinks   SocialLinks          `json:"socialLinks,omitempty" bson:"socialLinks,omitempty"`
	FAQs          []FAQ                `json:"faqs" bson:"faqs"`
	CallLeads     []primitive.ObjectID `json:"callLeads" bson:"callLeads"`
	Enquiries     []primitive.ObjectID `json:"enquiries" bson:"enquiries"`
	Distance      float64              `json:"distance,omitempty" bson:"distance,omitempty"` // set by the nearby aggregation only
	CreatedAt     int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64                `json:"updatedAt" bson:"updatedAt"`
}
