// Package models defines the MongoDB documents of the directory backend.
package models

// GeoPoint is a GeoJSON point. Coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

// NewGeoPoint builds a GeoJSON point from longitude and latitude.
func NewGeoPoint(lng, lat float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

// Longitude returns the first coordinate, 0 when absent.
func (p GeoPoint) Longitude() float64 {
	if len(p.Coordinates) < 1 {
		return 0
	}
	return p.Coordinates[0]
}

// Latitude returns the second coordinate, 0 when absent.
func (p GeoPoint) Latitude() float64 {
	if len(p.Coordinates) < 2 {
		return 0
	}
	return p.Coordinates[1]
}

// OTP is a one-time code embedded in a principal or call lead.
// Value and Expires are cleared together after a successful verification.
type OTP struct {
	Value   string `json:"-" bson:"value,omitempty"`
	Expires int64  `json:"-" bson:"expires,omitempty"` // unix millis
}

// Image is an image with its alt text.
type Image struct {
	URL    string `json:"url" bson:"url"`
	AltTag string `json:"altTag" bson:"altTag"`
}

// PaginateResult is a page of items with paging metadata.
type PaginateResult[T any] struct {
	Page      int64 `json:"page" bson:"page"`
	Limit     int64 `json:"limit" bson:"limit"`
	ItemCount int64 `json:"itemCount" bson:"itemCount"`
	Items     []T   `json:"items" bson:"items"`
	Total     int64 `json:"total" bson:"total"`
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}

// CountResult carries a count with paging metadata.
type CountResult struct {
	TotalCount int64 `json:"totalCount" bson:"totalCount"`
	Limit      int64 `json:"limit" bson:"limit"`
	TotalPage  int64 `json:"totalPage" bson:"totalPage"`
}

// Principal kinds carried in token claims and request locals.
const (
	PrincipalUser   = "user"
	PrincipalVendor = "vendor"
)

// Roles understood by the role gate.
const (
	RoleUser   = "user"
	RoleVendor = "vendor"
	RoleAdmin  = "admin"
)
