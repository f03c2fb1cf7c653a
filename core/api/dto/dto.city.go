package dto

import (
	models "github.com/arjunsharma6622/galaxygrow-server/core/api/models/mongodb"
)

// CityCreateInput is the payload for adding a city.
type CityCreateInput struct {
	Name string  `json:"name" validate:"required,no_xss"`
	Lat  float64 `json:"lat" validate:"required,latitude"`
	Long float64 `json:"long" validate:"required,longitude"`
}

// ToModel converts the input into a City document.
func (i *CityCreateInput) ToModel() models.City {
	return models.City{
		Name:        i.Name,
		Coordinates: models.NewGeoPoint(i.Long, i.Lat),
	}
}

// CityUpdateInput is the payload for updating a city.
type CityUpdateInput struct {
	Name *string  `json:"name,omitempty" validate:"omitempty,no_xss"`
	Lat  *float64 `json:"lat,omitempty" validate:"omitempty,latitude"`
	Long *float64 `json:"long,omitempty" validate:"omitempty,longitude"`
}
