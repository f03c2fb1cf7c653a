package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/arjunsharma6622/galaxygrow-server/core/common"
	"github.com/arjunsharma6622/galaxygrow-server/core/logger"
)

const (
	geocodeEndpoint      = "https://maps.googleapis.com/maps/api/geocode/json"
	autocompleteEndpoint = "https://maps.googleapis.com/maps/api/place/autocomplete/json"
	placeDetailsEndpoint = "https://maps.googleapis.com/maps/api/place/details/json"
)

// GoogleMaps proxies geocoding and place lookups to the Google Maps API.
type GoogleMaps struct {
	apiKey string
	client *http.Client
}

// NewGoogleMaps creates a Google Maps client with the given API key.
func NewGoogleMaps(apiKey string) *GoogleMaps {
	return &GoogleMaps{
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type addressComponent struct {
	LongName string   `json:"long_name"`
	Types    []string `json:"types"`
}

type geocodeResult struct {
	FormattedAddress  string             `json:"formatted_address"`
	AddressComponents []addressComponent `json:"address_components"`
	Geometry          struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

type geocodeResponse struct {
	Results []geocodeResult `json:"results"`
	Status  string          `json:"status"`
}

// ResolvedLocation is the formatted reverse geocode payload.
type ResolvedLocation struct {
	Value   string  `json:"value"`
	Area    string  `json:"area"`
	City    string  `json:"city"`
	DCity   string  `json:"dcity"`
	State   string  `json:"state"`
	Country string  `json:"country"`
	Pincode string  `json:"pincode"`
	Lat     float64 `json:"lat"`
	Long    float64 `json:"long"`
	Type    string  `json:"type"`
	IsExact int     `json:"isExact"`
}

// PlaceDetails is the formatted autocomplete payload.
type PlaceDetails struct {
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
	Street     string `json:"street"`
	Building   string `json:"building"`
	PinNumber  string `json:"pinNumber"`
	PlaceID    string `json:"placeId"`
}

// Coordinates is the forward geocode payload.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func componentByType(components []addressComponent, typ string) string {
	for _, component := range components {
		for _, t := range component.Types {
			if t == typ {
				return component.LongName
			}
		}
	}
	return ""
}

func (g *GoogleMaps) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	log := logger.GetAppLogger()

	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.WithError(err).Error("Cannot reach Google Maps API")
		return common.ErrUpstream
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.WithField("statusCode", resp.StatusCode).Error("Google Maps API returned an error")
		return common.NewError(common.ErrCodeExternal,
			fmt.Sprintf("Google Maps API returned status %d", resp.StatusCode),
			common.StatusBadGateway, nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return common.ErrUpstream
	}

	return nil
}

// FromCoords reverse-geocodes a lat/long pair into a formatted location.
func (g *GoogleMaps) FromCoords(ctx context.Context, lat, long string) (*ResolvedLocation, error) {
	rawURL := fmt.Sprintf("%s?latlng=%s,%s&key=%s",
		geocodeEndpoint, url.QueryEscape(lat), url.QueryEscape(long), g.apiKey)

	var decoded geocodeResponse
	if err := g.getJSON(ctx, rawURL, &decoded); err != nil {
		return nil, err
	}

	if len(decoded.Results) == 0 {
		return nil, common.NewError(common.ErrCodeDatabaseQuery,
			"No location details found for the provided latitude and longitude.",
			common.StatusNotFound, nil)
	}

	location := decoded.Results[0]
	return &ResolvedLocation{
		Value:   location.FormattedAddress,
		City:    componentByType(location.AddressComponents, "locality"),
		DCity:   componentByType(location.AddressComponents, "administrative_area_level_2"),
		State:   componentByType(location.AddressComponents, "administrative_area_level_1"),
		Country: componentByType(location.AddressComponents, "country"),
		Pincode: componentByType(location.AddressComponents, "postal_code"),
		Lat:     location.Geometry.Location.Lat,
		Long:    location.Geometry.Location.Lng,
		Type:    "City",
		IsExact: 0,
	}, nil
}

// Autocomplete resolves a free-text input to the details of the first
// place prediction.
func (g *GoogleMaps) Autocomplete(ctx context.Context, input string) (*PlaceDetails, error) {
	rawURL := fmt.Sprintf("%s?input=%s&key=%s&types=(regions)",
		autocompleteEndpoint, url.QueryEscape(input), g.apiKey)

	var predictionsResp struct {
		Predictions []struct {
			PlaceID string `json:"place_id"`
		} `json:"predictions"`
	}
	if err := g.getJSON(ctx, rawURL, &predictionsResp); err != nil {
		return nil, err
	}

	if len(predictionsResp.Predictions) == 0 {
		return nil, common.NewError(common.ErrCodeDatabaseQuery,
			"No predictions found", common.StatusNotFound, nil)
	}

	placeID := predictionsResp.Predictions[0].PlaceID
	detailsURL := fmt.Sprintf("%s?place_id=%s&key=%s",
		placeDetailsEndpoint, url.QueryEscape(placeID), g.apiKey)

	var detailsResp struct {
		Result struct {
			AddressComponents []addressComponent `json:"address_components"`
		} `json:"result"`
	}
	if err := g.getJSON(ctx, detailsURL, &detailsResp); err != nil {
		return nil, err
	}

	components := detailsResp.Result.AddressComponents
	return &PlaceDetails{
		State:      componentByType(components, "administrative_area_level_1"),
		Country:    componentByType(components, "country"),
		PostalCode: componentByType(components, "postal_code"),
		City:       componentByType(components, "locality"),
		Street:     componentByType(components, "route"),
		Building:   componentByType(components, "subpremise"),
		PinNumber:  componentByType(components, "postal_code_suffix"),
		PlaceID:    placeID,
	}, nil
}

// FromAddress forward-geocodes a free-text address into coordinates.
func (g *GoogleMaps) FromAddress(ctx context.Context, address string) (*Coordinates, error) {
	rawURL := fmt.Sprintf("%s?address=%s&key=%s",
		geocodeEndpoint, url.QueryEscape(address), g.apiKey)

	var decoded geocodeResponse
	if err := g.getJSON(ctx, rawURL, &decoded); err != nil {
		return nil, err
	}

	if len(decoded.Results) == 0 {
		return nil, common.NewError(common.ErrCodeDatabaseQuery,
			"No location details found for the provided address.",
			common.StatusNotFound, nil)
	}

	return &Coordinates{
		Lat: decoded.Results[0].Geometry.Location.Lat,
		Lng: decoded.Results[0].Geometry.Location.Lng,
	}, nil
}
