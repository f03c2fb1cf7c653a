package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

// A business registered without a location must not serialize an empty
// geo point, otherwise the 2dsphere index on address.coordinates
// rejects the insert.
func TestAddressWithoutCoordinatesOmitsGeoField(t *testing.T) {
	doc := Business{
		Name: "Acme Plumbing",
		Type: "service",
		Address: Address{
			City:  "Bengaluru",
			State: "Karnataka",
		},
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal business: %v", err)
	}

	var back bson.M
	if err := bson.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal business: %v", err)
	}

	address, ok := back["address"].(bson.M)
	if !ok {
		t.Fatalf("expected address sub-document, got %T", back["address"])
	}
	if _, found := address["coordinates"]; found {
		t.Errorf("expected no coordinates field, got %v", address["coordinates"])
	}
}

func TestAddressWithCoordinatesKeepsGeoField(t *testing.T) {
	point := NewGeoPoint(77.5946, 12.9716)
	doc := Business{
		Name:    "Acme Plumbing",
		Type:    "service",
		Address: Address{City: "Bengaluru", Coordinates: &point},
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal business: %v", err)
	}

	var back Business
	if err := bson.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal business: %v", err)
	}

	if back.Address.Coordinates == nil {
		t.Fatal("expected coordinates to survive the roundtrip")
	}
	if got := back.Address.Coordinates.Longitude(); got != 77.5946 {
		t.Errorf("expected longitude 77.5946, got %v", got)
	}
	if got := back.Address.Coordinates.Latitude(); got != 12.9716 {
		t.Errorf("expected latitude 12.9716, got %v", got)
	}
}
