package services

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildNearbyPipeline(t *testing.T) {
	pipeline := BuildNearbyPipeline(77.5946, 12.9716, nil)
	if len(pipeline) != 1 {
		t.Fatalf("expected a single $geoNear stage, got %d stages", len(pipeline))
	}

	geoNear, ok := pipeline[0]["$geoNear"].(bson.M)
	if !ok {
		t.Fatal("first stage is not $geoNear")
	}
	if geoNear["key"] != "address.coordinates" {
		t.Errorf("unexpected geo key: %v", geoNear["key"])
	}
	if geoNear["distanceField"] != "distance" {
		t.Errorf("unexpected distance field: %v", geoNear["distanceField"])
	}
	if geoNear["maxDistance"] != MaxNearbyDistanceMeters {
		t.Errorf("unexpected max distance: %v", geoNear["maxDistance"])
	}
	if geoNear["spherical"] != true {
		t.Error("geo search is not spherical")
	}

	near, ok := geoNear["near"].(bson.M)
	if !ok {
		t.Fatal("near is not a document")
	}
	coords, ok := near["coordinates"].([]float64)
	if !ok || len(coords) != 2 {
		t.Fatalf("unexpected near coordinates: %v", near["coordinates"])
	}
	// GeoJSON order is [longitude, latitude]
	if coords[0] != 77.5946 || coords[1] != 12.9716 {
		t.Errorf("coordinates out of order: %v", coords)
	}
}

func TestBuildNearbyPipelineWithCategory(t *testing.T) {
	categoryID := primitive.NewObjectID()
	pipeline := BuildNearbyPipeline(77.5946, 12.9716, &categoryID)
	if len(pipeline) != 2 {
		t.Fatalf("expected $geoNear plus $match, got %d stages", len(pipeline))
	}

	match, ok := pipeline[1]["$match"].(bson.M)
	if !ok {
		t.Fatal("second stage is not $match")
	}
	if match["category"] != categoryID {
		t.Errorf("unexpected category filter: %v", match["category"])
	}
}

func TestCategoryNameFilterMatchesSubstring(t *testing.T) {
	filter := categoryNameFilter("Plumb")

	pattern, ok := filter["name"].(primitive.Regex)
	if !ok {
		t.Fatalf("expected a regex filter, got %T", filter["name"])
	}
	if pattern.Options != "i" {
		t.Errorf("expected case-insensitive match, got options %q", pattern.Options)
	}
	// Unanchored, so "Plumb" also finds "Plumbing Services".
	if pattern.Pattern != "Plumb" {
		t.Errorf("expected unanchored pattern, got %q", pattern.Pattern)
	}
}

func TestCategoryNameFilterEscapesMetaCharacters(t *testing.T) {
	filter := categoryNameFilter("A/C (Repair)")

	pattern := filter["name"].(primitive.Regex)
	if pattern.Pattern != `A/C \(Repair\)` {
		t.Errorf("meta characters not escaped: %q", pattern.Pattern)
	}
}
