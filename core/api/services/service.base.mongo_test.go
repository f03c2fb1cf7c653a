package services

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToUpdateDataPassthrough(t *testing.T) {
	original := &UpdateData{Set: map[string]interface{}{"name": "x"}}
	update, err := ToUpdateData(original)
	if err != nil {
		t.Fatalf("ToUpdateData failed: %v", err)
	}
	if update != original {
		t.Error("pointer input should pass through unchanged")
	}
}

func TestToUpdateDataOperatorMap(t *testing.T) {
	id := primitive.NewObjectID()
	update, err := ToUpdateData(bson.M{
		"$push": bson.M{"posts": id},
		"$set":  bson.M{"name": "shop"},
	})
	if err != nil {
		t.Fatalf("ToUpdateData failed: %v", err)
	}

	if update.Push == nil || update.Push["posts"] != id {
		t.Errorf("$push not carried over: %v", update.Push)
	}
	if update.Set == nil || update.Set["name"] != "shop" {
		t.Errorf("$set not carried over: %v", update.Set)
	}
	if update.Unset != nil {
		t.Errorf("unexpected $unset: %v", update.Unset)
	}
}

func TestToUpdateDataPlainMapWrapsInSet(t *testing.T) {
	update, err := ToUpdateData(bson.M{"name": "shop", "city": "pune"})
	if err != nil {
		t.Fatalf("ToUpdateData failed: %v", err)
	}
	if update.Set["name"] != "shop" || update.Set["city"] != "pune" {
		t.Errorf("plain map not wrapped in $set: %v", update.Set)
	}
}

func TestToUpdateDataStruct(t *testing.T) {
	update, err := ToUpdateData(struct {
		Name string `bson:"name"`
	}{Name: "shop"})
	if err != nil {
		t.Fatalf("ToUpdateData failed: %v", err)
	}
	if update.Set["name"] != "shop" {
		t.Errorf("struct not wrapped in $set: %v", update.Set)
	}
}
