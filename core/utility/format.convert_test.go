package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestString2ObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	assert.Equal(t, id, String2ObjectID(id.Hex()))
	assert.Equal(t, primitive.NilObjectID, String2ObjectID("not-an-object-id"))
	assert.Equal(t, primitive.NilObjectID, String2ObjectID(""))
}

func TestObjectID2String(t *testing.T) {
	id := primitive.NewObjectID()
	assert.Equal(t, id.Hex(), ObjectID2String(id))
}

func TestP2Int64(t *testing.T) {
	assert.Equal(t, int64(42), P2Int64("42"))
	assert.Equal(t, int64(-7), P2Int64("-7"))
	assert.Equal(t, int64(0), P2Int64("4.2"))
	assert.Equal(t, int64(0), P2Int64("abc"))
}

func TestP2Float64(t *testing.T) {
	assert.Equal(t, 12.9716, P2Float64("12.9716"))
	assert.Equal(t, float64(0), P2Float64("not-a-number"))
}

func TestStringArray2ObjectIDArray(t *testing.T) {
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()

	ids := StringArray2ObjectIDArray([]string{first.Hex(), "bad", second.Hex()})
	assert.Equal(t, []primitive.ObjectID{first, primitive.NilObjectID, second}, ids)
}
