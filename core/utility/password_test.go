package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("s3cret-Pass!")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-Pass!", hash)

	assert.True(t, ComparePassword(hash, "s3cret-Pass!"))
	assert.False(t, ComparePassword(hash, "wrong-password"))
	assert.False(t, ComparePassword("not-a-bcrypt-hash", "s3cret-Pass!"))
}
