package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, "b"))
	assert.False(t, Contains([]string{"a", "b"}, "c"))
	assert.False(t, Contains([]string{}, "a"))
}

func TestRemove(t *testing.T) {
	assert.Equal(t, []int{1, 3}, Remove([]int{1, 2, 3, 2}, 2))
	assert.Equal(t, []int{1, 2}, Remove([]int{1, 2}, 9))
	assert.Equal(t, []int{}, Remove([]int{}, 1))
}
