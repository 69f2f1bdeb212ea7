package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetBasics(t *testing.T) {
	set := NewSet(1, 2, 3)
	assert.Len(t, set, 3)
	assert.True(t, set.Contains(2))

	set.Remove(2)
	set.Remove(42)
	assert.False(t, set.Contains(2))
	assert.Len(t, set, 2)
}

func TestSetDifference(t *testing.T) {
	diff := NewSet(1, 2, 3).Difference(NewSet(2, 4))
	assert.True(t, diff.Equal(NewSet(1, 3)))
}

func TestSetIntersectionEx(t *testing.T) {
	shared, isSubset := NewSet(1, 2).IntersectionEx(NewSet(1, 2, 3))
	assert.True(t, isSubset)
	assert.True(t, shared.Equal(NewSet(1, 2)))

	shared, isSubset = NewSet(1, 5).IntersectionEx(NewSet(1, 2, 3))
	assert.False(t, isSubset)
	assert.True(t, shared.Equal(NewSet(1)))
}
