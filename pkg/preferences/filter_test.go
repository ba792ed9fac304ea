package preferences

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryFilterKey(t *testing.T) {
	t.Run("identical membership in different order produces the same key", func(t *testing.T) {
		a := NewCategoryFilter([]int{3, 1, 2})
		b := NewCategoryFilter([]int{2, 3, 1})
		assert.Equal(t, a.Key(), b.Key())
	})

	t.Run("different membership produces different keys", func(t *testing.T) {
		a := NewCategoryFilter([]int{1, 2})
		b := NewCategoryFilter([]int{1, 3})
		assert.NotEqual(t, a.Key(), b.Key())
	})

	t.Run("subset produces a different key", func(t *testing.T) {
		a := NewCategoryFilter([]int{1, 2, 3})
		b := NewCategoryFilter([]int{1, 2})
		assert.NotEqual(t, a.Key(), b.Key())
	})

	t.Run("duplicates do not change the key", func(t *testing.T) {
		a := NewCategoryFilter([]int{1, 2, 2, 1})
		b := NewCategoryFilter([]int{2, 1})
		assert.Equal(t, a.Key(), b.Key())
	})

	t.Run("unknown filter key is distinct from the empty set key", func(t *testing.T) {
		unknown := UnknownFilter()
		empty := NewCategoryFilter(nil)
		assert.NotEqual(t, unknown.Key(), empty.Key())
		assert.False(t, unknown.Known())
		assert.True(t, empty.Known())
	})

	t.Run("independently constructed equal sets compare equal by key", func(t *testing.T) {
		a := NewCategoryFilter([]int{5})
		b := NewCategoryFilter([]int{5})
		assert.Equal(t, a.Key(), b.Key())
	})
}

func TestCategoryFilterIds(t *testing.T) {
	t.Run("returned slice is a copy", func(t *testing.T) {
		filter := NewCategoryFilter([]int{1, 2})
		ids := filter.Ids()
		ids[0] = 99
		assert.Equal(t, []int{1, 2}, filter.Ids())
	})
}
