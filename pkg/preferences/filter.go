package preferences

import (
	"sort"
	"strconv"
	"strings"
)

// unknownFilterKey is the sentinel key for the state before the first filter
// snapshot arrives. It is distinct from the key of a known empty set.
const unknownFilterKey = "unset"

// CategoryFilter is an immutable snapshot of the category ids the user opted
// into. The zero value is the "not yet known" state.
type CategoryFilter struct {
	ids   []int
	known bool
}

// UnknownFilter returns the sentinel filter used before preferences are known.
func UnknownFilter() CategoryFilter {
	return CategoryFilter{}
}

// NewCategoryFilter returns a known filter over the given ids. An empty slice
// is a valid filter meaning "no category restriction".
func NewCategoryFilter(ids []int) CategoryFilter {
	return CategoryFilter{ids: append([]int(nil), ids...), known: true}
}

// Known reports whether a snapshot has arrived yet.
func (f CategoryFilter) Known() bool {
	return f.known
}

// Ids returns a copy of the filter members.
func (f CategoryFilter) Ids() []int {
	return append([]int(nil), f.ids...)
}

// Key canonicalizes the filter into an order-independent comparison key. Two
// filters with identical membership always produce the same key regardless of
// insertion order, so the key is the only safe trigger for change detection.
func (f CategoryFilter) Key() string {
	if !f.known {
		return unknownFilterKey
	}
	sorted := append([]int(nil), f.ids...)
	sort.Ints(sorted)
	parts := make([]string, 0, len(sorted))
	for i, id := range sorted {
		if i > 0 && sorted[i-1] == id {
			continue
		}
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, ",")
}
