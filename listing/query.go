package listing

import (
	"strings"

	"homenest/models"
)

// Sort keys understood by the pipeline. Anything else normalizes to SortNone.
const (
	SortNone         = "none"
	SortPriceLowHigh = "price-low-high"
	SortPriceHighLow = "price-high-low"
	SortNameAZ       = "name-a-z"
	SortNameZA       = "name-z-a"
	SortCategory     = "category"
)

var sortKeys = map[string]bool{
	SortNone:         true,
	SortPriceLowHigh: true,
	SortPriceHighLow: true,
	SortNameAZ:       true,
	SortNameZA:       true,
	SortCategory:     true,
}

// QueryState is the transient filter/search/sort selection for a listing
// view. The three fields are independent: filters compose with logical AND,
// then the sort key imposes a total order.
type QueryState struct {
	Category string
	Search   string
	Sort     string
}

// DefaultQuery matches everything and preserves input order.
func DefaultQuery() QueryState {
	return QueryState{Category: models.CategoryAll, Search: "", Sort: SortNone}
}

// NormalizeSort maps a user-supplied sort key onto the known set, falling
// back to SortNone for anything unrecognized.
func NormalizeSort(key string) string {
	k := strings.ToLower(strings.TrimSpace(key))
	if sortKeys[k] {
		return k
	}
	return SortNone
}
