package listing

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"homenest/models"
)

// Apply derives a display list from a listing collection and a QueryState.
// Steps run in a fixed order: category filter, then name search, then a
// stable sort. The input slice is never mutated; the result is always a
// fresh slice. Apply has no side effects, so identical inputs always yield
// identical output.
func Apply(properties []models.Property, q QueryState) []models.Property {
	out := make([]models.Property, 0, len(properties))

	category := models.NormalizeCategory(q.Category)
	term := strings.ToLower(strings.TrimSpace(q.Search))

	for _, p := range properties {
		if category != models.CategoryAll && !strings.EqualFold(p.Category, category) {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		out = append(out, p)
	}

	sortProperties(out, NormalizeSort(q.Sort))
	return out
}

// sortProperties orders in place. Sorting is stable for every key: ties keep
// their relative input order.
func sortProperties(properties []models.Property, key string) {
	switch key {
	case SortPriceLowHigh:
		sort.SliceStable(properties, func(i, j int) bool {
			return price(properties[i]) < price(properties[j])
		})
	case SortPriceHighLow:
		sort.SliceStable(properties, func(i, j int) bool {
			return price(properties[i]) > price(properties[j])
		})
	case SortNameAZ:
		c := collate.New(language.Und)
		sort.SliceStable(properties, func(i, j int) bool {
			return c.CompareString(properties[i].Name, properties[j].Name) < 0
		})
	case SortNameZA:
		c := collate.New(language.Und)
		sort.SliceStable(properties, func(i, j int) bool {
			return c.CompareString(properties[i].Name, properties[j].Name) > 0
		})
	case SortCategory:
		c := collate.New(language.Und)
		sort.SliceStable(properties, func(i, j int) bool {
			return c.CompareString(properties[i].Category, properties[j].Category) < 0
		})
	}
}

func price(p models.Property) float64 {
	if math.IsNaN(p.Price) {
		return 0
	}
	return p.Price
}
