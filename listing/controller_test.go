package listing

import (
	"reflect"
	"testing"

	"homenest/models"
)

func newTestController(t *testing.T) (*Controller, *[][]models.Property) {
	t.Helper()
	store := NewStore()
	token := store.Begin()
	store.Complete(token, sample())

	published := &[][]models.Property{}
	c := NewController(store, func(result []models.Property) {
		*published = append(*published, result)
	})
	return c, published
}

func TestControllerDefaults(t *testing.T) {
	c, _ := newTestController(t)
	q := c.Query()
	if q.Category != models.CategoryAll || q.Search != "" || q.Sort != SortNone {
		t.Errorf("defaults = %+v, want all/empty/none", q)
	}
	if got := names(c.Results()); !reflect.DeepEqual(got, []string{"Blue Villa", "Azure Flat", "Blue Flat"}) {
		t.Errorf("default results = %v, want input order", got)
	}
}

func TestControllerSettersNormalize(t *testing.T) {
	c, _ := newTestController(t)

	c.SetCategory("castle-in-the-sky")
	if q := c.Query(); q.Category != models.CategoryAll {
		t.Errorf("unknown category = %q, want %q", q.Category, models.CategoryAll)
	}

	c.SetCategory("apartment")
	if q := c.Query(); q.Category != "Apartment" {
		t.Errorf("category = %q, want canonical Apartment", q.Category)
	}

	c.SetSort("by-vibes")
	if q := c.Query(); q.Sort != SortNone {
		t.Errorf("unknown sort = %q, want %q", q.Sort, SortNone)
	}
}

func TestControllerEachSetterPublishes(t *testing.T) {
	c, published := newTestController(t)

	c.SetCategory("Apartment")
	c.SetSearch("blue")
	c.SetSort(SortPriceLowHigh)

	if len(*published) != 3 {
		t.Fatalf("published %d times, want 3", len(*published))
	}
	last := (*published)[2]
	if len(last) != 1 || last[0].Name != "Blue Flat" {
		t.Errorf("final view = %v, want [Blue Flat]", names(last))
	}
}

// Reset must be one transition: exactly one notification, already carrying
// the fully reset state.
func TestControllerResetIsAtomic(t *testing.T) {
	c, published := newTestController(t)
	c.SetCategory("Apartment")
	c.SetSearch("blue")
	before := len(*published)

	c.Reset()

	if got := len(*published) - before; got != 1 {
		t.Fatalf("Reset published %d times, want 1", got)
	}
	if q := c.Query(); q != DefaultQuery() {
		t.Errorf("after Reset query = %+v, want defaults", q)
	}
	last := (*published)[len(*published)-1]
	if len(last) != 3 {
		t.Errorf("reset view has %d records, want all 3", len(last))
	}
}

func TestControllerStoreChanged(t *testing.T) {
	store := NewStore()
	var got []models.Property
	c := NewController(store, func(result []models.Property) { got = result })

	token := store.Begin()
	store.Complete(token, sample())
	c.StoreChanged()

	if len(got) != 3 {
		t.Errorf("view after store refresh has %d records, want 3", len(got))
	}
}

func TestControllerNilCallback(t *testing.T) {
	store := NewStore()
	c := NewController(store, nil)
	c.SetSearch("blue") // must not panic
}
