package listing

import (
	"sync"

	"homenest/models"
)

// Controller owns the QueryState for one listing view. Every state change
// re-runs the pipeline against the store and hands the derived list to the
// view callback. Setters silently normalize unrecognized categories and
// sort keys; they never fail.
type Controller struct {
	mu       sync.Mutex
	store    *Store
	query    QueryState
	onChange func([]models.Property)
}

// NewController binds a controller to a store. onChange receives the derived
// list after every state change; it may be nil.
func NewController(store *Store, onChange func([]models.Property)) *Controller {
	return &Controller{
		store:    store,
		query:    DefaultQuery(),
		onChange: onChange,
	}
}

// Query returns the current state.
func (c *Controller) Query() QueryState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Results runs the pipeline against the current store contents and state.
func (c *Controller) Results() []models.Property {
	return Apply(c.store.Snapshot(), c.Query())
}

// SetCategory selects a category filter. Unrecognized values fall back to
// the "all" sentinel.
func (c *Controller) SetCategory(category string) {
	c.mu.Lock()
	c.query.Category = models.NormalizeCategory(category)
	c.mu.Unlock()
	c.publish()
}

// SetSearch updates the free-text search term. Any string is accepted.
func (c *Controller) SetSearch(term string) {
	c.mu.Lock()
	c.query.Search = term
	c.mu.Unlock()
	c.publish()
}

// SetSort selects a sort key. Unrecognized values fall back to SortNone.
func (c *Controller) SetSort(key string) {
	c.mu.Lock()
	c.query.Sort = NormalizeSort(key)
	c.mu.Unlock()
	c.publish()
}

// Reset clears all three fields back to defaults in one transition, so the
// view never observes a partially reset state.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.query = DefaultQuery()
	c.mu.Unlock()
	c.publish()
}

// StoreChanged re-runs the pipeline after a store refresh.
func (c *Controller) StoreChanged() {
	c.publish()
}

func (c *Controller) publish() {
	if c.onChange == nil {
		return
	}
	c.onChange(c.Results())
}
