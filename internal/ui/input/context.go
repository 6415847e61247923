package input

import (
	"hnsearch/internal/domain"
	"hnsearch/internal/logic"
	"hnsearch/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
	Store *logic.Store
	Rows  []domain.Hit // hits in display order
}

// CurrentIndex returns the current selected index
func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

// TotalItems returns the number of rows on screen
func (c *ModelContext) TotalItems() int {
	return len(c.Rows)
}

// CurrentHitID returns the object id of the row under the cursor
func (c *ModelContext) CurrentHitID() string {
	i := c.State.SelectedIndex
	if i < 0 || i >= len(c.Rows) {
		return ""
	}
	return c.Rows[i].ObjectID
}

// InputValue returns the pending search text
func (c *ModelContext) InputValue() string {
	return c.Store.InputValue()
}

// IsLoading reports whether a page fetch is outstanding
func (c *ModelContext) IsLoading() bool {
	return c.Store.IsLoading()
}

// CurrentSort returns the active sort
func (c *ModelContext) CurrentSort() logic.SortState {
	return c.State.Sort
}
