package state

import "hnsearch/internal/logic"

// AppState contains the view state that is not owned by the result store
type AppState struct {
	// Selection state
	SelectedIndex int // row under the cursor

	// UI state
	ViewportOffset int // offset for scrolling
	ViewportHeight int // available height for the result table
	ShowURL        bool
	StatusMessage  string // status bar message
	StatusIsError  bool
	StatusSeq      int // bumped whenever the status message changes

	// Sort state
	Sort            logic.SortState
	SortOptionIndex int // highlighted option in sort-select mode
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		ViewportHeight: 20, // Default
		ShowURL:        true,
	}
}

// SetStatus sets an informational status message
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = false
	s.StatusSeq++
}

// SetError sets a status message rendered as an error
func (s *AppState) SetError(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = true
	s.StatusSeq++
}

// ClearStatus removes the status message
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}

// ClearStatusIfCurrent clears the status only if it has not changed since seq.
// It reports whether the status was cleared.
func (s *AppState) ClearStatusIfCurrent(seq int) bool {
	if seq != s.StatusSeq {
		return false
	}
	s.ClearStatus()
	return true
}

// ClampSelection keeps the cursor inside a list of n rows
func (s *AppState) ClampSelection(n int) {
	if s.SelectedIndex >= n {
		s.SelectedIndex = n - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
}
