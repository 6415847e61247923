package types

import "hnsearch/internal/logic"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Result actions
type LoadMoreAction struct{}

func (a LoadMoreAction) Type() string { return "load_more" }

type DismissAction struct {
	ObjectID string
}

func (a DismissAction) Type() string { return "dismiss" }

type OpenLinkAction struct{}

func (a OpenLinkAction) Type() string { return "open_link" }

type ShowDetailsAction struct{}

func (a ShowDetailsAction) Type() string { return "show_details" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }

// Sort actions

// SortByAction picks a column; picking the active column again reverses it
type SortByAction struct {
	Key logic.SortKey
}

func (a SortByAction) Type() string { return "sort_by" }

// SetSortAction replaces the sort state outright
type SetSortAction struct {
	State logic.SortState
}

func (a SetSortAction) Type() string { return "set_sort" }

type UpdateSortIndexAction struct {
	Index int
}

func (a UpdateSortIndexAction) Type() string { return "update_sort_index" }
