package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hnsearch/internal/eventbus"
	"hnsearch/internal/logic"
	"hnsearch/internal/logging"
	"hnsearch/internal/ui/state"
)

// StatusTimeout is how long informational status messages stay up
const StatusTimeout = 3 * time.Second

// ClearStatusMsg clears the status line if it still shows message Seq
type ClearStatusMsg struct {
	Seq int
}

// EventHandler applies fetch outcomes and domain events to UI state
type EventHandler struct {
	state *state.AppState
	store *logic.Store
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, store *logic.Store) *EventHandler {
	return &EventHandler{
		state: appState,
		store: store,
	}
}

// ApplyFetchOutcome merges a finished fetch into the store and keeps the
// cursor inside the result list
func (h *EventHandler) ApplyFetchOutcome(outcome logic.FetchOutcome) {
	h.store.Complete(outcome)
	if outcome.Err != nil {
		logging.NewLogger("ui").WithError(outcome.Err).Warn("fetch failed")
	}
	h.state.ClampSelection(len(h.store.ActiveResultSet()))
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.SearchSubmittedEvent:
		if e.Cached {
			h.state.SetStatus(fmt.Sprintf("Showing cached results for %q", e.Term))
		} else {
			h.state.SetStatus(fmt.Sprintf("Searching for %q...", e.Term))
		}

	case eventbus.FetchCompletedEvent:
		h.state.SetStatus(fmt.Sprintf("Loaded %d stories for %q (%d shown)", e.NewHits, e.Term, e.TotalHits))

	case eventbus.FetchFailedEvent:
		// The error itself replaces the table; keep the status line short
		h.state.SetError(fmt.Sprintf("Page %d of %q could not be loaded", e.Page+1, e.Term))
		return nil

	case eventbus.HitDismissedEvent:
		h.state.SetStatus("Dismissed story")

	case eventbus.ConfigSavedEvent:
		h.state.SetStatus(fmt.Sprintf("Wrote config to %s", e.Path))

	default:
		return nil
	}

	return ClearStatusAfter(h.state.StatusSeq, StatusTimeout)
}

// ClearStatusAfter schedules a clear of status message seq
func ClearStatusAfter(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
