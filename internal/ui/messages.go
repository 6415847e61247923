package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"hnsearch/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}

// forwardedEvents are the bus events the UI turns into status messages
var forwardedEvents = []eventbus.EventType{
	eventbus.EventSearchSubmitted,
	eventbus.EventFetchCompleted,
	eventbus.EventFetchFailed,
	eventbus.EventHitDismissed,
	eventbus.EventConfigSaved,
}

// Sender is the part of *tea.Program used to deliver events
type Sender interface {
	Send(msg tea.Msg)
}

// ForwardEvents delivers bus events to the program as EventMsg values.
// The returned func unsubscribes.
func ForwardEvents(bus eventbus.EventBus, program Sender) func() {
	var unsubs []func()
	for _, et := range forwardedEvents {
		unsubs = append(unsubs, bus.Subscribe(et, func(e eventbus.DomainEvent) {
			program.Send(EventMsg{Event: e})
		}))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
