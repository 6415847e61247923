package commands

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"hnsearch/internal/domain"
	"hnsearch/internal/logic"
)

var errNoOpener = errors.New("no opener configured")

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(ctx context.Context, fetcher logic.Fetcher, opener Opener) *Executor {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Executor{
		ctx: &CommandContext{
			Ctx:     ctx,
			Fetcher: fetcher,
			Opener:  opener,
		},
	}
}

// ExecuteFetch creates and executes a fetch command
func (e *Executor) ExecuteFetch(request logic.FetchRequest) tea.Cmd {
	cmd := NewFetchCommand(e.ctx, request)
	return cmd.Execute()
}

// ExecuteOpen creates and executes an open command
func (e *Executor) ExecuteOpen(hit domain.Hit) tea.Cmd {
	cmd := NewOpenCommand(e.ctx, hit)
	return cmd.Execute()
}
