package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"hnsearch/internal/domain"
	"hnsearch/internal/logic"
	"hnsearch/internal/logging"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// Opener hands a URL to something outside the terminal, usually a browser
type Opener interface {
	Open(url string) error
}

// CommandContext provides context for command execution
type CommandContext struct {
	Ctx     context.Context
	Fetcher logic.Fetcher
	Opener  Opener
}

// FetchResultMsg carries a finished page fetch back to the update loop
type FetchResultMsg struct {
	Outcome logic.FetchOutcome
}

// OpenResultMsg reports the result of opening a link
type OpenResultMsg struct {
	URL string
	Err error
}

// FetchCommand runs one page request off the update goroutine
type FetchCommand struct {
	ctx     *CommandContext
	request logic.FetchRequest
}

// NewFetchCommand creates a new fetch command
func NewFetchCommand(ctx *CommandContext, request logic.FetchRequest) *FetchCommand {
	return &FetchCommand{
		ctx:     ctx,
		request: request,
	}
}

// Execute returns a tea.Cmd performing the request. The outcome is merged by
// the model, never here.
func (c *FetchCommand) Execute() tea.Cmd {
	ctx := c.ctx.Ctx
	fetcher := c.ctx.Fetcher
	request := c.request
	return func() tea.Msg {
		logging.NewLogger("commands").
			WithField("term", request.Term).
			WithField("page", request.Page).
			Debug("running fetch")
		return FetchResultMsg{Outcome: request.Run(ctx, fetcher)}
	}
}

// OpenCommand opens a hit's link
type OpenCommand struct {
	ctx *CommandContext
	hit domain.Hit
}

// NewOpenCommand creates a new open command
func NewOpenCommand(ctx *CommandContext, hit domain.Hit) *OpenCommand {
	return &OpenCommand{
		ctx: ctx,
		hit: hit,
	}
}

// Execute opens the story URL, or the discussion page when it has none
func (c *OpenCommand) Execute() tea.Cmd {
	opener := c.ctx.Opener
	url := c.hit.Link()
	return func() tea.Msg {
		if opener == nil {
			return OpenResultMsg{URL: url, Err: errNoOpener}
		}
		return OpenResultMsg{URL: url, Err: opener.Open(url)}
	}
}
