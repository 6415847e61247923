package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hnsearch/internal/config"
	"hnsearch/internal/domain"
	"hnsearch/internal/logging"
	"hnsearch/internal/logic"
	"hnsearch/internal/ui/commands"
	"hnsearch/internal/ui/handlers"
	"hnsearch/internal/ui/input"
	inputtypes "hnsearch/internal/ui/input/types"
	nav "hnsearch/internal/ui/logic"
	"hnsearch/internal/ui/state"
	"hnsearch/internal/ui/viewmodels"
	"hnsearch/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	config *config.Config
	state  *state.AppState // centralized view state
	store  *logic.Store    // search results, owned by the UI goroutine

	// UI-specific state not in AppState
	width       int
	height      int
	spinner     spinner.Model
	inPagerMode bool // tracks if we're currently in pager mode

	// Handlers
	navigator    *nav.Navigator         // navigation and viewport handler
	renderer     *views.Renderer        // view renderer
	eventHandler *handlers.EventHandler // event and fetch result processing
	viewModel    *viewmodels.ViewModel  // view model for rendering
	cmdExecutor  *commands.Executor     // command executor
	inputHandler *input.Handler         // input handling
	pager        *Pager                 // help and details pager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, store *logic.Store, fetcher logic.Fetcher, opener commands.Opener) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	appState := state.NewAppState()
	appState.ShowURL = cfg.UI.ShowURL
	if key, err := logic.ParseSortKey(cfg.UI.DefaultSort); err == nil {
		appState.Sort = logic.SortState{Key: key}
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	m := &Model{
		config:       cfg,
		state:        appState,
		store:        store,
		spinner:      sp,
		navigator:    nav.NewNavigator(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		pager:        NewPager(),
	}

	m.eventHandler = handlers.NewEventHandler(appState, store)
	m.cmdExecutor = commands.NewExecutor(context.Background(), fetcher, opener)

	// Placeholder text input; the live one belongs to the input handler
	m.viewModel = viewmodels.NewViewModel(appState, store, textinput.New())

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init fetches the first page of the active term
func (m *Model) Init() tea.Cmd {
	first := m.store.FetchPage(m.store.ActiveTerm(), 0)
	return tea.Batch(m.cmdExecutor.ExecuteFetch(first), m.spinner.Tick)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		ctx := &input.ModelContext{
			State: m.state,
			Store: m.store,
			Rows:  m.visibleRows(),
		}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		if ti := m.inputHandler.TextInput(); ti != nil {
			m.viewModel.UpdateTextInput(*ti)
		}
		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// handleNonKeyboardMsg processes results, events and timers
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case commands.FetchResultMsg:
		m.eventHandler.ApplyFetchOutcome(msg.Outcome)
		m.ensureSelectedVisible()
		return m, nil

	case commands.OpenResultMsg:
		if msg.Err != nil {
			m.state.SetError(fmt.Sprintf("Could not open %s: %v", msg.URL, msg.Err))
		} else {
			m.state.SetStatus("Opened " + msg.URL)
		}
		return m, m.clearStatusAfter()

	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case handlers.ClearStatusMsg:
		m.state.ClearStatusIfCurrent(msg.Seq)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.inPagerMode {
			// restarted on resume
			return m, nil
		}
		return m, cmd

	case pagerMsg:
		if msg.err != nil {
			logging.NewLogger("ui").WithError(msg.err).Warn("pager failed")
			m.state.SetError(fmt.Sprintf("Pager failed: %v", msg.err))
			return m, m.clearStatusAfter()
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, m.spinner.Tick
	}

	// cursor blink and friends
	cmd := m.inputHandler.Update(msg)
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}
	return m, cmd
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetSpinner(m.spinner.View())

	var mode viewmodels.InputMode
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeSearch:
		mode = viewmodels.InputModeSearch
	case inputtypes.ModeSortSelect:
		mode = viewmodels.InputModeSort
	default:
		mode = viewmodels.InputModeNormal
	}
	m.viewModel.SetInputMode(mode, m.inputHandler.Prompt())
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.SubmitTextAction:
		if a.Mode != inputtypes.ModeSearch {
			return nil
		}
		m.store.SetInputValue(a.Text)
		previous := m.store.ActiveTerm()
		request, ok := m.store.SubmitSearch()
		if m.store.ActiveTerm() != previous {
			m.state.SelectedIndex = 0
			m.state.ViewportOffset = 0
		}
		if !ok {
			return nil
		}
		return m.cmdExecutor.ExecuteFetch(request)

	case inputtypes.LoadMoreAction:
		if m.store.IsLoading() {
			return nil
		}
		return m.cmdExecutor.ExecuteFetch(m.store.FetchNextPage())

	case inputtypes.DismissAction:
		m.store.Dismiss(a.ObjectID)
		m.ensureSelectedVisible()

	case inputtypes.SortByAction:
		m.keepCursorOnHit(func() {
			m.state.Sort = m.state.Sort.Select(a.Key)
		})

	case inputtypes.SetSortAction:
		m.keepCursorOnHit(func() {
			m.state.Sort = a.State
		})

	case inputtypes.UpdateSortIndexAction:
		m.state.SortOptionIndex = a.Index

	case inputtypes.OpenLinkAction:
		if hit, ok := m.currentHit(); ok {
			return m.cmdExecutor.ExecuteOpen(hit)
		}

	case inputtypes.ShowDetailsAction:
		if hit, ok := m.currentHit(); ok {
			return m.showInPager(DetailsContent(hit))
		}

	case inputtypes.ToggleHelpAction:
		return m.showInPager(HelpContent())

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

// navigate moves the cursor within the displayed rows
func (m *Model) navigate(direction string) {
	m.syncNavigatorState()
	switch direction {
	case "up":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(-1)
	case "down":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(1)
	case "pageup":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(-m.navigator.PageSize())
	case "pagedown":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(m.navigator.PageSize())
	case "home":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(0)
	case "end":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(m.navigator.GetMaxIndex())
	}
}

// keepCursorOnHit applies a reordering and moves the cursor so it stays
// on the same story
func (m *Model) keepCursorOnHit(reorder func()) {
	current, ok := m.currentHit()
	reorder()
	if ok {
		for i, hit := range m.viewModel.Rows() {
			if hit.ObjectID == current.ObjectID {
				m.state.SelectedIndex = i
				break
			}
		}
	}
	m.ensureSelectedVisible()
}

// visibleRows returns the rows on screen. The error view hides the table, so
// nothing can be acted on while it shows.
func (m *Model) visibleRows() []domain.Hit {
	if m.store.LastError() != nil {
		return nil
	}
	return m.viewModel.Rows()
}

// currentHit returns the hit under the cursor
func (m *Model) currentHit() (domain.Hit, bool) {
	rows := m.visibleRows()
	if m.state.SelectedIndex < 0 || m.state.SelectedIndex >= len(rows) {
		return domain.Hit{}, false
	}
	return rows[m.state.SelectedIndex], true
}

// showInPager returns a command that shows content using ov pager
func (m *Model) showInPager(content string) tea.Cmd {
	if !m.pager.Available() {
		m.state.SetError("Pager is not available")
		return m.clearStatusAfter()
	}
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.Show(content)
		m.program.Send(resumeRenderingMsg{})
		return pagerMsg{err: err}
	}
}

// syncNavigatorState updates the navigator with current model state
func (m *Model) syncNavigatorState() {
	m.navigator.UpdateState(
		m.state.SelectedIndex,
		m.state.ViewportOffset,
		m.state.ViewportHeight,
		len(m.viewModel.Rows()),
	)
}

// ensureSelectedVisible ensures the selected item is visible in the viewport
func (m *Model) ensureSelectedVisible() {
	m.syncNavigatorState()
	m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(m.state.SelectedIndex)
}

// updateViewportHeight recalculates the table height after a resize
func (m *Model) updateViewportHeight() {
	height := m.height - views.ReservedLines
	if height < 1 {
		height = 1
	}
	m.state.ViewportHeight = height
	m.ensureSelectedVisible()
}

func (m *Model) clearStatusAfter() tea.Cmd {
	return handlers.ClearStatusAfter(m.state.StatusSeq, handlers.StatusTimeout)
}
