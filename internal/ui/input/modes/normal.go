package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hnsearch/internal/logic"
	"hnsearch/internal/ui/input/types"
)

const doubleGTimeout = 500 * time.Millisecond

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	key := msg.String()
	if key != "g" {
		m.lastKeyWasG = false
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return navigate("up"), true

	case tea.KeyDown:
		return navigate("down"), true

	case tea.KeyPgUp:
		return navigate("pageup"), true

	case tea.KeyPgDown:
		return navigate("pagedown"), true

	case tea.KeyHome:
		return navigate("home"), true

	case tea.KeyEnd:
		return navigate("end"), true

	case tea.KeyEnter:
		if ctx.CurrentHitID() != "" {
			return []types.Action{types.OpenLinkAction{}}, true
		}
		return nil, true

	case tea.KeyDelete:
		return m.dismiss(ctx), true
	}

	switch key {
	case "j":
		return navigate("down"), true

	case "k":
		return navigate("up"), true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < doubleGTimeout {
			m.lastKeyWasG = false
			return navigate("home"), true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		return navigate("end"), true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "m", "M":
		// The "more" control is hidden while a page is loading
		if ctx.IsLoading() {
			return nil, true
		}
		return []types.Action{types.LoadMoreAction{}}, true

	case "x", "d":
		return m.dismiss(ctx), true

	case "t":
		return []types.Action{types.SortByAction{Key: logic.SortTitle}}, true

	case "a":
		return []types.Action{types.SortByAction{Key: logic.SortAuthor}}, true

	case "c":
		return []types.Action{types.SortByAction{Key: logic.SortComments}}, true

	case "p":
		return []types.Action{types.SortByAction{Key: logic.SortPoints}}, true

	case "0":
		return []types.Action{types.SetSortAction{State: logic.SortState{}}}, true

	case "S":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSortSelect}}, true

	case "o":
		if ctx.CurrentHitID() != "" {
			return []types.Action{types.OpenLinkAction{}}, true
		}
		return nil, true

	case "i":
		if ctx.CurrentHitID() != "" {
			return []types.Action{types.ShowDetailsAction{}}, true
		}
		return nil, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}

func (m *NormalMode) dismiss(ctx types.Context) []types.Action {
	id := ctx.CurrentHitID()
	if id == "" {
		return nil
	}
	return []types.Action{types.DismissAction{ObjectID: id}}
}

func navigate(direction string) []types.Action {
	return []types.Action{types.NavigateAction{Direction: direction}}
}
