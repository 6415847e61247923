package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"hnsearch/internal/logic"
	"hnsearch/internal/ui/input/types"
)

// SortOptions available for sorting
var SortOptions = []struct {
	Key         logic.SortKey
	Name        string
	Description string
}{
	{logic.SortNone, "None", "Keep the order the API returned"},
	{logic.SortTitle, "Title", "Sort by title, A to Z"},
	{logic.SortAuthor, "Author", "Sort by author, A to Z"},
	{logic.SortComments, "Comments", "Most discussed first"},
	{logic.SortPoints, "Points", "Highest score first"},
}

type SortSelectMode struct {
	sortIndex int
	original  logic.SortState // restored on cancel
}

func NewSortSelectMode() *SortSelectMode {
	return &SortSelectMode{}
}

func (m *SortSelectMode) Name() string {
	return "sort"
}

func (m *SortSelectMode) Enter(ctx types.Context) []types.Action {
	m.original = ctx.CurrentSort()
	m.sortIndex = 0
	for i, option := range SortOptions {
		if option.Key == m.original.Key {
			m.sortIndex = i
			break
		}
	}
	return []types.Action{types.UpdateSortIndexAction{Index: m.sortIndex}}
}

func (m *SortSelectMode) Exit(ctx types.Context) []types.Action {
	return nil
}

// HandleKey previews every option as it is highlighted
func (m *SortSelectMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "q":
		return []types.Action{
			types.SetSortAction{State: m.original},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "enter":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case "up", "k":
		m.sortIndex--
		if m.sortIndex < 0 {
			m.sortIndex = len(SortOptions) - 1
		}
		return m.preview(), true

	case "down", "j":
		m.sortIndex++
		if m.sortIndex >= len(SortOptions) {
			m.sortIndex = 0
		}
		return m.preview(), true
	}

	return nil, true
}

func (m *SortSelectMode) preview() []types.Action {
	return []types.Action{
		types.UpdateSortIndexAction{Index: m.sortIndex},
		types.SetSortAction{State: logic.SortState{Key: SortOptions[m.sortIndex].Key}},
	}
}

// GetCurrentIndex returns the current sort option index
func (m *SortSelectMode) GetCurrentIndex() int {
	return m.sortIndex
}
