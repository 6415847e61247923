package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"hnsearch/internal/ui/input/types"
)

type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}

// Enter seeds the input with the pending search text
func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	m.TextInputMode.Enter(ctx)
	if m.textInput != nil {
		m.textInput.SetValue(ctx.InputValue())
		m.textInput.CursorEnd()
	}
	return nil
}
