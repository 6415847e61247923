package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"hnsearch/internal/domain"
	"hnsearch/internal/logic"
	"hnsearch/internal/ui/state"
	"hnsearch/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	store            *logic.Store
	width            int
	height           int
	spinner          string
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, store *logic.Store, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		store:            store,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetSpinner sets the current spinner frame
func (vm *ViewModel) SetSpinner(frame string) {
	vm.spinner = frame
}

// SetInputMode sets the current input mode and its prompt
func (vm *ViewModel) SetInputMode(mode InputMode, prompt string) {
	vm.inputTransformer.SetMode(mode)
	vm.inputTransformer.SetPrompt(prompt)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// Rows returns the active result set in display order
func (vm *ViewModel) Rows() []domain.Hit {
	return vm.state.Sort.Apply(vm.store.ActiveResultSet())
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	entry, hasEntry := vm.store.Entry(vm.store.ActiveTerm())

	return views.ViewState{
		Width:           vm.width,
		Height:          vm.height,
		Term:            vm.store.ActiveTerm(),
		Rows:            vm.Rows(),
		SelectedIndex:   vm.state.SelectedIndex,
		ViewportOffset:  vm.state.ViewportOffset,
		ViewportHeight:  vm.state.ViewportHeight,
		Loading:         vm.store.IsLoading(),
		Spinner:         vm.spinner,
		Err:             vm.store.LastError(),
		Page:            entry.Page,
		NbPages:         entry.NbPages,
		NbHits:          entry.NbHits,
		HasMore:         !hasEntry || entry.HasMore(),
		HasEntry:        hasEntry,
		Sort:            vm.state.Sort,
		ShowURL:         vm.state.ShowURL,
		StatusMessage:   vm.state.StatusMessage,
		StatusIsError:   vm.state.StatusIsError,
		TextInput:       vm.inputTransformer.GetInputText(),
		InputMode:       vm.inputTransformer.GetInputModeString(),
		SortOptionIndex: vm.state.SortOptionIndex,
	}
}
