package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// InputMode represents the different input modes
type InputMode int

const (
	InputModeNormal InputMode = iota
	InputModeSearch
	InputModeSort
)

// InputTransformer handles input mode transformations
type InputTransformer struct {
	mode      InputMode
	prompt    string
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      InputModeNormal,
		textInput: textInput,
	}
}

// SetMode sets the current input mode
func (it *InputTransformer) SetMode(mode InputMode) {
	it.mode = mode
}

// SetPrompt sets the label shown before the text input
func (it *InputTransformer) SetPrompt(prompt string) {
	it.prompt = prompt
}

// GetInputText returns the current text input string for the view
func (it *InputTransformer) GetInputText() string {
	switch it.mode {
	case InputModeSearch:
		return it.prompt + it.textInput.View()
	default:
		// Sort mode uses interactive selection, not text input
		return ""
	}
}

// GetInputModeString returns the string representation of the input mode
func (it *InputTransformer) GetInputModeString() string {
	switch it.mode {
	case InputModeSearch:
		return "search"
	case InputModeSort:
		return "sort"
	default:
		return ""
	}
}
