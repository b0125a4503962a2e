package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// InputMode represents the different input modes
type InputMode int

const (
	InputModeNormal InputMode = iota
	InputModeSearch
)

// InputTransformer handles input mode transformations
type InputTransformer struct {
	mode      InputMode
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

// GetPrompt returns the label drawn before the input
func (it *InputTransformer) GetPrompt() string {
	if it.mode == InputModeSearch {
		return "Search: "
	}
	return ""
}

// GetInputText returns the current text input string for the view
func (it *InputTransformer) GetInputText() string {
	if it.mode == InputModeNormal {
		return ""
	}
	return it.textInput.View()
}

// GetInputModeString returns the string representation of the input mode
func (it *InputTransformer) GetInputModeString() string {
	switch it.mode {
	case InputModeSearch:
		return "search"
	default:
		return ""
	}
}
