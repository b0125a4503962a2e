package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"eventdeck/internal/cards"
	"eventdeck/internal/domain"
	"eventdeck/internal/logic"
	"eventdeck/internal/ui/state"
	"eventdeck/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	filters          []domain.FilterKey
	searchEnabled    bool
	width            int
	height           int
	help             help.Model
	keys             views.KeyMap
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model. filters are the filters offered in
// the bar; an empty list hides the bar.
func NewViewModel(appState *state.AppState, filters []domain.FilterKey, searchEnabled bool, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		filters:          filters,
		searchEnabled:    searchEnabled,
		help:             help.New(),
		keys:             views.NewKeyMap(len(filters) > 0, searchEnabled),
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode InputMode) {
	vm.inputTransformer.SetMode(mode)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// CurrentPage returns what the results area shows for the current state
func (vm *ViewModel) CurrentPage() cards.Page {
	switch vm.state.LoadState {
	case state.LoadFailed:
		return cards.LoadErrorPage()
	case state.LoadDone:
		return cards.ForSelector(vm.state.Events(), vm.state.Selector())
	default:
		return cards.LoadingPage()
	}
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	var counts map[domain.FilterKey]int
	if vm.state.LoadState == state.LoadDone {
		counts = logic.CountByFilter(vm.state.Events())
	}

	return views.ViewState{
		Width:            vm.width,
		Height:           vm.height,
		Page:             vm.CurrentPage(),
		Filters:          vm.filters,
		ActiveFilter:     vm.state.ActiveFilter,
		Counts:           counts,
		SearchEnabled:    vm.searchEnabled,
		SearchText:       vm.state.SearchText,
		InputMode:        vm.inputTransformer.GetInputModeString(),
		InputPrompt:      vm.inputTransformer.GetPrompt(),
		TextInput:        vm.inputTransformer.GetInputText(),
		Loading:          vm.state.LoadState == state.LoadInProgress,
		StatusMessage:    vm.state.StatusMessage,
		StatusIsError:    vm.state.LoadState == state.LoadFailed,
		ShowHelp:         vm.state.ShowHelp,
		HelpScrollOffset: vm.state.HelpScrollOffset,
		ViewportOffset:   vm.state.ViewportOffset,
		ViewportHeight:   vm.state.ViewportHeight,
		HelpModel:        vm.help,
		Keys:             vm.keys,
	}
}
