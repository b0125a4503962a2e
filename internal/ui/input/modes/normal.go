package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"eventdeck/internal/domain"
	"eventdeck/internal/ui/input/types"
)

// filterLetters are the fixed shortcuts for each filter
var filterLetters = map[string]domain.FilterKey{
	"a": domain.FilterAll,
	"c": domain.FilterCurrent,
	"u": domain.FilterUpcoming,
	"p": domain.FilterPast,
}

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
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyTab:
		return m.cycleFilter(ctx, 1)

	case tea.KeyShiftTab:
		return m.cycleFilter(ctx, -1)
	}

	key := msg.String()

	// Filter shortcuts: letters are fixed, digits follow the filter bar
	if want, ok := filterLetters[key]; ok {
		return m.selectFilter(ctx, want)
	}
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		filters := ctx.AvailableFilters()
		idx := int(key[0] - '1')
		if idx < len(filters) {
			return []types.Action{types.FilterAction{Key: filters[idx]}}, true
		}
		return nil, true
	}

	switch key {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "ctrl+d":
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case "ctrl+u":
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case "/":
		// Search prompt only when search is wired
		if !ctx.SearchEnabled() {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.SearchText()}}, true

	case "esc":
		// Drop an active search and go back to the filter's list
		if ctx.SearchText() != "" {
			return []types.Action{types.FilterAction{Key: ctx.ActiveFilter()}}, true
		}
		return nil, true

	case "r":
		if ctx.IsLoading() {
			return nil, true
		}
		return []types.Action{types.ReloadAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "H":
		return []types.Action{types.OpenHelpPagerAction{}}, true

	case "v":
		return []types.Action{types.OpenResultsPagerAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top (within timeout)
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		// First g, wait for next key
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		// Any other key cancels the 'g' prefix
		m.lastKeyWasG = false
	}

	return nil, false
}

// selectFilter emits a FilterAction when the filter is offered, and swallows
// the key otherwise
func (m *NormalMode) selectFilter(ctx types.Context, want domain.FilterKey) ([]types.Action, bool) {
	for _, key := range ctx.AvailableFilters() {
		if key == want {
			return []types.Action{types.FilterAction{Key: key}}, true
		}
	}
	return nil, true
}

func (m *NormalMode) cycleFilter(ctx types.Context, delta int) ([]types.Action, bool) {
	filters := ctx.AvailableFilters()
	if len(filters) == 0 {
		return nil, true
	}

	current := -1
	for i, key := range filters {
		if key == ctx.ActiveFilter() {
			current = i
			break
		}
	}

	next := (current + delta + len(filters)) % len(filters)
	if current == -1 && delta < 0 {
		next = len(filters) - 1
	}
	return []types.Action{types.FilterAction{Key: filters[next]}}, true
}
