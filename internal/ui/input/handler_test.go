package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventdeck/internal/domain"
	"eventdeck/internal/ui/input/types"
)

type fakeContext struct {
	active  domain.FilterKey
	filters []domain.FilterKey
	search  bool
	text    string
	loading bool
}

func (c fakeContext) ActiveFilter() domain.FilterKey       { return c.active }
func (c fakeContext) AvailableFilters() []domain.FilterKey { return c.filters }
func (c fakeContext) SearchEnabled() bool                  { return c.search }
func (c fakeContext) SearchText() string                   { return c.text }
func (c fakeContext) IsLoading() bool                      { return c.loading }

func defaultContext() fakeContext {
	return fakeContext{active: domain.FilterAll, filters: domain.FilterKeys, search: true}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFilterLetters(t *testing.T) {
	h := New(true)
	actions, _ := h.HandleKey(runes("u"), defaultContext())
	require.Len(t, actions, 1)
	assert.Equal(t, types.FilterAction{Key: domain.FilterUpcoming}, actions[0])
}

func TestFilterDigitsFollowBar(t *testing.T) {
	h := New(true)
	ctx := defaultContext()
	ctx.filters = []domain.FilterKey{domain.FilterPast, domain.FilterCurrent}

	actions, _ := h.HandleKey(runes("1"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.FilterAction{Key: domain.FilterPast}, actions[0])

	actions, _ = h.HandleKey(runes("3"), ctx)
	assert.Empty(t, actions)
}

func TestUnavailableFilterIsIgnored(t *testing.T) {
	h := New(true)
	ctx := defaultContext()
	ctx.filters = []domain.FilterKey{domain.FilterAll}

	actions, _ := h.HandleKey(runes("p"), ctx)
	assert.Empty(t, actions)
}

func TestTabCyclesFilters(t *testing.T) {
	h := New(true)
	ctx := defaultContext()
	ctx.active = domain.FilterPast

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.FilterAction{Key: domain.FilterAll}, actions[0])

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyShiftTab}, ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.FilterAction{Key: domain.FilterUpcoming}, actions[0])
}

func TestSearchPromptSubmit(t *testing.T) {
	h := New(true)
	ctx := defaultContext()

	_, cmd := h.HandleKey(runes("/"), ctx)
	assert.NotNil(t, cmd)
	require.Equal(t, types.ModeSearch, h.CurrentMode())
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "Search: ", h.Prompt())

	actions, _ := h.HandleKey(runes("n"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "n"}, actions[0])
	h.HandleKey(runes("lp"), ctx)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.SubmitTextAction{Text: "nlp", Mode: types.ModeSearch}, actions[0])
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestSearchPromptStartsWithCurrentText(t *testing.T) {
	h := New(true)
	ctx := defaultContext()
	ctx.text = "go"

	h.HandleKey(runes("/"), ctx)
	assert.Equal(t, "go", h.TextInput().Value())
}

func TestSearchPromptCancel(t *testing.T) {
	h := New(true)
	ctx := defaultContext()

	h.HandleKey(runes("/"), ctx)
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.CancelTextAction{}, actions[0])
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestSearchDisabled(t *testing.T) {
	h := New(false)
	ctx := defaultContext()
	ctx.search = false

	assert.False(t, h.SearchAvailable())
	actions, _ := h.HandleKey(runes("/"), ctx)
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestEscClearsActiveSearch(t *testing.T) {
	h := New(true)
	ctx := defaultContext()
	ctx.active = domain.FilterCurrent
	ctx.text = "nlp"

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.FilterAction{Key: domain.FilterCurrent}, actions[0])
}

func TestReloadIgnoredWhileLoading(t *testing.T) {
	h := New(true)
	ctx := defaultContext()

	actions, _ := h.HandleKey(runes("r"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.ReloadAction{}, actions[0])

	ctx.loading = true
	actions, _ = h.HandleKey(runes("r"), ctx)
	assert.Empty(t, actions)
}

func TestNavigationKeys(t *testing.T) {
	h := New(true)
	ctx := defaultContext()

	actions, _ := h.HandleKey(runes("j"), ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "down"}}, actions)

	actions, _ = h.HandleKey(runes("G"), ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "end"}}, actions)

	h.HandleKey(runes("g"), ctx)
	actions, _ = h.HandleKey(runes("g"), ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "home"}}, actions)
}

func TestQuitKeys(t *testing.T) {
	h := New(true)
	actions, _ := h.HandleKey(runes("q"), defaultContext())
	assert.Equal(t, []types.Action{types.QuitAction{}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}, defaultContext())
	assert.Equal(t, []types.Action{types.QuitAction{Force: true}}, actions)
}
