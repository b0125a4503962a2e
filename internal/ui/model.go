package ui

import (
	"log"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"eventdeck/internal/config"
	"eventdeck/internal/domain"
	"eventdeck/internal/eventbus"
	"eventdeck/internal/ui/commands"
	"eventdeck/internal/ui/handlers"
	"eventdeck/internal/ui/input"
	inputtypes "eventdeck/internal/ui/input/types"
	"eventdeck/internal/ui/logic"
	"eventdeck/internal/ui/state"
	"eventdeck/internal/ui/viewmodels"
	"eventdeck/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state

	// UI-specific state not in AppState
	width         int
	height        int
	filters       []domain.FilterKey
	searchEnabled bool
	inPagerMode   bool // tracks if we're currently in pager mode

	// Handlers
	navigator    *logic.Navigator       // viewport scrolling
	renderer     *views.Renderer        // view renderer
	eventHandler *handlers.EventHandler // event processing handler
	viewModel    *viewmodels.ViewModel  // view model for rendering
	cmdExecutor  *commands.Executor     // command executor
	inputHandler *input.Handler         // input handling
	pager        *PagerOps              // external pager

	program *tea.Program
}

// NewModel creates a new UI model that loads events from source
func NewModel(bus eventbus.EventBus, cfg *config.Config, source string) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	appState := state.NewAppState()
	filters := cfg.FilterKeys()
	// start on "all" when offered, otherwise the first configured filter
	if len(filters) > 0 && !slices.Contains(filters, domain.FilterAll) {
		appState.ActiveFilter = filters[0]
	}
	searchEnabled := cfg.UISettings.EnableSearch

	inputHandler := input.New(searchEnabled)

	m := &Model{
		bus:           bus,
		config:        cfg,
		state:         appState,
		filters:       filters,
		searchEnabled: searchEnabled,
		navigator:     logic.NewNavigator(),
		renderer:      views.NewRenderer(cfg.UISettings.CardWidth, cfg.UISettings.ShowDescription),
		eventHandler:  handlers.NewEventHandler(appState),
		cmdExecutor:   commands.NewExecutor(appState, bus, source),
		inputHandler:  inputHandler,
		pager:         NewPagerOps(nil),
	}

	m.viewModel = viewmodels.NewViewModel(appState, filters, searchEnabled, *inputHandler.TextInputModel())

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init starts the first page load
func (m *Model) Init() tea.Cmd {
	return m.cmdExecutor.ExecuteLoad()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	default:
		// Cursor blinks and other input messages
		if c := m.inputHandler.Update(msg); c != nil {
			m.syncTextInput()
			return m, c
		}
		cmd = m.handleNonKeyboardMsg(msg)
	}

	m.syncViewport()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.state.ShowHelp {
		return m.handleHelpKey(msg)
	}

	ctx := &modelContext{m: m}
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

	m.syncTextInput()
	return tea.Batch(cmds...)
}

// handleHelpKey scrolls or closes the help popup
func (m *Model) handleHelpKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "?", "esc", "q":
		m.state.ShowHelp = false
		m.state.HelpScrollOffset = 0
	case "j", "down":
		lines := strings.Count(views.HelpContent(m.filters, m.searchEnabled), "\n") + 1
		if m.state.HelpScrollOffset < lines-(m.height-6) {
			m.state.HelpScrollOffset++
		}
	case "k", "up":
		if m.state.HelpScrollOffset > 0 {
			m.state.HelpScrollOffset--
		}
	case "H":
		m.state.ShowHelp = false
		return m.processAction(inputtypes.OpenHelpPagerAction{})
	case "ctrl+c":
		return tea.Quit
	}
	return nil
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.Printf("processAction: %T", action)
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigator.UpdateState(m.state.ViewportOffset, m.state.ViewportHeight, len(m.pageLines()))
		m.state.ViewportOffset = m.navigator.Scroll(a.Direction)

	case inputtypes.FilterAction:
		return m.cmdExecutor.ExecuteFilter(a.Key)

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeSearch {
			return m.cmdExecutor.ExecuteSearch(a.Text)
		}

	case inputtypes.CancelTextAction:
		// the submitted search stays in effect

	case inputtypes.ReloadAction:
		return m.cmdExecutor.ExecuteLoad()

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
		m.state.HelpScrollOffset = 0

	case inputtypes.OpenHelpPagerAction:
		return m.openPager("help", views.HelpContent(m.filters, m.searchEnabled))

	case inputtypes.OpenResultsPagerAction:
		return m.openPager("results", m.renderer.RenderPage(m.viewModel.CurrentPage(), m.contentWidth()))

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// openPager returns a command that shows content in ov, pausing and resuming rendering
func (m *Model) openPager(what, content string) tea.Cmd {
	if m.program == nil {
		log.Printf("%s pager unavailable: program not set", what)
		return nil
	}
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.ShowInPager(content)
		m.program.Send(resumeRenderingMsg{})
		return pagerMsg{what: what, err: err}
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case EventMsg:
		return m.eventHandler.HandleEvent(msg.Event)

	case pagerMsg:
		if msg.err != nil {
			// log only; the screen is restored either way
			log.Printf("%s pager failed: %v", msg.what, msg.err)
		}

	case pauseRenderingMsg:
		m.inPagerMode = true

	case resumeRenderingMsg:
		m.inPagerMode = false
	}
	return nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	m.syncInputMode()
	return m.renderer.Render(m.viewModel.BuildViewState())
}

// syncInputMode mirrors the input handler's mode into the view model
func (m *Model) syncInputMode() {
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeSearch:
		m.viewModel.SetInputMode(viewmodels.InputModeSearch)
	default:
		m.viewModel.SetInputMode(viewmodels.InputModeNormal)
	}
}

func (m *Model) syncTextInput() {
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}
}

// syncViewport sizes the results area to what the chrome leaves and keeps the
// offset in range for the current page
func (m *Model) syncViewport() {
	if m.height == 0 {
		return
	}

	m.syncInputMode()
	height := m.height - m.renderer.ChromeHeight(m.viewModel.BuildViewState())
	if height < 3 {
		height = 3
	}
	m.state.ViewportHeight = height

	m.navigator.UpdateState(m.state.ViewportOffset, height, len(m.pageLines()))
	m.state.ViewportOffset = m.navigator.GetViewportOffset()
}

func (m *Model) pageLines() []string {
	return m.renderer.PageLines(m.viewModel.CurrentPage(), m.contentWidth(), "")
}

// contentWidth is the width inside the main container padding
func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return 76
	}
	return m.width - 4
}

// modelContext exposes model state to the input modes
type modelContext struct {
	m *Model
}

func (c *modelContext) ActiveFilter() domain.FilterKey       { return c.m.state.ActiveFilter }
func (c *modelContext) AvailableFilters() []domain.FilterKey { return c.m.filters }
func (c *modelContext) SearchEnabled() bool                  { return c.m.inputHandler.SearchAvailable() }
func (c *modelContext) SearchText() string                   { return c.m.state.SearchText }
func (c *modelContext) IsLoading() bool                      { return c.m.state.LoadState == state.LoadInProgress }
