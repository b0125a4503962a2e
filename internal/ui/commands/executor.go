package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"eventdeck/internal/domain"
	"eventdeck/internal/eventbus"
	"eventdeck/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, bus eventbus.EventBus, source string) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:  state,
			Bus:    bus,
			Source: source,
		},
	}
}

// ExecuteLoad creates and executes a load command
func (e *Executor) ExecuteLoad() tea.Cmd {
	return NewLoadCommand(e.ctx).Execute()
}

// ExecuteFilter creates and executes a filter command
func (e *Executor) ExecuteFilter(key domain.FilterKey) tea.Cmd {
	return NewFilterCommand(e.ctx, key).Execute()
}

// ExecuteSearch creates and executes a search command
func (e *Executor) ExecuteSearch(text string) tea.Cmd {
	return NewSearchCommand(e.ctx, text).Execute()
}
