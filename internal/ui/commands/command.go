package commands

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"eventdeck/internal/domain"
	"eventdeck/internal/eventbus"
	"eventdeck/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State  *state.AppState
	Bus    eventbus.EventBus
	Source string
}

// LoadCommand starts a page load: the store is reset and one request is made
type LoadCommand struct {
	ctx *CommandContext
}

// NewLoadCommand creates a new load command
func NewLoadCommand(ctx *CommandContext) *LoadCommand {
	return &LoadCommand{ctx: ctx}
}

// Execute resets the state and asks the loader for the collection
func (c *LoadCommand) Execute() tea.Cmd {
	if c.ctx.State.LoadState == state.LoadInProgress {
		log.Printf("LoadCommand: load already in progress")
		return nil
	}

	c.ctx.State.StartLoading(c.ctx.Source)
	c.ctx.State.StatusMessage = "Loading events..."
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.LoadRequestedEvent{Source: c.ctx.Source})
	}
	return nil
}

// FilterCommand makes a filter active and clears the search
type FilterCommand struct {
	ctx *CommandContext
	key domain.FilterKey
}

// NewFilterCommand creates a new filter command
func NewFilterCommand(ctx *CommandContext, key domain.FilterKey) *FilterCommand {
	return &FilterCommand{ctx: ctx, key: key}
}

// Execute applies the filter
func (c *FilterCommand) Execute() tea.Cmd {
	c.ctx.State.ApplyFilter(c.key)
	c.ctx.State.StatusMessage = ""
	return nil
}

// SearchCommand records a submitted search
type SearchCommand struct {
	ctx  *CommandContext
	text string
}

// NewSearchCommand creates a new search command
func NewSearchCommand(ctx *CommandContext, text string) *SearchCommand {
	return &SearchCommand{ctx: ctx, text: text}
}

// Execute applies the search; whitespace-only text shows the active filter again
func (c *SearchCommand) Execute() tea.Cmd {
	c.ctx.State.ApplySearch(c.text)
	c.ctx.State.StatusMessage = ""
	return nil
}
