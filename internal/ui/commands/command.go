package commands

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gadgetfind/internal/domain"
	"gadgetfind/internal/eventbus"
	"gadgetfind/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CopyFunc writes text to the system clipboard
type CopyFunc func(text string) error

// CommandContext provides context for command execution
type CommandContext struct {
	State *state.AppState
	Bus   eventbus.EventBus
	Copy  CopyFunc
}

// CopiedMsg reports the outcome of a CopyTitleCommand
type CopiedMsg struct {
	Text string
	Err  error
}

// StatusExpiredMsg asks the model to drop the status set under Seq
type StatusExpiredMsg struct {
	Seq int
}

// CopyTitleCommand copies an item title to the clipboard
type CopyTitleCommand struct {
	ctx  *CommandContext
	item domain.Item
}

// NewCopyTitleCommand creates a new copy title command
func NewCopyTitleCommand(ctx *CommandContext, item domain.Item) *CopyTitleCommand {
	return &CopyTitleCommand{
		ctx:  ctx,
		item: item,
	}
}

// Execute copies off the UI goroutine. Items without a title copy nothing.
func (c *CopyTitleCommand) Execute() tea.Cmd {
	if c.item.Title == "" || c.ctx.Copy == nil {
		return nil
	}
	title := c.item.Title
	copyFn := c.ctx.Copy
	bus := c.ctx.Bus
	return func() tea.Msg {
		err := copyFn(title)
		if err != nil && bus != nil {
			bus.Publish(eventbus.ErrorEvent{Message: "copy to clipboard failed", Err: err})
		}
		return CopiedMsg{Text: title, Err: err}
	}
}

// StatusCommand shows a status line that expires after a timeout
type StatusCommand struct {
	ctx     *CommandContext
	message string
	isError bool
	seq     int
	timeout time.Duration
}

// NewStatusCommand creates a new status command
func NewStatusCommand(ctx *CommandContext, message string, isError bool, seq int, timeout time.Duration) *StatusCommand {
	return &StatusCommand{
		ctx:     ctx,
		message: message,
		isError: isError,
		seq:     seq,
		timeout: timeout,
	}
}

// Execute sets the status and schedules its expiry. An empty message only schedules the expiry.
func (c *StatusCommand) Execute() tea.Cmd {
	if c.message != "" {
		if c.isError {
			c.ctx.State.SetError(c.message)
		} else {
			c.ctx.State.SetStatus(c.message)
		}
	}
	seq := c.seq
	return tea.Tick(c.timeout, func(time.Time) tea.Msg {
		return StatusExpiredMsg{Seq: seq}
	})
}
