package commands

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gadgetfind/internal/domain"
	"gadgetfind/internal/eventbus"
	"gadgetfind/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx           *CommandContext
	statusTimeout time.Duration
	statusSeq     int
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, bus eventbus.EventBus, copyFn CopyFunc, statusTimeout time.Duration) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State: state,
			Bus:   bus,
			Copy:  copyFn,
		},
		statusTimeout: statusTimeout,
	}
}

// SetCopyFunc replaces the clipboard writer
func (e *Executor) SetCopyFunc(copyFn CopyFunc) {
	e.ctx.Copy = copyFn
}

// ExecuteCopyTitle creates and executes a copy title command
func (e *Executor) ExecuteCopyTitle(item domain.Item) tea.Cmd {
	cmd := NewCopyTitleCommand(e.ctx, item)
	return cmd.Execute()
}

// ExecuteStatus shows message and returns the command that expires it
func (e *Executor) ExecuteStatus(message string, isError bool) tea.Cmd {
	e.statusSeq++
	cmd := NewStatusCommand(e.ctx, message, isError, e.statusSeq, e.statusTimeout)
	return cmd.Execute()
}

// ExpireStatus clears the status when msg belongs to the most recent one
func (e *Executor) ExpireStatus(msg StatusExpiredMsg) {
	if msg.Seq == e.statusSeq {
		e.ctx.State.ClearStatus()
	}
}

// StatusSeq returns the sequence number of the most recent status
func (e *Executor) StatusSeq() int {
	return e.statusSeq
}
