// Package timer drives a breathing session from the terminal, either through
// an interactive interface or as plain line output
package timer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/breathe/internal/session"
	"github.com/ayoisaiah/breathe/internal/ui"
)

const (
	padding  = 2
	maxWidth = 60

	tickInterval  = time.Second
	completeDelay = time.Second
)

// Notifier announces a completed session.
type Notifier interface {
	SessionComplete(rounds int) error
	RunCmd(ctx context.Context) error
}

// Options configures the interactive timer.
type Options struct {
	Notifier Notifier
	Muter    *Muter
	Log      *slog.Logger
	Style    ui.Style
	Debug    bool
}

// Timer is the bubbletea model of the interactive timer.
type Timer struct {
	ctx      context.Context
	ctrl     *session.Controller
	opts     Options
	form     *huh.Form
	values   *settingsValues
	status   string
	clock    stopwatch.Model
	progress progress.Model
	help     help.Model
	// lastElapsed is the stopwatch reading at the last counted tick.
	lastElapsed time.Duration
	completed   bool
}

type (
	// completeMsg is sent a short while after the final hold ends.
	completeMsg struct{}

	// notifiedMsg carries the outcome of the completion notification.
	notifiedMsg struct {
		err error
	}
)

// New creates the interactive timer for a controller.
func New(ctx context.Context, ctrl *session.Controller, opts Options) *Timer {
	if opts.Log == nil {
		opts.Log = slog.Default()
	}

	return &Timer{
		ctx:      ctx,
		ctrl:     ctrl,
		opts:     opts,
		clock:    stopwatch.NewWithInterval(tickInterval),
		progress: progress.New(progress.WithDefaultGradient()),
		help:     help.New(),
	}
}

func (t *Timer) Init() tea.Cmd {
	return nil
}

// restartClock replaces the stopwatch and starts it. A stopped stopwatch
// still has a tick in flight, which carries the old ID and is ignored.
func (t *Timer) restartClock() tea.Cmd {
	t.lastElapsed = 0
	t.clock = stopwatch.NewWithInterval(tickInterval)

	return t.clock.Start()
}

// start begins a new session.
func (t *Timer) start() tea.Cmd {
	t.ctrl.Start()

	t.completed = false
	t.status = ""

	return t.restartClock()
}

// resume continues a paused session from where it stopped.
func (t *Timer) resume() tea.Cmd {
	if !t.ctrl.Resume() {
		return nil
	}

	return t.restartClock()
}

// stop ends the session and the tick chain.
func (t *Timer) stop() tea.Cmd {
	t.ctrl.Stop()

	return t.clock.Stop()
}

// notify sends the desktop notification and runs the completion command.
func (t *Timer) notify() tea.Cmd {
	if t.opts.Notifier == nil {
		return nil
	}

	n := t.opts.Notifier
	rounds := t.ctrl.Settings().TotalRounds
	ctx := t.ctx

	return func() tea.Msg {
		return notifiedMsg{
			err: errors.Join(n.SessionComplete(rounds), n.RunCmd(ctx)),
		}
	}
}
