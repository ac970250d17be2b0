package timer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/ayoisaiah/breathe/internal/notify"
	"github.com/ayoisaiah/breathe/internal/session"
	"github.com/ayoisaiah/breathe/internal/ticker"
	"github.com/ayoisaiah/breathe/internal/timeutil"
	"github.com/ayoisaiah/breathe/internal/ui"
)

// Plain runs a session without the interactive interface, printing one line
// per phase change.
type Plain struct {
	Out      io.Writer
	Notifier Notifier
	Log      *slog.Logger
	// Period is the length of a tick. It defaults to one second.
	Period time.Duration
	// CompleteDelay is the pause before the completion notification. It
	// defaults to one second.
	CompleteDelay time.Duration
}

func (p *Plain) defaults() {
	if p.Out == nil {
		p.Out = os.Stdout
	}

	if p.Log == nil {
		p.Log = slog.Default()
	}

	if p.Period <= 0 {
		p.Period = tickInterval
	}

	if p.CompleteDelay <= 0 {
		p.CompleteDelay = completeDelay
	}
}

// Run starts a session and blocks until it completes or ctx is cancelled.
// An interrupted session is stopped and is not an error.
func (p *Plain) Run(ctx context.Context, ctrl *session.Controller) error {
	p.defaults()

	var (
		tk   ticker.Ticker
		once sync.Once
		werr error
	)

	done := make(chan struct{})

	write := func(line string) {
		if line == "" || werr != nil {
			return
		}

		_, werr = fmt.Fprintln(p.Out, line)
	}

	ctrl.Start()
	write(roundLine(ctrl.Display()))
	write(transitionLine(session.Transition{Cue: session.CueInhale}, ctrl.Display()))

	tk.Start(ctx, p.Period, func() {
		tr := ctrl.Tick()
		write(transitionLine(tr, ctrl.Display()))

		if tr.Completed {
			once.Do(func() {
				close(done)
			})
		}
	})

	select {
	case <-done:
		tk.Stop()
	case <-ctx.Done():
		tk.Stop()
		ctrl.Stop()
		write(ui.Highlight("Session stopped"))

		return werr
	}

	if werr != nil {
		return werr
	}

	select {
	case <-time.After(p.CompleteDelay):
	case <-ctx.Done():
		return nil
	}

	p.notify(ctx, ctrl.Settings().TotalRounds)

	return nil
}

func (p *Plain) notify(ctx context.Context, rounds int) {
	if p.Notifier == nil {
		return
	}

	if err := p.Notifier.SessionComplete(rounds); err != nil {
		p.Log.Warn("completion notification failed", slog.Any("error", err))
	}

	if err := p.Notifier.RunCmd(ctx); err != nil {
		p.Log.Warn("completion command failed", slog.Any("error", err))
	}
}

func roundLine(d session.Display) string {
	return ui.Highlight(fmt.Sprintf("Round %d of %d", d.Round, d.TotalRounds))
}

// transitionLine renders the line printed after a tick, or an empty string
// when nothing changed.
func transitionLine(tr session.Transition, d session.Display) string {
	switch tr.Cue {
	case session.CueInhale, session.CueExhale:
		return fmt.Sprintf(
			"  %s breath %d of %d",
			ui.Phase(d.Phase, fmt.Sprintf("%-16s", d.Label)),
			d.Breath+1,
			d.BreathsPerRound,
		)
	case session.CueHold:
		line := fmt.Sprintf(
			"  %s %s",
			ui.Phase(d.Phase, fmt.Sprintf("%-16s", d.Label)),
			d.Clock,
		)
		if d.ShowNextHold {
			line += " " + ui.Yellow(fmt.Sprintf("(next round %s)", timeutil.FormatClock(d.NextHold)))
		}

		return line
	case session.CueRoundComplete:
		return roundLine(d) + "\n" +
			transitionLine(session.Transition{Cue: session.CueInhale}, d)
	case session.CueComplete:
		return ui.Green(notify.Title())
	}

	return ""
}
