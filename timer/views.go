package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/breathe/internal/notify"
	"github.com/ayoisaiah/breathe/internal/session"
	"github.com/ayoisaiah/breathe/internal/timeutil"
)

func (t *Timer) completeView() string {
	var s strings.Builder

	rounds := t.ctrl.Settings().TotalRounds

	s.WriteString(t.opts.Style.Main.SetString(notify.Title()).String())
	s.WriteString("\n\n" + t.opts.Style.Secondary.SetString(notify.Message(rounds)).String())
	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.enter,
		defaultKeymap.settings,
		defaultKeymap.quit,
	}))

	return s.String()
}

// planSummary describes the hold time of every round.
func planSummary(st session.Settings) string {
	holds := make([]string, st.TotalRounds)

	for i := range holds {
		holds[i] = timeutil.FormatClock(st.HoldTarget(i + 1))
	}

	return fmt.Sprintf(
		"%d breaths × %d rounds, holds %s",
		st.BreathsPerRound,
		st.TotalRounds,
		strings.Join(holds, " → "),
	)
}

func (t *Timer) idleView() string {
	var s strings.Builder

	st := t.ctrl.Settings()

	s.WriteString(t.opts.Style.Main.SetString("Ready when you are").String())
	s.WriteString("\n\n" + t.opts.Style.Secondary.SetString(planSummary(st)).String())

	sound := "sound off"
	if st.SoundEnabled && (t.opts.Muter == nil || !t.opts.Muter.Muted()) {
		sound = fmt.Sprintf("%s tone at %.0f%%", st.BreathingTone, st.SoundVolume*100)
	}

	s.WriteString("\n" + t.opts.Style.Hint.SetString(sound).String())
	s.WriteString(t.statusView())
	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.enter,
		defaultKeymap.settings,
		defaultKeymap.sound,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (t *Timer) sessionView() string {
	var s strings.Builder

	d := t.ctrl.Display()

	s.WriteString(t.opts.Style.PhaseLabel(d.Phase))

	if d.Paused {
		s.WriteString(t.opts.Style.Secondary.SetString("[Paused]").String())
	}

	s.WriteString(strings.TrimSpace(
		t.opts.Style.Hint.SetString(
			fmt.Sprintf(" Round %d of %d", d.Round, d.TotalRounds),
		).String(),
	))

	s.WriteString("\n\n")
	s.WriteString(t.opts.Style.Main.SetString(d.Clock).String())

	if d.ShowBreaths {
		s.WriteString(t.opts.Style.Hint.SetString(
			fmt.Sprintf("  breath %d of %d", d.Breath+1, d.BreathsPerRound),
		).String())
	}

	if d.ShowNextHold {
		s.WriteString(t.opts.Style.Hint.SetString(
			fmt.Sprintf("  next hold %ds", d.NextHold),
		).String())
	}

	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(d.Progress))
	s.WriteString(t.statusView())
	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.stop,
		defaultKeymap.sound,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (t *Timer) statusView() string {
	if t.status == "" {
		return ""
	}

	return "\n\n" + t.opts.Style.Hint.SetString(t.status).String()
}

func (t *Timer) View() string {
	var view string

	switch {
	case t.form != nil:
		view = t.form.View() + "\n" + t.help.ShortHelpView([]key.Binding{
			defaultKeymap.back,
		})
	case t.ctrl.Session().InProgress():
		view = t.sessionView()
	case t.completed:
		view = t.completeView()
	default:
		view = t.idleView()
	}

	return t.opts.Style.Base.Render(view)
}
