package timer

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"
)

// handleClockTick forwards a stopwatch tick to the controller. A tick only
// counts when the stopwatch accepted it and advanced.
func (t *Timer) handleClockTick(msg stopwatch.TickMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	t.clock, cmd = t.clock.Update(msg)

	if t.clock.Elapsed() <= t.lastElapsed {
		return t, cmd
	}

	t.lastElapsed = t.clock.Elapsed()

	tr := t.ctrl.Tick()
	if !tr.Completed {
		return t, cmd
	}

	t.opts.Log.Info("session complete", slog.Int("rounds", tr.Round))

	return t, tea.Batch(
		t.clock.Stop(),
		tea.Tick(completeDelay, func(time.Time) tea.Msg {
			return completeMsg{}
		}),
	)
}

// handleFormUpdate routes messages to the settings form and applies the
// result once the form is submitted.
func (t *Timer) handleFormUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := t.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.form = f
	}

	switch t.form.State {
	case huh.StateCompleted:
		err := t.ctrl.UpdateSettings(t.values.patch())
		if err != nil {
			t.opts.Log.Warn("settings rejected", slog.Any("error", err))
			t.status = errSettingsRejected.Wrap(err).Error()
		} else {
			t.status = "Settings saved"
		}

		t.form, t.values = nil, nil

		return t, nil
	case huh.StateAborted:
		t.form, t.values = nil, nil

		return t, nil
	}

	return t, cmd
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sess := t.ctrl.Session()

	switch {
	case key.Matches(msg, defaultKeymap.quit):
		return t, tea.Batch(t.stop(), tea.Quit)

	case key.Matches(msg, defaultKeymap.enter):
		if sess.InProgress() {
			return t, nil
		}

		return t, t.start()

	case key.Matches(msg, defaultKeymap.togglePlay):
		switch {
		case sess.Active:
			t.ctrl.Pause()
			return t, t.clock.Stop()
		case sess.Paused:
			return t, t.resume()
		}

		return t, nil

	case key.Matches(msg, defaultKeymap.stop):
		if !sess.InProgress() {
			return t, nil
		}

		t.status = "Session stopped"

		return t, t.stop()

	case key.Matches(msg, defaultKeymap.settings):
		if sess.InProgress() {
			t.status = errSettingsLocked.Error()
			return t, nil
		}

		t.completed = false
		t.status = ""
		t.values = newSettingsValues(t.ctrl.Settings())
		t.form = newSettingsForm(t.values)

		return t, t.form.Init()

	case key.Matches(msg, defaultKeymap.sound):
		if t.opts.Muter == nil {
			return t, nil
		}

		muted := t.opts.Muter.Toggle()

		switch {
		case !t.ctrl.Settings().SoundEnabled:
			t.status = "Sound cues are turned off in settings"
		case muted:
			t.status = "Sound muted"
		default:
			t.status = "Sound on"
		}

		return t, nil
	}

	return t, nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if t.opts.Debug {
		t.opts.Log.Debug("message", slog.String("msg", spew.Sdump(msg)))
	}

	if t.form != nil {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case keyMsg.String() == "ctrl+c":
				return t, tea.Batch(t.stop(), tea.Quit)
			case key.Matches(keyMsg, defaultKeymap.back):
				t.form, t.values = nil, nil
				return t, nil
			}
		}

		switch msg.(type) {
		case stopwatch.TickMsg, completeMsg, notifiedMsg:
		default:
			return t.handleFormUpdate(msg)
		}
	}

	switch msg := msg.(type) {
	case stopwatch.TickMsg:
		return t.handleClockTick(msg)

	case stopwatch.StartStopMsg, stopwatch.ResetMsg:
		var cmd tea.Cmd
		t.clock, cmd = t.clock.Update(msg)

		return t, cmd

	case completeMsg:
		if t.ctrl.Session().InProgress() {
			return t, nil
		}

		t.completed = true

		return t, t.notify()

	case notifiedMsg:
		if msg.err != nil {
			t.opts.Log.Warn("completion notification failed", slog.Any("error", msg.err))
		}

		return t, nil

	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = min(msg.Width-padding*2-4, maxWidth)
		t.help.Width = msg.Width

		return t, nil
	}

	return t, nil
}
