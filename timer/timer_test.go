package timer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"sync"
	"testing"

	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/breathe/internal/session"
)

type fakeNotifier struct {
	err       error
	completed []int
	cmds      int
	mu        sync.Mutex
}

func (f *fakeNotifier) SessionComplete(rounds int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.completed = append(f.completed, rounds)

	return f.err
}

func (f *fakeNotifier) RunCmd(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.cmds++

	return nil
}

type recorder struct {
	cues []session.Cue
}

func (r *recorder) Emit(cue session.Cue, _ session.Tone, _ float64) error {
	r.cues = append(r.cues, cue)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// shortSettings describes a session of 2 rounds of 2 breaths with holds of
// 2 and 3 seconds.
func shortSettings() session.Settings {
	s := session.DefaultSettings()
	s.BreathsPerRound = 2
	s.TotalRounds = 2
	s.InitialHoldTime = 2
	s.HoldIncrement = 1

	return s
}

func newTestTimer(s session.Settings) (*Timer, *fakeNotifier, *recorder) {
	n := &fakeNotifier{}
	rec := &recorder{}

	muter := NewMuter(rec)
	ctrl := session.NewController(s, muter, session.WithLogger(discardLogger()))

	tm := New(context.Background(), ctrl, Options{
		Notifier: n,
		Muter:    muter,
		Log:      discardLogger(),
	})

	return tm, n, rec
}

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}

	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(tm *Timer, k string) tea.Cmd {
	_, cmd := tm.Update(keyPress(k))
	return cmd
}

// deliverStart runs the first command of a stopwatch start sequence, which
// marks the stopwatch as running, without waiting for its first tick.
func deliverStart(t *testing.T, tm *Timer, cmd tea.Cmd) {
	t.Helper()

	if cmd == nil {
		t.Fatal("expected a start command")
	}

	v := reflect.ValueOf(cmd())
	if v.Kind() != reflect.Slice || v.Len() == 0 {
		t.Fatalf("expected a command sequence, got %T", cmd())
	}

	first, ok := v.Index(0).Interface().(tea.Cmd)
	if !ok {
		t.Fatalf("unexpected sequence element %T", v.Index(0).Interface())
	}

	tm.Update(first())
}

// deliver runs a command that produces a single message.
func deliver(tm *Timer, cmd tea.Cmd) {
	if cmd != nil {
		tm.Update(cmd())
	}
}

func tick(tm *Timer, n int) {
	for i := 0; i < n; i++ {
		tm.Update(stopwatch.TickMsg{ID: tm.clock.ID()})
	}
}

func TestEnterStartsSession(t *testing.T) {
	tm, _, rec := newTestTimer(shortSettings())

	assert.Nil(t, tm.Init())

	deliverStart(t, tm, press(tm, "enter"))

	sess := tm.ctrl.Session()
	assert.True(t, sess.Active)
	assert.Equal(t, session.Inhale, sess.Phase)
	assert.True(t, tm.clock.Running())
	assert.Equal(t, []session.Cue{session.CueInhale}, rec.cues)

	tick(tm, 2)
	assert.Equal(t, session.Exhale, tm.ctrl.Session().Phase)
	assert.Contains(t, tm.View(), "EXHALE")
	assert.Contains(t, tm.View(), "Round 1 of 2")
}

func TestTicksIgnoredUntilStarted(t *testing.T) {
	tm, _, _ := newTestTimer(shortSettings())

	tick(tm, 5)

	assert.Equal(t, 0, tm.ctrl.Session().Elapsed)
	assert.Contains(t, tm.View(), "Ready when you are")
}

func TestStaleClockTicksIgnored(t *testing.T) {
	tm, _, _ := newTestTimer(shortSettings())

	deliverStart(t, tm, press(tm, "enter"))
	oldID := tm.clock.ID()

	press(tm, "x")
	deliverStart(t, tm, press(tm, "enter"))

	tm.Update(stopwatch.TickMsg{ID: oldID})

	assert.Equal(t, 0, tm.ctrl.Session().Elapsed)
}

func TestPauseResume(t *testing.T) {
	tm, _, _ := newTestTimer(shortSettings())

	deliverStart(t, tm, press(tm, "enter"))
	tick(tm, 3)

	before := tm.ctrl.Session()

	deliver(tm, press(tm, "p"))
	assert.False(t, tm.clock.Running())
	assert.True(t, tm.ctrl.Session().Paused)
	assert.Contains(t, tm.View(), "[Paused]")

	tick(tm, 4)

	deliverStart(t, tm, press(tm, " "))

	after := tm.ctrl.Session()
	assert.True(t, after.Active)
	assert.Equal(t, before.Phase, after.Phase)
	assert.Equal(t, before.Elapsed, after.Elapsed)
	assert.Equal(t, before.BreathCount, after.BreathCount)
	assert.Equal(t, before.CurrentRound, after.CurrentRound)
}

func TestQuickResumeKeepsSingleTickChain(t *testing.T) {
	tm, _, _ := newTestTimer(shortSettings())

	deliverStart(t, tm, press(tm, "enter"))
	tick(tm, 1)

	pausedID := tm.clock.ID()

	deliver(tm, press(tm, "p"))
	deliverStart(t, tm, press(tm, "p"))

	assert.NotEqual(t, pausedID, tm.clock.ID())

	before := tm.ctrl.Session().Elapsed

	// the tick scheduled before the pause arrives after the resume
	_, cmd := tm.Update(stopwatch.TickMsg{ID: pausedID})
	assert.Nil(t, cmd)
	assert.Equal(t, before, tm.ctrl.Session().Elapsed)

	tick(tm, 1)
	assert.Equal(t, before+1, tm.ctrl.Session().Elapsed)
}

func TestStopResets(t *testing.T) {
	tm, _, _ := newTestTimer(shortSettings())

	deliverStart(t, tm, press(tm, "enter"))
	tick(tm, 5)

	deliver(tm, press(tm, "x"))

	assert.False(t, tm.ctrl.Session().InProgress())
	assert.False(t, tm.clock.Running())
	assert.Equal(t, 0, tm.ctrl.Session().Elapsed)
	assert.Contains(t, tm.View(), "Session stopped")
}

func TestFullSessionNotifies(t *testing.T) {
	tm, n, rec := newTestTimer(shortSettings())

	deliverStart(t, tm, press(tm, "enter"))

	// 2 rounds of 8 breathing ticks, then holds of 2 and 3 seconds
	tick(tm, 8+2+8+2)
	assert.True(t, tm.ctrl.Session().InProgress())

	_, cmd := tm.Update(stopwatch.TickMsg{ID: tm.clock.ID()})
	assert.False(t, tm.ctrl.Session().InProgress())
	assert.NotNil(t, cmd)
	assert.Equal(t, session.CueComplete, rec.cues[len(rec.cues)-1])

	_, cmd = tm.Update(completeMsg{})
	assert.True(t, tm.completed)
	assert.Contains(t, tm.View(), "Breathing session complete")

	deliver(tm, cmd)

	assert.Equal(t, []int{2}, n.completed)
	assert.Equal(t, 1, n.cmds)
}

func TestCompleteIgnoredWhenRestarted(t *testing.T) {
	tm, n, _ := newTestTimer(shortSettings())

	deliverStart(t, tm, press(tm, "enter"))

	_, cmd := tm.Update(completeMsg{})

	assert.Nil(t, cmd)
	assert.False(t, tm.completed)
	assert.Empty(t, n.completed)
}

func TestNotificationFailureLogged(t *testing.T) {
	tm, n, _ := newTestTimer(shortSettings())
	n.err = errors.New("no notification daemon")

	_, cmd := tm.Update(completeMsg{})
	deliver(tm, cmd)

	assert.Equal(t, 1, n.cmds, "the command still runs")
}

func TestMuteToggle(t *testing.T) {
	tm, _, rec := newTestTimer(shortSettings())

	press(tm, "m")
	assert.True(t, tm.opts.Muter.Muted())
	assert.Contains(t, tm.View(), "sound off")

	deliverStart(t, tm, press(tm, "enter"))
	tick(tm, 2)
	assert.Empty(t, rec.cues)

	press(tm, "m")
	tick(tm, 2)
	assert.Equal(t, []session.Cue{session.CueInhale}, rec.cues)
	assert.True(t, tm.ctrl.Settings().SoundEnabled, "settings are untouched")
}

func TestMuteStatusWhenSoundDisabled(t *testing.T) {
	s := shortSettings()
	s.SoundEnabled = false

	tm, _, _ := newTestTimer(s)

	press(tm, "m")
	press(tm, "m")

	assert.False(t, tm.opts.Muter.Muted())
	assert.NotContains(t, tm.View(), "Sound on")
	assert.Contains(t, tm.View(), "Sound cues are turned off in settings")
}

func TestSettingsFormLockedDuringSession(t *testing.T) {
	tm, _, _ := newTestTimer(shortSettings())

	deliverStart(t, tm, press(tm, "enter"))
	press(tm, "s")

	assert.Nil(t, tm.form)
	assert.Contains(t, tm.View(), errSettingsLocked.Error())

	deliver(tm, press(tm, "p"))
	press(tm, "s")
	assert.Nil(t, tm.form)
}

func TestSettingsFormOpensAndCloses(t *testing.T) {
	tm, _, _ := newTestTimer(session.DefaultSettings())

	press(tm, "s")
	assert.NotNil(t, tm.form)
	assert.Equal(t, 30, tm.values.breaths)

	press(tm, "esc")
	assert.Nil(t, tm.form)
	assert.Equal(t, session.DefaultSettings(), tm.ctrl.Settings())
}

func TestQuit(t *testing.T) {
	tm, _, _ := newTestTimer(shortSettings())

	deliverStart(t, tm, press(tm, "enter"))

	cmd := press(tm, "q")
	assert.NotNil(t, cmd)
	assert.False(t, tm.ctrl.Session().InProgress())
}

func TestWindowSize(t *testing.T) {
	tm, _, _ := newTestTimer(shortSettings())

	tm.Update(tea.WindowSizeMsg{Width: 200, Height: 40})
	assert.Equal(t, maxWidth, tm.progress.Width)

	tm.Update(tea.WindowSizeMsg{Width: 40, Height: 40})
	assert.Equal(t, 40-padding*2-4, tm.progress.Width)
}
