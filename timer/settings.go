package timer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/breathe/internal/session"
	"github.com/ayoisaiah/breathe/internal/timeutil"
)

const (
	breathStep = 5
	holdStep   = 15
	volumeStep = 0.25
)

// settingsValues backs the fields of the settings form.
type settingsValues struct {
	tone      session.Tone
	holds     [session.MaxRounds]int
	volume    float64
	breaths   int
	rounds    int
	hold      int
	increment int
	custom    bool
	sound     bool
}

// snap moves v onto the nearest step between lo and hi.
func snap(v, lo, hi, step int) int {
	v = min(max(v, lo), hi)

	return min(lo+(v-lo+step/2)/step*step, hi)
}

func newSettingsValues(s session.Settings) *settingsValues {
	s = s.Clamp()

	v := &settingsValues{
		breaths:   snap(s.BreathsPerRound, session.MinBreathsPerRound, session.MaxBreathsPerRound, breathStep),
		rounds:    s.TotalRounds,
		hold:      snap(s.InitialHoldTime, session.MinInitialHold, session.MaxInitialHold, holdStep),
		increment: snap(s.HoldIncrement, session.MinHoldIncrement, session.MaxHoldIncrement, holdStep),
		custom:    s.CustomMode,
		sound:     s.SoundEnabled,
		volume:    float64(int(s.SoundVolume/volumeStep+0.5)) * volumeStep,
		tone:      s.BreathingTone,
	}

	for i := range v.holds {
		hold := session.DefaultCustomHold
		if i < len(s.CustomHoldTimes) {
			hold = s.CustomHoldTimes[i]
		}

		v.holds[i] = snap(hold, session.MinCustomHold, session.MaxCustomHold, holdStep)
	}

	return v
}

// patch converts the form values into a settings update. Custom hold times
// are only replaced when custom mode is on.
func (v *settingsValues) patch() session.Patch {
	p := session.Patch{
		BreathsPerRound: &v.breaths,
		TotalRounds:     &v.rounds,
		InitialHoldTime: &v.hold,
		HoldIncrement:   &v.increment,
		CustomMode:      &v.custom,
		SoundEnabled:    &v.sound,
		SoundVolume:     &v.volume,
		BreathingTone:   &v.tone,
	}

	if v.custom {
		p.CustomHoldTimes = append([]int(nil), v.holds[:v.rounds]...)
	}

	return p
}

func intOptions(lo, hi, step int, label func(int) string) []huh.Option[int] {
	var opts []huh.Option[int]

	for v := lo; v <= hi; v += step {
		opts = append(opts, huh.NewOption(label(v), v))
	}

	return opts
}

func secondsLabel(v int) string {
	return fmt.Sprintf("%ds (%s)", v, timeutil.FormatClock(v))
}

func toneOptions() []huh.Option[session.Tone] {
	opts := make([]huh.Option[session.Tone], len(session.Tones))

	for i, t := range session.Tones {
		name := string(t)
		opts[i] = huh.NewOption(strings.ToUpper(name[:1])+name[1:], t)
	}

	return opts
}

func volumeOptions() []huh.Option[float64] {
	var opts []huh.Option[float64]

	for v := session.MinVolume; v <= session.MaxVolume; v += volumeStep {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%.0f%%", v*100), v))
	}

	return opts
}

// newSettingsForm builds the form that edits v. Only in-range values are
// offered, so the resulting patch always validates.
func newSettingsForm(v *settingsValues) *huh.Form {
	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Breaths per round").
				Options(intOptions(session.MinBreathsPerRound, session.MaxBreathsPerRound, breathStep, strconv.Itoa)...).
				Value(&v.breaths),
			huh.NewSelect[int]().
				Title("Rounds").
				Options(intOptions(session.MinRounds, session.MaxRounds, 1, strconv.Itoa)...).
				Value(&v.rounds),
			huh.NewConfirm().
				Title("Custom hold times?").
				Description("Set the hold time of each round individually").
				Value(&v.custom),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Initial hold time").
				Options(intOptions(session.MinInitialHold, session.MaxInitialHold, holdStep, secondsLabel)...).
				Value(&v.hold),
			huh.NewSelect[int]().
				Title("Hold increment per round").
				Options(intOptions(session.MinHoldIncrement, session.MaxHoldIncrement, holdStep, secondsLabel)...).
				Value(&v.increment),
		).WithHideFunc(func() bool {
			return v.custom
		}),
	}

	for i := range v.holds {
		i := i

		groups = append(groups, huh.NewGroup(
			huh.NewSelect[int]().
				Title(fmt.Sprintf("Round %d hold time", i+1)).
				Options(intOptions(session.MinCustomHold, session.MaxCustomHold, holdStep, secondsLabel)...).
				Value(&v.holds[i]),
		).WithHideFunc(func() bool {
			return !v.custom || i >= v.rounds
		}))
	}

	groups = append(groups, huh.NewGroup(
		huh.NewConfirm().
			Title("Sound cues").
			Affirmative("On").
			Negative("Off").
			Value(&v.sound),
		huh.NewSelect[float64]().
			Title("Volume").
			Options(volumeOptions()...).
			Value(&v.volume),
		huh.NewSelect[session.Tone]().
			Title("Breathing tone").
			Options(toneOptions()...).
			Value(&v.tone),
	))

	return huh.NewForm(groups...).WithShowHelp(true)
}
