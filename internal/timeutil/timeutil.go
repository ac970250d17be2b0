// Package timeutil provides utility functions for presenting durations.
package timeutil

import "fmt"

const secondsInAMinute = 60

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
func SecsToMinsAndSecs(val int) (mins, secs int) {
	mins = val / secondsInAMinute
	secs = val % secondsInAMinute

	return
}

// FormatClock renders a number of seconds as M:SS. Negative values are
// rendered as 0:00.
func FormatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}

	m, s := SecsToMinsAndSecs(secs)

	return fmt.Sprintf("%d:%02d", m, s)
}
