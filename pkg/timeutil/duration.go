// Package timeutil renders durations for people.
package timeutil

import (
	"fmt"
	"time"
)

// Phrase renders d at minute precision: "few seconds" below a minute, "N
// minutes" below an hour, "H hours M minutes" otherwise. Negative durations
// render as "few seconds".
func Phrase(d time.Duration) string {
	minutes := int64(d / time.Minute)
	switch {
	case minutes < 1:
		return "few seconds"
	case minutes < 60:
		return fmt.Sprintf("%d minutes", minutes)
	default:
		return fmt.Sprintf("%d hours %d minutes", minutes/60, minutes%60)
	}
}

// PhraseMinutes is Phrase for a whole number of minutes.
func PhraseMinutes(minutes int64) string {
	return Phrase(time.Duration(minutes) * time.Minute)
}
