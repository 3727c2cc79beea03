package util

import (
	"time"
)

// AddMinutes returns t shifted by the given number of minutes without touching t
func AddMinutes(t time.Time, minutes int) time.Time {
	return t.Add(time.Duration(minutes) * time.Minute)
}

// MinutesCeil returns how many whole blocks of window are needed to cover duration
func MinutesCeil(duration time.Duration, window time.Duration) int {
	if duration <= 0 || window <= 0 {
		return 0
	}

	count := int(duration / window)
	if duration%window != 0 {
		count++
	}

	return count
}
