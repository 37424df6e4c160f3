package model

import "time"

// TimeOfDay buckets the hours of a day.
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeNight     TimeOfDay = "night"
	TimeAnytime   TimeOfDay = "anytime"
)

// BucketFor returns the bucket containing t's local hour.
func BucketFor(t time.Time) TimeOfDay {
	switch h := t.Hour(); {
	case h >= 5 && h < 12:
		return TimeMorning
	case h >= 12 && h < 17:
		return TimeAfternoon
	case h >= 17 && h < 22:
		return TimeEvening
	default:
		return TimeNight
	}
}

// ParseTimeOfDay maps a raw string onto a known bucket.
func ParseTimeOfDay(s string) (TimeOfDay, bool) {
	switch b := TimeOfDay(s); b {
	case TimeMorning, TimeAfternoon, TimeEvening, TimeNight, TimeAnytime:
		return b, true
	}
	return "", false
}
