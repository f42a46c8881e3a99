package task

import (
	"time"

	"github.com/statforge/habitquest/model"
)

// sameDay reports whether a and b fall on the same calendar day.
// Streak logic is keyed on calendar-day identity, not elapsed-time buckets.
func sameDay(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}

// startOfDay truncates t to midnight.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// missedScheduledDay reports whether any scheduled day lies strictly
// between the last completion's day and today. That is the streak-breaking
// condition: elapsed unscheduled days never break a streak.
func missedScheduledDay(last time.Time, now time.Time, schedule model.WeekSchedule) bool {
	day := startOfDay(last).AddDate(0, 0, 1)
	today := startOfDay(now)
	for day.Before(today) {
		if schedule.On(day.Weekday()) {
			return true
		}
		day = day.AddDate(0, 0, 1)
	}
	return false
}
