// Package task is the task-lifecycle engine: pure transforms that apply a
// single user event (habit toggle, daily completion, todo completion, day
// rollover) to a Character and return the new state. Nothing here performs
// I/O; persisting the result is the caller's job.
package task

import (
	"time"

	"github.com/statforge/habitquest/game/progression"
	"github.com/statforge/habitquest/model"
)

// Direction is the side of a habit being toggled.
type Direction string

const (
	DirectionPositive Direction = "positive"
	DirectionNegative Direction = "negative"
)

// ToggleHabit moves the habit's count one step in the requested direction.
// The toggle itself grants no experience: habit influence on stats is a
// derived buff, recomputed on read (see StatBuffs).
func ToggleHabit(c model.Character, habitID string, dir Direction, now time.Time) (model.Character, error) {
	idx := -1
	for i := range c.Habits {
		if c.Habits[i].ID == habitID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return c, ErrTaskNotFound
	}

	h := c.Habits[idx]
	switch dir {
	case DirectionPositive:
		if !h.Positive {
			return c, ErrDirectionNotAllowed
		}
	case DirectionNegative:
		if !h.Negative {
			return c, ErrDirectionNotAllowed
		}
	default:
		return c, ErrDirectionNotAllowed
	}

	out := c.Clone()
	hb := &out.Habits[idx]
	if dir == DirectionPositive {
		hb.Count++
	} else {
		hb.Count--
	}
	t := now
	hb.LastCompleted = &t
	return out, nil
}

// CompleteDaily marks a scheduled daily done for today, advances its
// streak, and grants streak-scaled experience plus small clamped resource
// gains. Completing an already-completed or unscheduled daily is a no-op.
func CompleteDaily(c model.Character, dailyID string, now time.Time) (model.Character, error) {
	idx := -1
	for i := range c.Dailies {
		if c.Dailies[i].ID == dailyID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return c, ErrTaskNotFound
	}

	d := c.Dailies[idx]
	if d.Completed {
		return c, ErrAlreadyCompleted
	}
	if !d.Schedule.On(now.Weekday()) {
		return c, ErrNotScheduled
	}
	// Same-day re-completion guard independent of the Completed flag, so a
	// stale flag cleared mid-day can never double-increment the streak.
	if d.LastCompleted != nil && sameDay(*d.LastCompleted, now) {
		return c, ErrAlreadyCompleted
	}

	out := c.Clone()
	dl := &out.Dailies[idx]

	// A scheduled day missed since the last completion breaks the streak,
	// even if the rollover task has not run yet.
	if dl.LastCompleted != nil && missedScheduledDay(*dl.LastCompleted, now, dl.Schedule) {
		dl.Streak = 0
	}

	dl.Completed = true
	t := now
	dl.LastCompleted = &t
	dl.Streak++
	dl.History = append(dl.History, model.HistoryEntry{
		CompletedAt:        now,
		StreakAtCompletion: dl.Streak,
	})

	rank := dl.Difficulty.Rank()
	out.Health.Current += healthGain[rank]
	out.Mana.Current += manaGain[rank]
	out.Health.Clamp()
	out.Mana.Clamp()

	return progression.GainExperience(out, DailyXP(dl.Difficulty, dl.Streak)), nil
}

// CompleteTodo completes a one-shot todo and grants its flat experience.
// Completion is permanent; a second call is a no-op.
func CompleteTodo(c model.Character, todoID string, now time.Time) (model.Character, error) {
	idx := -1
	for i := range c.Todos {
		if c.Todos[i].ID == todoID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return c, ErrTaskNotFound
	}
	if c.Todos[idx].Completed {
		return c, ErrAlreadyCompleted
	}

	out := c.Clone()
	td := &out.Todos[idx]
	td.Completed = true
	t := now
	td.LastCompleted = &t
	td.History = append(td.History, model.HistoryEntry{CompletedAt: now})

	return progression.GainExperience(out, TodoXP(td.Difficulty)), nil
}

// ResetDailyPeriod is the external-clock-driven day rollover: it clears
// stale completed flags and zeroes the streak of any daily that missed a
// scheduled day. Dailies not scheduled today are left untouched.
func ResetDailyPeriod(c model.Character, now time.Time) model.Character {
	out := c.Clone()
	for i := range out.Dailies {
		d := &out.Dailies[i]
		if !d.Schedule.On(now.Weekday()) {
			continue
		}
		if d.Completed && d.LastCompleted != nil && !sameDay(*d.LastCompleted, now) {
			d.Completed = false
		}
		if d.LastCompleted != nil && missedScheduledDay(*d.LastCompleted, now, d.Schedule) {
			d.Streak = 0
		}
	}
	return out
}
