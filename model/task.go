package model

import "time"

// TaskKind discriminates the task union on the wire.
type TaskKind string

const (
	KindHabit TaskKind = "habit"
	KindDaily TaskKind = "daily"
	KindTodo  TaskKind = "todo"
)

// Difficulty is the ranked reward tier of a task.
type Difficulty string

const (
	DifficultyTrivial Difficulty = "trivial"
	DifficultyEasy    Difficulty = "easy"
	DifficultyMedium  Difficulty = "medium"
	DifficultyHard    Difficulty = "hard"
)

// Valid reports whether d is one of the four known tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyTrivial, DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Rank orders difficulties (trivial=0 .. hard=3); unknown values rank as trivial.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	}
	return 0
}

// HistoryEntry is one append-only completion record.
type HistoryEntry struct {
	CompletedAt        time.Time `json:"completedAt"`
	StreakAtCompletion int       `json:"streakAtCompletion"`
}

// TaskBase carries the fields shared by every task kind.
type TaskBase struct {
	ID             string         `json:"id"`
	Kind           TaskKind       `json:"type"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Difficulty     Difficulty     `json:"difficulty"`
	AssociatedStat Stat           `json:"associatedStat"`
	Completed      bool           `json:"completed"`
	LastCompleted  *time.Time     `json:"lastCompleted"`
	Streak         int            `json:"streak"`
	History        []HistoryEntry `json:"history"`
}

// Habit is a repeatable task tracked by a signed net count rather than a
// single completion toggle. Positive/Negative gate which directions the
// count may move in.
type Habit struct {
	TaskBase
	Count    int  `json:"count"`
	Positive bool `json:"positive"`
	Negative bool `json:"negative"`
}

// WeekSchedule holds one active/inactive flag per weekday.
type WeekSchedule struct {
	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
	Saturday  bool `json:"saturday"`
	Sunday    bool `json:"sunday"`
}

// On reports whether the schedule is active on the given weekday.
func (w WeekSchedule) On(day time.Weekday) bool {
	switch day {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	}
	return false
}

// EveryDay is the all-days schedule, used as the default for new dailies.
var EveryDay = WeekSchedule{
	Monday: true, Tuesday: true, Wednesday: true, Thursday: true,
	Friday: true, Saturday: true, Sunday: true,
}

// Daily recurs on a weekly schedule and is toggled once per active day,
// building a streak of on-schedule completions.
type Daily struct {
	TaskBase
	Schedule WeekSchedule `json:"schedule"`
}

// ChecklistItem is a sub-item of a todo. Items carry no rewards of their own.
type ChecklistItem struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Todo is a one-shot task, completed at most once.
type Todo struct {
	TaskBase
	DueDate   *time.Time      `json:"dueDate,omitempty"`
	Checklist []ChecklistItem `json:"checklist,omitempty"`
}
