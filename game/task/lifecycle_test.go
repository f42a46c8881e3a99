package task

import (
	"testing"
	"time"

	"github.com/statforge/habitquest/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-01-05 is a Monday; the weekday-sensitive tests anchor on it.
var monday = time.Date(2026, time.January, 5, 10, 0, 0, 0, time.UTC)

func testCharacter() model.Character {
	return model.NewCharacter("char-1", "Tester", "Human", "Fighter", model.CharacterStats{
		Strength: 12, Dexterity: 12, Constitution: 12,
		Intelligence: 12, Wisdom: 12, Charisma: 12,
	})
}

func newHabit(id string, pos, neg bool) model.Habit {
	return model.Habit{
		TaskBase: model.TaskBase{
			ID: id, Kind: model.KindHabit, Name: "habit " + id,
			Difficulty: model.DifficultyEasy, AssociatedStat: model.StatStrength,
		},
		Positive: pos,
		Negative: neg,
	}
}

func newDaily(id string, sched model.WeekSchedule) model.Daily {
	return model.Daily{
		TaskBase: model.TaskBase{
			ID: id, Kind: model.KindDaily, Name: "daily " + id,
			Difficulty: model.DifficultyMedium, AssociatedStat: model.StatConstitution,
		},
		Schedule: sched,
	}
}

func newTodo(id string) model.Todo {
	return model.Todo{
		TaskBase: model.TaskBase{
			ID: id, Kind: model.KindTodo, Name: "todo " + id,
			Difficulty: model.DifficultyHard, AssociatedStat: model.StatIntelligence,
		},
	}
}

func TestToggleHabit_PositiveIncrements(t *testing.T) {
	c := testCharacter()
	c.Habits = append(c.Habits, newHabit("h1", true, true))

	got, err := ToggleHabit(c, "h1", DirectionPositive, monday)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Habits[0].Count)
	require.NotNil(t, got.Habits[0].LastCompleted)
	assert.Equal(t, monday, *got.Habits[0].LastCompleted)

	// Toggling grants no experience.
	assert.Equal(t, c.Experience, got.Experience)
	assert.Equal(t, c.Level, got.Level)

	// The input value is untouched.
	assert.Equal(t, 0, c.Habits[0].Count)
}

func TestToggleHabit_NegativeDecrements(t *testing.T) {
	c := testCharacter()
	c.Habits = append(c.Habits, newHabit("h1", true, true))

	got, err := ToggleHabit(c, "h1", DirectionNegative, monday)
	require.NoError(t, err)
	assert.Equal(t, -1, got.Habits[0].Count)
}

func TestToggleHabit_DirectionGated(t *testing.T) {
	c := testCharacter()
	c.Habits = append(c.Habits, newHabit("pos-only", true, false))

	_, err := ToggleHabit(c, "pos-only", DirectionNegative, monday)
	assert.ErrorIs(t, err, ErrDirectionNotAllowed)

	_, err = ToggleHabit(c, "pos-only", Direction("sideways"), monday)
	assert.ErrorIs(t, err, ErrDirectionNotAllowed)
}

func TestToggleHabit_UnknownID(t *testing.T) {
	c := testCharacter()
	_, err := ToggleHabit(c, "missing", DirectionPositive, monday)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestCompleteDaily_FirstCompletion(t *testing.T) {
	c := testCharacter()
	c.Dailies = append(c.Dailies, newDaily("d1", model.EveryDay))

	got, err := CompleteDaily(c, "d1", monday)
	require.NoError(t, err)

	d := got.Dailies[0]
	assert.True(t, d.Completed)
	assert.Equal(t, 1, d.Streak)
	require.Len(t, d.History, 1)
	assert.Equal(t, 1, d.History[0].StreakAtCompletion)

	// medium base 25 * 1.1 (streak 1) = 27.5, floored.
	assert.Equal(t, 27, got.Experience)

	// Resources were already full, so the gains clamp away.
	assert.Equal(t, c.Health, got.Health)
	assert.Equal(t, c.Mana, got.Mana)
}

func TestCompleteDaily_RestoresSpentResources(t *testing.T) {
	c := testCharacter()
	c.Health.Current = 10
	c.Mana.Current = 0
	c.Dailies = append(c.Dailies, newDaily("d1", model.EveryDay))

	got, err := CompleteDaily(c, "d1", monday)
	require.NoError(t, err)
	assert.Equal(t, 13, got.Health.Current) // medium rank grants +3
	assert.Equal(t, 2, got.Mana.Current)
}

func TestCompleteDaily_SameDayIsNoop(t *testing.T) {
	c := testCharacter()
	c.Dailies = append(c.Dailies, newDaily("d1", model.EveryDay))

	first, err := CompleteDaily(c, "d1", monday)
	require.NoError(t, err)

	_, err = CompleteDaily(first, "d1", monday.Add(2*time.Hour))
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
}

func TestCompleteDaily_StaleFlagClearedSameDay(t *testing.T) {
	// Even with Completed cleared, a same-day LastCompleted blocks the
	// streak from incrementing twice in one day.
	c := testCharacter()
	c.Dailies = append(c.Dailies, newDaily("d1", model.EveryDay))

	first, err := CompleteDaily(c, "d1", monday)
	require.NoError(t, err)
	first.Dailies[0].Completed = false

	_, err = CompleteDaily(first, "d1", monday.Add(4*time.Hour))
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
}

func TestCompleteDaily_NotScheduledToday(t *testing.T) {
	c := testCharacter()
	c.Dailies = append(c.Dailies, newDaily("d1", model.WeekSchedule{Tuesday: true}))

	_, err := CompleteDaily(c, "d1", monday)
	assert.ErrorIs(t, err, ErrNotScheduled)
}

func TestCompleteDaily_StreakGrowsAcrossDays(t *testing.T) {
	c := testCharacter()
	c.Dailies = append(c.Dailies, newDaily("d1", model.EveryDay))

	day := monday
	for i := 1; i <= 4; i++ {
		next, err := CompleteDaily(c, "d1", day)
		require.NoError(t, err)
		assert.Equal(t, i, next.Dailies[0].Streak)
		next.Dailies[0].Completed = false // simulate rollover
		c = next
		day = day.AddDate(0, 0, 1)
	}
}

func TestCompleteDaily_MissedDayBreaksStreak(t *testing.T) {
	c := testCharacter()
	c.Dailies = append(c.Dailies, newDaily("d1", model.EveryDay))

	done, err := CompleteDaily(c, "d1", monday)
	require.NoError(t, err)
	done.Dailies[0].Completed = false

	// Skip Tuesday entirely; Wednesday's completion restarts at 1.
	wednesday := monday.AddDate(0, 0, 2)
	got, err := CompleteDaily(done, "d1", wednesday)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Dailies[0].Streak)
}

func TestCompleteDaily_OffScheduleGapKeepsStreak(t *testing.T) {
	// Mon/Wed/Fri schedule: completing Monday then Wednesday skips only
	// Tuesday, which is not a scheduled day, so the streak continues.
	mwf := model.WeekSchedule{Monday: true, Wednesday: true, Friday: true}
	c := testCharacter()
	c.Dailies = append(c.Dailies, newDaily("d1", mwf))
	c.Dailies[0].Streak = 5

	done, err := CompleteDaily(c, "d1", monday)
	require.NoError(t, err)
	require.Equal(t, 6, done.Dailies[0].Streak)
	done.Dailies[0].Completed = false

	wednesday := monday.AddDate(0, 0, 2)
	got, err := CompleteDaily(done, "d1", wednesday)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Dailies[0].Streak)
}

func TestCompleteDaily_MissedScheduledDayInGapBreaksStreak(t *testing.T) {
	mwf := model.WeekSchedule{Monday: true, Wednesday: true, Friday: true}
	c := testCharacter()
	c.Dailies = append(c.Dailies, newDaily("d1", mwf))

	done, err := CompleteDaily(c, "d1", monday)
	require.NoError(t, err)
	done.Dailies[0].Completed = false

	// Friday's completion skipped Wednesday, a scheduled day.
	friday := monday.AddDate(0, 0, 4)
	got, err := CompleteDaily(done, "d1", friday)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Dailies[0].Streak)
}

func TestCompleteDaily_StreakMultiplierCapped(t *testing.T) {
	c := testCharacter()
	c.Dailies = append(c.Dailies, newDaily("d1", model.EveryDay))
	c.Dailies[0].Streak = 30
	yesterday := monday.AddDate(0, 0, -1)
	c.Dailies[0].LastCompleted = &yesterday

	got, err := CompleteDaily(c, "d1", monday)
	require.NoError(t, err)
	// Multiplier is capped at 2x regardless of streak length.
	assert.Equal(t, 50, got.Experience)
}

func TestCompleteTodo_GrantsFlatXP(t *testing.T) {
	c := testCharacter()
	c.Todos = append(c.Todos, newTodo("t1"))

	got, err := CompleteTodo(c, "t1", monday)
	require.NoError(t, err)
	assert.True(t, got.Todos[0].Completed)
	assert.Equal(t, 50, got.Experience) // hard base, no streak scaling
	require.Len(t, got.Todos[0].History, 1)
}

func TestCompleteTodo_Permanent(t *testing.T) {
	c := testCharacter()
	c.Todos = append(c.Todos, newTodo("t1"))

	done, err := CompleteTodo(c, "t1", monday)
	require.NoError(t, err)

	// No amount of elapsed time reopens a todo.
	_, err = CompleteTodo(done, "t1", monday.AddDate(0, 1, 0))
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
}

func TestCompleteTodo_UnknownID(t *testing.T) {
	c := testCharacter()
	_, err := CompleteTodo(c, "missing", monday)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestResetDailyPeriod_ClearsStaleCompleted(t *testing.T) {
	c := testCharacter()
	c.Dailies = append(c.Dailies, newDaily("d1", model.EveryDay))

	done, err := CompleteDaily(c, "d1", monday)
	require.NoError(t, err)

	tuesday := monday.AddDate(0, 0, 1)
	reset := ResetDailyPeriod(done, tuesday)
	assert.False(t, reset.Dailies[0].Completed)
	assert.Equal(t, 1, reset.Dailies[0].Streak, "rollover the morning after keeps the streak")
}

func TestResetDailyPeriod_ZeroesMissedStreak(t *testing.T) {
	c := testCharacter()
	c.Dailies = append(c.Dailies, newDaily("d1", model.EveryDay))

	done, err := CompleteDaily(c, "d1", monday)
	require.NoError(t, err)

	// Two days later a scheduled Tuesday was missed.
	wednesday := monday.AddDate(0, 0, 2)
	reset := ResetDailyPeriod(done, wednesday)
	assert.Equal(t, 0, reset.Dailies[0].Streak)
	assert.False(t, reset.Dailies[0].Completed)
}

func TestResetDailyPeriod_SkipsUnscheduledToday(t *testing.T) {
	c := testCharacter()
	c.Dailies = append(c.Dailies, newDaily("d1", model.WeekSchedule{Tuesday: true}))
	c.Dailies[0].Completed = true
	lastWeek := monday.AddDate(0, 0, -6) // previous Tuesday
	c.Dailies[0].LastCompleted = &lastWeek
	c.Dailies[0].Streak = 3

	// Monday is off-schedule: the daily is left entirely alone.
	reset := ResetDailyPeriod(c, monday)
	assert.True(t, reset.Dailies[0].Completed)
	assert.Equal(t, 3, reset.Dailies[0].Streak)
}

func TestResetDailyPeriod_IdempotentOnFreshState(t *testing.T) {
	c := testCharacter()
	c.Dailies = append(c.Dailies, newDaily("d1", model.EveryDay))

	once := ResetDailyPeriod(c, monday)
	twice := ResetDailyPeriod(once, monday)
	assert.Equal(t, once, twice)
}

func TestStreakMultiplier(t *testing.T) {
	assert.InDelta(t, 1.0, StreakMultiplier(0), 1e-9)
	assert.InDelta(t, 1.1, StreakMultiplier(1), 1e-9)
	assert.InDelta(t, 1.5, StreakMultiplier(5), 1e-9)
	assert.InDelta(t, 2.0, StreakMultiplier(10), 1e-9)
	assert.InDelta(t, 2.0, StreakMultiplier(100), 1e-9)
}

func TestDailyXP_FlooredAfterScaling(t *testing.T) {
	assert.Equal(t, 5, DailyXP(model.DifficultyTrivial, 0))
	assert.Equal(t, 11, DailyXP(model.DifficultyEasy, 1)) // 10*1.1
	assert.Equal(t, 27, DailyXP(model.DifficultyMedium, 1))
	assert.Equal(t, 100, DailyXP(model.DifficultyHard, 25))
}

func TestStatBuffs_Derived(t *testing.T) {
	c := testCharacter()

	h := newHabit("h1", true, true)
	h.Count = 3 // strength +3
	c.Habits = append(c.Habits, h)

	d := newDaily("d1", model.EveryDay)
	d.Streak = 7 // constitution +2
	c.Dailies = append(c.Dailies, d)

	td := newTodo("t1")
	td.Completed = true // intelligence +2
	c.Todos = append(c.Todos, td)
	c.Todos = append(c.Todos, newTodo("t2")) // incomplete, no buff

	buffs := StatBuffs(c)
	assert.Equal(t, 3, buffs.Strength)
	assert.Equal(t, 2, buffs.Constitution)
	assert.Equal(t, 2, buffs.Intelligence)
	assert.Equal(t, 0, buffs.Wisdom)

	eff := EffectiveStats(c)
	assert.Equal(t, 15, eff.Strength)
	assert.Equal(t, 14, eff.Constitution)
	assert.Equal(t, 14, eff.Intelligence)
	assert.Equal(t, 12, eff.Dexterity)

	// Base stats are a separate block, never mutated by the buff view.
	assert.Equal(t, 12, c.Stats.Strength)
}

func TestStatBuffs_NegativeHabitCount(t *testing.T) {
	c := testCharacter()
	h := newHabit("h1", true, true)
	h.Count = -2
	c.Habits = append(c.Habits, h)

	assert.Equal(t, -2, StatBuffs(c).Strength)
	assert.Equal(t, 10, EffectiveStats(c).Strength)
}
