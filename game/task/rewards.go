package task

import (
	"math"

	"github.com/statforge/habitquest/model"
)

// Base experience per difficulty tier.
var baseXP = map[model.Difficulty]int{
	model.DifficultyTrivial: 5,
	model.DifficultyEasy:    10,
	model.DifficultyMedium:  25,
	model.DifficultyHard:    50,
}

// Small resource top-ups granted on daily completion, per difficulty rank.
var (
	healthGain = [4]int{1, 2, 3, 5}
	manaGain   = [4]int{1, 1, 2, 3}
)

// streakBonusCap bounds the streak multiplier at 2x.
const streakBonusCap = 2.0

// StreakMultiplier returns min(1 + streak*0.1, 2.0).
func StreakMultiplier(streak int) float64 {
	m := 1.0 + float64(streak)*0.1
	if m > streakBonusCap {
		return streakBonusCap
	}
	return m
}

// DailyXP is the experience for completing a daily: the difficulty base
// scaled by the streak multiplier, floored to an integer. The streak value
// is the one reached by the completion being rewarded.
func DailyXP(d model.Difficulty, streak int) int {
	return int(math.Floor(float64(baseXP[d]) * StreakMultiplier(streak)))
}

// TodoXP is the flat difficulty-based experience for completing a todo.
func TodoXP(d model.Difficulty) int {
	return baseXP[d]
}
