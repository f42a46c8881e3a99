// Package progression resolves experience gains into level-ups and the
// resource scaling that comes with them. It is appended as a single atomic
// step to every reward-granting operation.
package progression

import (
	"math"

	"github.com/statforge/habitquest/model"
)

const (
	// Threshold grows by x1.5 per level, floored to an integer.
	xpGrowthFactor = 1.5
	// Health and mana max each grow by a fixed increment per level.
	resourceGrowth = 5
)

// GainExperience adds amount to the character's experience and resolves
// however many level thresholds that crosses. Overflow experience carries
// into the next level; a single large grant may cross several levels.
// Post-condition: 0 <= Experience < ExperienceToNextLevel.
func GainExperience(c model.Character, amount int) model.Character {
	out := c.Clone()
	if amount <= 0 {
		return out
	}
	out.Experience += amount
	for out.Experience >= out.ExperienceToNextLevel {
		out.Experience -= out.ExperienceToNextLevel
		out.Level++
		out.ExperienceToNextLevel = int(math.Floor(float64(out.ExperienceToNextLevel) * xpGrowthFactor))
		out.Health.Max += resourceGrowth
		out.Mana.Max += resourceGrowth
		out.Health.Current = out.Health.Max
		out.Mana.Current = out.Mana.Max
		// Token grant scales with the level reached.
		out.BattleTokens += out.Level
	}
	out.Health.Clamp()
	out.Mana.Clamp()
	return out
}
