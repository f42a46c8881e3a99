package task

import "github.com/statforge/habitquest/model"

// StatBuffs derives the live stat bonuses from current task state:
// a habit contributes its net count to its associated stat, a daily
// contributes floor(streak/3), a completed todo a flat +2. Buffs are a
// view, never persisted, so they can be recomputed on every read without
// double-applying. The sum is additive and commutative across collections.
func StatBuffs(c model.Character) model.CharacterStats {
	var buffs model.CharacterStats
	for i := range c.Habits {
		h := &c.Habits[i]
		buffs.Add(h.AssociatedStat, h.Count)
	}
	for i := range c.Dailies {
		d := &c.Dailies[i]
		buffs.Add(d.AssociatedStat, d.Streak/3)
	}
	for i := range c.Todos {
		t := &c.Todos[i]
		if t.Completed {
			buffs.Add(t.AssociatedStat, 2)
		}
	}
	return buffs
}

// EffectiveStats is the character's base stats with derived buffs applied.
func EffectiveStats(c model.Character) model.CharacterStats {
	stats := c.Stats
	buffs := StatBuffs(c)
	for _, s := range model.AllStats {
		stats.Add(s, buffs.Get(s))
	}
	return stats
}
