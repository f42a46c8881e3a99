package quiz

import (
	"fmt"
	"math"

	"github.com/statforge/habitquest/model"
)

// part2Base is the baseline applied to objective-calibration stats before
// their part2 deltas are summed.
const part2Base = 8

const (
	scoreFloor = 8
	scoreCeil  = 18
)

// Score applies the stat-class scoring rule to one stat's answers.
//
// Stats calibrated by an objective measurement (strength, constitution) can
// never score below their part1 value; behavioral evidence only raises it.
// Self-report/behavior blends (intelligence, wisdom) average the two parts.
// Everything else is a clamped tally.
func Score(stat model.Stat, ans Answers) int {
	p1 := sum(ans.Part1)
	p2 := sum(ans.Part2)

	switch stat {
	case model.StatStrength, model.StatConstitution:
		if p1 > part2Base+p2 {
			return p1
		}
		return part2Base + p2
	case model.StatIntelligence, model.StatWisdom:
		return int(math.Round(float64(p1+p2) / 2))
	default:
		return clamp(p1+p2, scoreFloor, scoreCeil)
	}
}

// ScoreAll scores every stat and assembles the initial CharacterStats.
// Each stat must have a registered question set, and each answer list must
// fit the question set selected by version.
func ScoreAll(answers AnswerSet, version Version) (model.CharacterStats, error) {
	var stats model.CharacterStats
	for _, stat := range model.AllStats {
		qs, err := Questions(stat, version)
		if err != nil {
			return model.CharacterStats{}, err
		}
		ans := answers[stat]
		if len(ans.Part1) != 1 {
			return model.CharacterStats{}, fmt.Errorf("%w: %s part1 wants 1 selection, got %d",
				ErrAnswerCount, stat, len(ans.Part1))
		}
		if len(ans.Part2) > len(qs.Part2) {
			return model.CharacterStats{}, fmt.Errorf("%w: %s part2 has %d questions, got %d answers",
				ErrAnswerCount, stat, len(qs.Part2), len(ans.Part2))
		}
		stats.Add(stat, Score(stat, ans))
	}
	return stats, nil
}

func sum(vals []int) int {
	total := 0
	for _, v := range vals {
		total += v
	}
	return total
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
