package quiz

import (
	"testing"

	"github.com/statforge/habitquest/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestions_AllStatsRegistered(t *testing.T) {
	for _, stat := range model.AllStats {
		qs, err := Questions(stat, VersionLong)
		require.NoError(t, err, stat)
		assert.NotEmpty(t, qs.Part1.Options, stat)
		assert.NotEmpty(t, qs.Part2, stat)
	}
}

func TestQuestions_UnknownStat(t *testing.T) {
	_, err := Questions(model.Stat("luck"), VersionLong)
	assert.ErrorIs(t, err, ErrNoQuestionSet)
}

func TestQuestions_ShortHalvesPart2(t *testing.T) {
	long, err := Questions(model.StatStrength, VersionLong)
	require.NoError(t, err)
	short, err := Questions(model.StatStrength, VersionShort)
	require.NoError(t, err)

	assert.Len(t, short.Part2, len(long.Part2)/2)
	// Part1 is shared between both versions.
	assert.Equal(t, long.Part1, short.Part1)
	// Short keeps a prefix of the long list, not an arbitrary subset.
	assert.Equal(t, long.Part2[:len(short.Part2)], short.Part2)
}

func TestScore_StrengthCalibrationWins(t *testing.T) {
	// part1 = 14, three yes answers worth +1, +1, +2: part2 score is
	// 8+1+1+2 = 12, so the calibration value wins.
	got := Score(model.StatStrength, Answers{
		Part1: []int{14},
		Part2: []int{1, 1, 2},
	})
	assert.Equal(t, 14, got)
}

func TestScore_StrengthEvidenceRaises(t *testing.T) {
	got := Score(model.StatStrength, Answers{
		Part1: []int{9},
		Part2: []int{1, 1, 2, 2, 1},
	})
	assert.Equal(t, 15, got) // 8+7 beats the part1 value of 9
}

func TestScore_ConstitutionNeverBelowCalibration(t *testing.T) {
	got := Score(model.StatConstitution, Answers{
		Part1: []int{16},
		Part2: []int{-2, -1, -1},
	})
	assert.Equal(t, 16, got)
}

func TestScore_IntelligenceAverages(t *testing.T) {
	got := Score(model.StatIntelligence, Answers{
		Part1: []int{14},
		Part2: []int{2, 1, 1},
	})
	// round((14 + 4) / 2) = 9
	assert.Equal(t, 9, got)
}

func TestScore_WisdomRoundsHalfUp(t *testing.T) {
	got := Score(model.StatWisdom, Answers{
		Part1: []int{12},
		Part2: []int{1, 2},
	})
	// round(15/2) = round(7.5) = 8
	assert.Equal(t, 8, got)
}

func TestScore_DexterityClamped(t *testing.T) {
	low := Score(model.StatDexterity, Answers{Part1: []int{8}, Part2: []int{-1, -1}})
	assert.Equal(t, 8, low)

	high := Score(model.StatDexterity, Answers{Part1: []int{18}, Part2: []int{2, 2, 2}})
	assert.Equal(t, 18, high)
}

func TestScore_CharismaWithinBounds(t *testing.T) {
	for _, p1 := range []int{8, 12, 18} {
		for _, p2 := range [][]int{{}, {-1, -1}, {1, 2, 2, 1}} {
			got := Score(model.StatCharisma, Answers{Part1: []int{p1}, Part2: p2})
			assert.GreaterOrEqual(t, got, 8)
			assert.LessOrEqual(t, got, 18)
		}
	}
}

func validAnswers() AnswerSet {
	ans := AnswerSet{}
	for _, stat := range model.AllStats {
		ans[stat] = Answers{Part1: []int{12}, Part2: []int{1, 1}}
	}
	return ans
}

func TestScoreAll_CompleteStats(t *testing.T) {
	stats, err := ScoreAll(validAnswers(), VersionLong)
	require.NoError(t, err)

	for _, stat := range model.AllStats {
		assert.NotZero(t, stats.Get(stat), stat)
	}
	assert.Equal(t, 12, stats.Strength) // max(12, 8+2)
	assert.Equal(t, 14, stats.Dexterity)
	assert.Equal(t, 7, stats.Intelligence) // round(14/2)
}

func TestScoreAll_MissingPart1(t *testing.T) {
	ans := validAnswers()
	ans[model.StatWisdom] = Answers{Part2: []int{1}}
	_, err := ScoreAll(ans, VersionLong)
	assert.ErrorIs(t, err, ErrAnswerCount)
}

func TestScoreAll_TooManyPart2ForShortVersion(t *testing.T) {
	ans := validAnswers()
	// 8 answers cannot fit the 5-question short dexterity list.
	ans[model.StatDexterity] = Answers{Part1: []int{12}, Part2: []int{1, 1, 1, 1, 1, 1, 1, 1}}
	_, err := ScoreAll(ans, VersionShort)
	assert.ErrorIs(t, err, ErrAnswerCount)

	// The same answers fit the long version.
	_, err = ScoreAll(ans, VersionLong)
	assert.NoError(t, err)
}

func TestScoreAll_Deterministic(t *testing.T) {
	a, err := ScoreAll(validAnswers(), VersionLong)
	require.NoError(t, err)
	b, err := ScoreAll(validAnswers(), VersionLong)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
