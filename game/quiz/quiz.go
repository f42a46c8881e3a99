// Package quiz converts onboarding questionnaire answers into the initial
// CharacterStats block. Scoring is a pure function of the answer record and
// the quiz-version selector; a missing question set is a configuration error
// and always propagates.
package quiz

import (
	"errors"
	"fmt"

	"github.com/statforge/habitquest/model"
)

// Version selects the abbreviated or full part2 question list.
type Version string

const (
	VersionShort Version = "short"
	VersionLong  Version = "long"
)

// Valid reports whether v is a known quiz version.
func (v Version) Valid() bool {
	return v == VersionShort || v == VersionLong
}

// ErrNoQuestionSet is returned when a stat has no registered question set.
var ErrNoQuestionSet = errors.New("quiz: no question set for stat")

// ErrAnswerCount is returned when an answer list does not fit the question
// set selected by the version.
var ErrAnswerCount = errors.New("quiz: answer count does not match question set")

// Option is one selectable part1 calibration choice.
type Option struct {
	Value int    `json:"value"`
	Text  string `json:"text"`
}

// Calibration is the single-choice part1 question.
type Calibration struct {
	Text        string   `json:"text"`
	Description string   `json:"description,omitempty"`
	Options     []Option `json:"options"`
}

// Question is one part2 yes/no question with a signed point delta.
type Question struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// QuestionSet is the full questionnaire for one stat.
type QuestionSet struct {
	Part1 Calibration `json:"part1"`
	Part2 []Question  `json:"part2"`
}

// Answers holds the selected point values for one stat: part1 has exactly
// one element (the chosen option's value), part2 one element per answered
// yes question (that question's delta).
type Answers struct {
	Part1 []int `json:"part1"`
	Part2 []int `json:"part2"`
}

// AnswerSet maps each stat to its answers.
type AnswerSet map[model.Stat]Answers

// Questions returns the question set for a stat under the given version.
// Short mode keeps part1 and the first floor(len(part2)/2) part2 questions.
func Questions(stat model.Stat, version Version) (QuestionSet, error) {
	qs, ok := questionSets[stat]
	if !ok {
		return QuestionSet{}, fmt.Errorf("%w: %s", ErrNoQuestionSet, stat)
	}
	if version == VersionShort {
		return QuestionSet{
			Part1: qs.Part1,
			Part2: qs.Part2[:len(qs.Part2)/2],
		}, nil
	}
	return qs, nil
}
