package game

import "strings"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ParseDifficulty never fails: anything unrecognized is easy.
func ParseDifficulty(s string) Difficulty {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return DifficultyEasy
	}
	return d
}

// Range bounds the draws for one topic at one difficulty. SecondaryMax is
// only used by topics that draw two independent quantities (sequence step).
type Range struct {
	Max          int
	SecondaryMax int
}

// RangeFor is the difficulty policy. Unknown topics get the zero Range.
func RangeFor(topic Topic, difficulty Difficulty) Range {
	if !difficulty.Valid() {
		difficulty = DifficultyEasy
	}

	switch topic {
	case TopicCounting:
		return Range{Max: pick(difficulty, 5, 8, 12)}
	case TopicAddition, TopicSubtraction, TopicComparison:
		return Range{Max: pick(difficulty, 5, 10, 20)}
	case TopicMultiplication, TopicDivision:
		return Range{Max: pick(difficulty, 3, 6, 9)}
	case TopicSequence:
		return Range{
			Max:          pick(difficulty, 10, 10, 20),
			SecondaryMax: pick(difficulty, 2, 4, 6),
		}
	}
	return Range{}
}

func pick(d Difficulty, easy, medium, hard int) int {
	switch d {
	case DifficultyMedium:
		return medium
	case DifficultyHard:
		return hard
	default:
		return easy
	}
}
