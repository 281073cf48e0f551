package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeFor(t *testing.T) {
	cases := []struct {
		topic      Topic
		difficulty Difficulty
		want       Range
	}{
		{TopicCounting, DifficultyEasy, Range{Max: 5}},
		{TopicCounting, DifficultyMedium, Range{Max: 8}},
		{TopicCounting, DifficultyHard, Range{Max: 12}},
		{TopicAddition, DifficultyMedium, Range{Max: 10}},
		{TopicSubtraction, DifficultyHard, Range{Max: 20}},
		{TopicComparison, DifficultyEasy, Range{Max: 5}},
		{TopicMultiplication, DifficultyEasy, Range{Max: 3}},
		{TopicDivision, DifficultyHard, Range{Max: 9}},
		{TopicSequence, DifficultyEasy, Range{Max: 10, SecondaryMax: 2}},
		{TopicSequence, DifficultyMedium, Range{Max: 10, SecondaryMax: 4}},
		{TopicSequence, DifficultyHard, Range{Max: 20, SecondaryMax: 6}},
		{Topic("geometry"), DifficultyHard, Range{}},
	}

	for _, tc := range cases {
		t.Run(string(tc.topic)+"/"+string(tc.difficulty), func(t *testing.T) {
			assert.Equal(t, tc.want, RangeFor(tc.topic, tc.difficulty))
		})
	}
}

func TestRangeForUnknownDifficultyIsEasy(t *testing.T) {
	assert.Equal(t, RangeFor(TopicAddition, DifficultyEasy), RangeFor(TopicAddition, Difficulty("expert")))
}

func TestParseDifficulty(t *testing.T) {
	assert.Equal(t, DifficultyHard, ParseDifficulty("HARD"))
	assert.Equal(t, DifficultyMedium, ParseDifficulty(" medium "))
	assert.Equal(t, DifficultyEasy, ParseDifficulty("impossible"))
	assert.Equal(t, DifficultyEasy, ParseDifficulty(""))
}

func TestParseTopic(t *testing.T) {
	topic, ok := ParseTopic(" Division ")
	assert.True(t, ok)
	assert.Equal(t, TopicDivision, topic)

	_, ok = ParseTopic("geometry")
	assert.False(t, ok)
}
