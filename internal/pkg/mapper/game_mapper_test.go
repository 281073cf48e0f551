package mapper

import (
	"encoding/json"
	"testing"

	"github.com/evandrarf/mathplay-be/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGameStateResponseHidesAnswerUntilFeedback(t *testing.T) {
	q := game.NewGenerator(game.NewSource(1)).Generate(game.TopicAddition, game.DifficultyEasy)
	state := game.State{ID: "g1", Topic: game.TopicAddition, Difficulty: game.DifficultyEasy, Question: q}

	idle := ToGameStateResponse(state)
	assert.Nil(t, idle.Question.Answer)
	assert.Nil(t, idle.Feedback)
	assert.False(t, idle.Locked)
	assert.Equal(t, []int{}, idle.Taps)

	state.Feedback = game.FeedbackIncorrect
	locked := ToGameStateResponse(state)
	require.NotNil(t, locked.Question.Answer)
	assert.Equal(t, q.Answer, *locked.Question.Answer)
	require.NotNil(t, locked.Feedback)
	assert.Equal(t, "incorrect", *locked.Feedback)
	assert.True(t, locked.Locked)
}

func TestQuestionResponseJSON(t *testing.T) {
	q := game.NewGenerator(game.NewSource(1)).Generate(game.TopicComparison, game.DifficultyEasy)

	out, err := json.Marshal(ToQuestionResponse(q, true))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, []any{">", "<", "="}, decoded["options"])
	assert.Equal(t, "plain", decoded["render_mode"])
	assert.Contains(t, []any{">", "<", "="}, decoded["answer"])
}

func TestToGameSummaryResponse(t *testing.T) {
	res := ToGameSummaryResponse(game.Summary{ID: "g1", Topic: game.TopicDivision, Score: 0})
	assert.False(t, res.ScoreSaved)

	res = ToGameSummaryResponse(game.Summary{ID: "g1", Topic: game.TopicDivision, Score: 20})
	assert.True(t, res.ScoreSaved)
	assert.Equal(t, "division", res.Topic)
}
