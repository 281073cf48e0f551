package mapper

import (
	httpEntity "github.com/evandrarf/mathplay-be/internal/delivery/http/entity"
	"github.com/evandrarf/mathplay-be/internal/game"
)

func ToQuestionResponse(q game.Question, includeAnswer bool) httpEntity.QuestionResponse {
	res := httpEntity.QuestionResponse{
		Topic:      string(q.Topic),
		Difficulty: string(q.Difficulty),
		Prompt:     q.Prompt,
		Visual:     q.Visual,
		RenderMode: string(q.RenderMode),
		Options:    q.Options,
	}
	if res.Options == nil {
		res.Options = []game.Answer{}
	}
	if includeAnswer {
		answer := q.Answer
		res.Answer = &answer
	}
	return res
}

func ToQuestionResponses(questions []game.Question, includeAnswer bool) []httpEntity.QuestionResponse {
	out := make([]httpEntity.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, ToQuestionResponse(q, includeAnswer))
	}
	return out
}

// ToGameStateResponse hides the answer until feedback is showing.
func ToGameStateResponse(s game.State) httpEntity.GameStateResponse {
	var feedback *string
	if s.Feedback != game.FeedbackNone {
		f := string(s.Feedback)
		feedback = &f
	}

	taps := s.Taps
	if taps == nil {
		taps = []int{}
	}

	return httpEntity.GameStateResponse{
		ID:          s.ID,
		Topic:       string(s.Topic),
		Difficulty:  string(s.Difficulty),
		Question:    ToQuestionResponse(s.Question, s.Locked()),
		Score:       s.Score,
		Streak:      s.Streak,
		Feedback:    feedback,
		Locked:      s.Locked(),
		Celebrating: s.Celebrating,
		Cue:         s.Cue,
		Taps:        taps,
		Answered:    s.Answered,
		Correct:     s.Correct,
		StartedAt:   s.StartedAt,
	}
}

func ToSubmitAnswerResponse(r game.Result) httpEntity.SubmitAnswerResponse {
	return httpEntity.SubmitAnswerResponse{
		Accepted: r.Accepted,
		Correct:  r.Correct,
		State:    ToGameStateResponse(r.State),
	}
}

func ToGameSummaryResponse(s game.Summary) httpEntity.GameSummaryResponse {
	return httpEntity.GameSummaryResponse{
		ID:         s.ID,
		Topic:      string(s.Topic),
		Difficulty: string(s.Difficulty),
		Score:      s.Score,
		Answered:   s.Answered,
		Correct:    s.Correct,
		ScoreSaved: s.Score > 0,
	}
}
