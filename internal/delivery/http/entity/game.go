package entity

import (
	"time"

	"github.com/evandrarf/mathplay-be/internal/game"
)

type StartGameRequest struct {
	Topic      string `json:"topic" validate:"required"`
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

type SubmitAnswerRequest struct {
	Answer *game.Answer `json:"answer" validate:"required"`
}

type TapRequest struct {
	Index *int `json:"index" validate:"required,min=0"`
}

type ChangeDifficultyRequest struct {
	Difficulty string `json:"difficulty" validate:"required,oneof=easy medium hard"`
}

type ChangeTopicRequest struct {
	Topic string `json:"topic" validate:"required"`
}

// GenerateQuestionsRequest - GET /questions/generate query
type GenerateQuestionsRequest struct {
	Topic         string `query:"topic" validate:"required"`
	Difficulty    string `query:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Count         int    `query:"count" validate:"omitempty,min=1,max=10"`
	IncludeAnswer bool   `query:"includeAnswer"`
}

type QuestionResponse struct {
	Topic      string        `json:"topic"`
	Difficulty string        `json:"difficulty"`
	Prompt     string        `json:"prompt"`
	Visual     game.Visual   `json:"visual"`
	RenderMode string        `json:"render_mode"`
	Options    []game.Answer `json:"options"`
	Answer     *game.Answer  `json:"answer,omitempty"` // only revealed with feedback or includeAnswer
}

type GameStateResponse struct {
	ID          string           `json:"id"`
	Topic       string           `json:"topic"`
	Difficulty  string           `json:"difficulty"`
	Question    QuestionResponse `json:"question"`
	Score       int              `json:"score"`
	Streak      int              `json:"streak"`
	Feedback    *string          `json:"feedback"` // null, "correct" or "incorrect"
	Locked      bool             `json:"locked"`
	Celebrating bool             `json:"celebrating"`
	Cue         string           `json:"cue,omitempty"`
	Taps        []int            `json:"taps"`
	Answered    int              `json:"answered"`
	Correct     int              `json:"correct"`
	StartedAt   time.Time        `json:"started_at"`
}

type SubmitAnswerResponse struct {
	Accepted bool              `json:"accepted"`
	Correct  bool              `json:"correct"`
	State    GameStateResponse `json:"state"`
}

type GameSummaryResponse struct {
	ID         string `json:"id"`
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	Score      int    `json:"score"`
	Answered   int    `json:"answered"`
	Correct    int    `json:"correct"`
	ScoreSaved bool   `json:"score_saved"` // save is queued, not confirmed
}

type TopicResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Position    int    `json:"position"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
