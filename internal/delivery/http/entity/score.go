package entity

import "time"

type SaveScoreRequest struct {
	Topic      string `json:"topic" validate:"required"`
	Score      *int   `json:"score" validate:"required,min=0"`
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

type ListScoresRequest struct {
	Topic string `query:"topic"`
}

type ScoreResponse struct {
	ID         uint      `json:"id"`
	Date       time.Time `json:"date"`
	Topic      string    `json:"topic"`
	Score      int       `json:"score"`
	Difficulty string    `json:"difficulty,omitempty"`
}

type TopicProgress struct {
	Topic        string     `json:"topic"`
	Games        int        `json:"games"`
	TotalScore   int        `json:"total_score"`
	BestScore    int        `json:"best_score"`
	AverageScore float64    `json:"average_score"`
	LastPlayed   *time.Time `json:"last_played,omitempty"`
}

type ProgressReport struct {
	TotalGames    int             `json:"total_games"`
	TotalScore    int             `json:"total_score"`
	BestScore     int             `json:"best_score"`
	FavoriteTopic string          `json:"favorite_topic,omitempty"`
	Topics        []TopicProgress `json:"topics"`
	Encouragement string          `json:"encouragement"`
	Tips          []string        `json:"tips"`
	GeneratedBy   string          `json:"generated_by"` // llm, fallback
}
