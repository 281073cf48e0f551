package mapper

import (
	httpEntity "github.com/evandrarf/mathplay-be/internal/delivery/http/entity"
	"github.com/evandrarf/mathplay-be/internal/entity"
)

func ToScoreResponse(r entity.ScoreRecord) httpEntity.ScoreResponse {
	return httpEntity.ScoreResponse{
		ID:         r.ID,
		Date:       r.Date,
		Topic:      r.Topic,
		Score:      r.Score,
		Difficulty: r.Difficulty,
	}
}

func ToScoreResponses(records []entity.ScoreRecord) []httpEntity.ScoreResponse {
	out := make([]httpEntity.ScoreResponse, 0, len(records))
	for _, r := range records {
		out = append(out, ToScoreResponse(r))
	}
	return out
}

func ToTopicResponses(records []entity.TopicRecord) []httpEntity.TopicResponse {
	out := make([]httpEntity.TopicResponse, 0, len(records))
	for _, r := range records {
		out = append(out, httpEntity.TopicResponse{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Position:    r.Position,
		})
	}
	return out
}
