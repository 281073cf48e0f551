package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	httpEntity "github.com/evandrarf/mathplay-be/internal/delivery/http/entity"
	"github.com/evandrarf/mathplay-be/internal/pkg/llm"
)

var errNoLLM = errors.New("llm not configured")

var encouragementSchema = &llm.Schema{
	Name: "progress-encouragement",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{"type": "string", "minLength": 1},
			"tips": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"maxItems": 5,
			},
		},
		"required": []string{"message", "tips"},
	},
}

func (u *scoreUsecase) encouragement(ctx context.Context, report *httpEntity.ProgressReport) (string, []string, error) {
	if u.cfg.LLM == nil {
		return "", nil, errNoLLM
	}

	text, err := u.cfg.LLM.GenerateText(ctx, encouragementPrompt(report))
	if err != nil {
		return "", nil, err
	}

	var out struct {
		Message string   `json:"message"`
		Tips    []string `json:"tips"`
	}
	if err := llm.DecodeJSON(text, encouragementSchema, &out); err != nil {
		return "", nil, err
	}
	return out.Message, out.Tips, nil
}

func encouragementPrompt(report *httpEntity.ProgressReport) string {
	var b strings.Builder
	b.WriteString("You are a friendly math coach for young children (ages 4-8).\n")
	fmt.Fprintf(&b, "Games played: %d\nTotal score: %d\nBest single game: %d\n\n", report.TotalGames, report.TotalScore, report.BestScore)
	b.WriteString("Per topic:\n")
	for _, t := range report.Topics {
		fmt.Fprintf(&b, "- %s: %d games, best %d, average %.1f\n", t.Topic, t.Games, t.BestScore, t.AverageScore)
	}
	b.WriteString(`
Write one short, warm encouragement message (max 2 sentences) and up to 3 simple tips
about which topic to practice next. Use simple words a parent can read aloud.

Return JSON only: {"message":"...","tips":["..."]}`)
	return b.String()
}

func fallbackEncouragement(report *httpEntity.ProgressReport) (string, []string) {
	if report.TotalGames == 0 {
		return "Ready to play? Pick a topic and start your first game!",
			[]string{"Counting is a great place to start."}
	}

	message := fmt.Sprintf("Great job! You played %d games and scored %d points.", report.TotalGames, report.TotalScore)
	tips := []string{}

	var weakest *httpEntity.TopicProgress
	for i := range report.Topics {
		t := &report.Topics[i]
		if weakest == nil || t.AverageScore < weakest.AverageScore {
			weakest = t
		}
	}
	if weakest != nil && len(report.Topics) > 1 {
		tips = append(tips, fmt.Sprintf("Try a few more rounds of %s.", weakest.Topic))
	}
	if len(report.Topics) < 7 {
		tips = append(tips, "Explore a topic you have not played yet.")
	}
	return message, tips
}
