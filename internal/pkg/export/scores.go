package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/evandrarf/mathplay-be/internal/entity"
	"github.com/xuri/excelize/v2"
)

const (
	ScoresSheet  = "Scores"
	SummarySheet = "Summary"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	scoresHeader  = []interface{}{"ID", "Date", "Topic", "Difficulty", "Score", "Answered", "Correct"}
	summaryHeader = []interface{}{"Topic", "Games", "Total Score", "Best Score"}
)

// ScoresWorkbook lays out every score on one sheet and a per-topic summary
// on a second one. The caller closes the returned file.
func ScoresWorkbook(records []entity.ScoreRecord) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", ScoresSheet); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeRow(f, ScoresSheet, 1, scoresHeader); err != nil {
		f.Close()
		return nil, err
	}
	for i, r := range records {
		row := []interface{}{
			r.ID,
			r.Date.UTC().Format("2006-01-02 15:04:05"),
			r.Topic,
			r.Difficulty,
			r.Score,
			r.Answered,
			r.Correct,
		}
		if err := writeRow(f, ScoresSheet, i+2, row); err != nil {
			f.Close()
			return nil, err
		}
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeRow(f, SummarySheet, 1, summaryHeader); err != nil {
		f.Close()
		return nil, err
	}
	for i, s := range summarize(records) {
		if err := writeRow(f, SummarySheet, i+2, []interface{}{s.topic, s.games, s.total, s.best}); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

// WriteScores streams the workbook as xlsx.
func WriteScores(w io.Writer, records []entity.ScoreRecord) error {
	f, err := ScoresWorkbook(records)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

type topicSummary struct {
	topic string
	games int
	total int
	best  int
}

func summarize(records []entity.ScoreRecord) []topicSummary {
	byTopic := map[string]*topicSummary{}
	for _, r := range records {
		s, ok := byTopic[r.Topic]
		if !ok {
			s = &topicSummary{topic: r.Topic}
			byTopic[r.Topic] = s
		}
		s.games++
		s.total += r.Score
		if r.Score > s.best {
			s.best = r.Score
		}
	}

	out := make([]topicSummary, 0, len(byTopic))
	for _, s := range byTopic {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].topic < out[j].topic })
	return out
}
