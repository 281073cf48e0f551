package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	httpEntity "github.com/evandrarf/mathplay-be/internal/delivery/http/entity"
	"github.com/evandrarf/mathplay-be/internal/delivery/http/repository"
	"github.com/evandrarf/mathplay-be/internal/entity"
	"github.com/evandrarf/mathplay-be/internal/pkg/export"
	"github.com/evandrarf/mathplay-be/internal/pkg/llm"
	"github.com/evandrarf/mathplay-be/internal/pkg/metrics"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ScoreInput is what a finished game reports to storage.
type ScoreInput struct {
	SessionID  string
	Topic      string
	Difficulty string
	Score      int
	Answered   int
	Correct    int
}

// ScoreRecorder is the storage collaborator for finished games.
type ScoreRecorder interface {
	AppendScore(ctx context.Context, in ScoreInput) (uint, error)
}

type ScoreUsecase interface {
	ScoreRecorder
	SaveScore(ctx context.Context, req httpEntity.SaveScoreRequest) (*entity.ScoreRecord, error)
	ListScores(ctx context.Context, topic string) ([]entity.ScoreRecord, error)
	ExportScores(ctx context.Context, w io.Writer) error
	Report(ctx context.Context) (*httpEntity.ProgressReport, error)
}

type ScoreConfig struct {
	DB         *gorm.DB
	Repository repository.ScoreRepository
	LLM        llm.Client
	Log        *logrus.Logger
	Metrics    *metrics.Metrics
	Now        func() time.Time
}

type scoreUsecase struct {
	cfg ScoreConfig
}

func NewScoreUsecase(cfg ScoreConfig) ScoreUsecase {
	if cfg.Log == nil {
		cfg.Log = logrus.New()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &scoreUsecase{cfg: cfg}
}

func (u *scoreUsecase) AppendScore(ctx context.Context, in ScoreInput) (uint, error) {
	record := &entity.ScoreRecord{
		Date:       u.cfg.Now().UTC(),
		Topic:      in.Topic,
		Score:      in.Score,
		Difficulty: in.Difficulty,
		SessionID:  in.SessionID,
		Answered:   in.Answered,
		Correct:    in.Correct,
	}
	if err := u.cfg.Repository.Create(u.db(ctx), record); err != nil {
		return 0, fmt.Errorf("failed to save score: %w", err)
	}
	u.cfg.Metrics.ScoreSaved()
	return record.ID, nil
}

func (u *scoreUsecase) SaveScore(ctx context.Context, req httpEntity.SaveScoreRequest) (*entity.ScoreRecord, error) {
	record := &entity.ScoreRecord{
		Date:       u.cfg.Now().UTC(),
		Topic:      strings.TrimSpace(req.Topic),
		Score:      *req.Score,
		Difficulty: req.Difficulty,
	}
	if err := u.cfg.Repository.Create(u.db(ctx), record); err != nil {
		return nil, fmt.Errorf("failed to save score: %w", err)
	}
	u.cfg.Metrics.ScoreSaved()
	return record, nil
}

func (u *scoreUsecase) ListScores(ctx context.Context, topic string) ([]entity.ScoreRecord, error) {
	scores, err := u.cfg.Repository.FindAll(u.db(ctx), strings.TrimSpace(topic))
	if err != nil {
		return nil, fmt.Errorf("failed to read scores: %w", err)
	}
	return scores, nil
}

func (u *scoreUsecase) ExportScores(ctx context.Context, w io.Writer) error {
	scores, err := u.ListScores(ctx, "")
	if err != nil {
		return err
	}
	return export.WriteScores(w, scores)
}

func (u *scoreUsecase) Report(ctx context.Context) (*httpEntity.ProgressReport, error) {
	scores, err := u.ListScores(ctx, "")
	if err != nil {
		return nil, err
	}

	report := buildProgress(scores)
	text, tips, err := u.encouragement(ctx, report)
	if err != nil {
		u.cfg.Metrics.ReportFallback()
		if u.cfg.LLM != nil {
			u.cfg.Log.WithError(err).Warn("llm encouragement failed, using fallback")
		}
		report.Encouragement, report.Tips = fallbackEncouragement(report)
		report.GeneratedBy = "fallback"
		return report, nil
	}

	report.Encouragement = text
	report.Tips = tips
	report.GeneratedBy = "llm"
	return report, nil
}

func (u *scoreUsecase) db(ctx context.Context) *gorm.DB {
	if u.cfg.DB == nil {
		return nil
	}
	return u.cfg.DB.WithContext(ctx)
}

func buildProgress(scores []entity.ScoreRecord) *httpEntity.ProgressReport {
	report := &httpEntity.ProgressReport{Topics: []httpEntity.TopicProgress{}, Tips: []string{}}
	byTopic := map[string]*httpEntity.TopicProgress{}

	for _, s := range scores {
		report.TotalGames++
		report.TotalScore += s.Score
		if s.Score > report.BestScore {
			report.BestScore = s.Score
		}

		p, ok := byTopic[s.Topic]
		if !ok {
			p = &httpEntity.TopicProgress{Topic: s.Topic}
			byTopic[s.Topic] = p
		}
		p.Games++
		p.TotalScore += s.Score
		if s.Score > p.BestScore {
			p.BestScore = s.Score
		}
		if p.LastPlayed == nil || s.Date.After(*p.LastPlayed) {
			date := s.Date
			p.LastPlayed = &date
		}
	}

	for _, p := range byTopic {
		p.AverageScore = float64(p.TotalScore) / float64(p.Games)
		report.Topics = append(report.Topics, *p)
	}
	sort.Slice(report.Topics, func(i, j int) bool {
		a, b := report.Topics[i], report.Topics[j]
		if a.Games != b.Games {
			return a.Games > b.Games
		}
		return a.Topic < b.Topic
	})
	if len(report.Topics) > 0 {
		report.FavoriteTopic = report.Topics[0].Topic
	}
	return report
}
