package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	httpEntity "github.com/evandrarf/mathplay-be/internal/delivery/http/entity"
	"github.com/evandrarf/mathplay-be/internal/delivery/http/repository"
	"github.com/evandrarf/mathplay-be/internal/entity"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type FeedbackUsecase interface {
	SaveFeedback(ctx context.Context, req httpEntity.FeedbackRequest) (*entity.FeedbackRecord, error)
	SaveCartoonFeedback(ctx context.Context, req httpEntity.CartoonFeedbackRequest) (*entity.CartoonFeedbackRecord, error)
}

type FeedbackConfig struct {
	DB         *gorm.DB
	Repository repository.FeedbackRepository
	Log        *logrus.Logger
	Now        func() time.Time
}

type feedbackUsecase struct {
	cfg FeedbackConfig
}

func NewFeedbackUsecase(cfg FeedbackConfig) FeedbackUsecase {
	if cfg.Log == nil {
		cfg.Log = logrus.New()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &feedbackUsecase{cfg: cfg}
}

func (u *feedbackUsecase) SaveFeedback(ctx context.Context, req httpEntity.FeedbackRequest) (*entity.FeedbackRecord, error) {
	kind := strings.TrimSpace(req.Type)
	if kind == "" {
		kind = "general"
	}

	record := &entity.FeedbackRecord{
		Date:    u.cfg.Now().UTC(),
		Type:    kind,
		Message: strings.TrimSpace(req.Message),
		Rating:  strings.TrimSpace(req.Rating),
	}
	if err := u.cfg.Repository.CreateFeedback(u.db(ctx), record); err != nil {
		return nil, fmt.Errorf("failed to save feedback: %w", err)
	}

	u.cfg.Log.WithFields(logrus.Fields{"type": record.Type, "rating": record.Rating}).Info("feedback received")
	return record, nil
}

func (u *feedbackUsecase) SaveCartoonFeedback(ctx context.Context, req httpEntity.CartoonFeedbackRequest) (*entity.CartoonFeedbackRecord, error) {
	record := &entity.CartoonFeedbackRecord{
		Date:               u.cfg.Now().UTC(),
		ChildName:          strings.TrimSpace(req.ChildName),
		Age:                strings.TrimSpace(req.Age),
		Learning:           req.Learning,
		EasyToUse:          req.EasyToUse,
		LikedVisuals:       req.LikedFeatures.Visuals,
		LikedCards:         req.LikedFeatures.Cards,
		LikedCelebrations:  req.LikedFeatures.Celebrations,
		AdditionalFeedback: strings.TrimSpace(req.AdditionalFeedback),
	}
	if err := u.cfg.Repository.CreateCartoonFeedback(u.db(ctx), record); err != nil {
		return nil, fmt.Errorf("failed to save cartoon feedback: %w", err)
	}
	return record, nil
}

func (u *feedbackUsecase) db(ctx context.Context) *gorm.DB {
	if u.cfg.DB == nil {
		return nil
	}
	return u.cfg.DB.WithContext(ctx)
}
