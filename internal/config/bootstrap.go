package config

import (
	"context"

	"github.com/evandrarf/mathplay-be/internal/delivery/http/handler"
	"github.com/evandrarf/mathplay-be/internal/delivery/http/middleware"
	"github.com/evandrarf/mathplay-be/internal/delivery/http/repository"
	"github.com/evandrarf/mathplay-be/internal/delivery/http/route"
	"github.com/evandrarf/mathplay-be/internal/delivery/http/usecase"
	"github.com/evandrarf/mathplay-be/internal/pkg/llm"
	"github.com/evandrarf/mathplay-be/internal/pkg/metrics"
	"github.com/evandrarf/mathplay-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type BootstrapConfig struct {
	Api       *fiber.App
	Config    *viper.Viper
	DB        *gorm.DB
	Log       *logrus.Logger
	Validator *validate.Validator
	Metrics   *metrics.Metrics
}

// Services exposes what the server loop drives outside of HTTP requests.
type Services struct {
	Game usecase.GameUsecase
}

func Bootstrap(config *BootstrapConfig) *Services {
	if config.Metrics == nil {
		config.Metrics = metrics.New()
	}

	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:    config.Log,
		Config: config.Config,
	})

	llmClient, err := llm.New(context.Background(), llm.Config{
		Provider: config.Config.GetString("llm.provider"),
		APIKey:   config.Config.GetString("llm.api_key"),
		Model:    config.Config.GetString("llm.model"),
		BaseURL:  config.Config.GetString("llm.base_url"),
		Disable:  config.Config.GetBool("llm.disable"),
	})
	if err != nil {
		config.Log.Warnf("LLM disabled: %v", err)
		llmClient = nil
	}
	if llmClient == nil {
		config.Log.Info("Progress reports use built-in encouragement")
	}

	scoreRepo := repository.NewScoreRepository(config.DB)
	topicRepo := repository.NewTopicRepository(config.DB)
	feedbackRepo := repository.NewFeedbackRepository(config.DB)

	scoreUsecase := usecase.NewScoreUsecase(usecase.ScoreConfig{
		DB:         config.DB,
		Repository: scoreRepo,
		LLM:        llmClient,
		Log:        config.Log,
		Metrics:    config.Metrics,
	})
	gameUsecase := usecase.NewGameUsecase(usecase.GameConfig{
		DB:              config.DB,
		TopicRepository: topicRepo,
		Recorder:        scoreUsecase,
		Log:             config.Log,
		Metrics:         config.Metrics,
		CorrectDelay:    config.Config.GetDuration("game.correct_delay"),
		IncorrectDelay:  config.Config.GetDuration("game.incorrect_delay"),
		SessionTTL:      config.Config.GetDuration("game.session_ttl"),
		PersistRetries:  config.Config.GetInt("persist.retries"),
	})
	feedbackUsecase := usecase.NewFeedbackUsecase(usecase.FeedbackConfig{
		DB:         config.DB,
		Repository: feedbackRepo,
		Log:        config.Log,
	})

	route.Setup(&route.RouteConfig{
		Api:             config.Api,
		Middleware:      mid,
		Metrics:         config.Metrics,
		GameHandler:     handler.NewGameHandler(config.Validator, config.Log, gameUsecase),
		ScoreHandler:    handler.NewScoreHandler(config.Validator, config.Log, scoreUsecase),
		FeedbackHandler: handler.NewFeedbackHandler(config.Validator, config.Log, feedbackUsecase),
	})

	return &Services{Game: gameUsecase}
}
