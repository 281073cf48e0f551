package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/evandrarf/mathplay-be/database"
	"github.com/evandrarf/mathplay-be/internal/config"
	"github.com/evandrarf/mathplay-be/internal/delivery/http/handler"
	"github.com/evandrarf/mathplay-be/internal/delivery/http/middleware"
	"github.com/evandrarf/mathplay-be/internal/delivery/http/repository"
	"github.com/evandrarf/mathplay-be/internal/delivery/http/route"
	"github.com/evandrarf/mathplay-be/internal/delivery/http/usecase"
	"github.com/evandrarf/mathplay-be/internal/game"
	"github.com/evandrarf/mathplay-be/internal/pkg/metrics"
	"github.com/evandrarf/mathplay-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
	Data    json.RawMessage `json:"data"`
	Meta    json.RawMessage `json:"meta"`
}

type testServer struct {
	app   *fiber.App
	db    *gorm.DB
	clock *game.ManualClock
	game  usecase.GameUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.SeedTopics(db, log))

	s := &testServer{
		app:   fiber.New(fiber.Config{ErrorHandler: config.ErrorHandler(log)}),
		db:    db,
		clock: game.NewManualClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)),
	}

	m := metrics.New()
	validator := validate.NewValidator()

	scores := usecase.NewScoreUsecase(usecase.ScoreConfig{
		DB:         db,
		Repository: repository.NewScoreRepository(db),
		Log:        log,
		Metrics:    m,
		Now:        s.clock.Now,
	})
	seed := int64(10)
	s.game = usecase.NewGameUsecase(usecase.GameConfig{
		DB:              db,
		TopicRepository: repository.NewTopicRepository(db),
		Recorder:        scores,
		Log:             log,
		Metrics:         m,
		Clock:           s.clock,
		NewSource: func() game.Source {
			seed++
			return game.NewSource(seed)
		},
		Now:            s.clock.Now,
		PersistBackoff: time.Millisecond,
	})
	feedback := usecase.NewFeedbackUsecase(usecase.FeedbackConfig{
		DB:         db,
		Repository: repository.NewFeedbackRepository(db),
		Log:        log,
		Now:        s.clock.Now,
	})

	route.Setup(&route.RouteConfig{
		Api:             s.app,
		Middleware:      middleware.NewMiddleware(nil),
		Metrics:         m,
		GameHandler:     handler.NewGameHandler(validator, log, s.game),
		ScoreHandler:    handler.NewScoreHandler(validator, log, scores),
		FeedbackHandler: handler.NewFeedbackHandler(validator, log, feedback),
	})
	return s
}

func (s *testServer) do(t *testing.T, method, path string, body any) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	res, err := s.app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	res.Body.Close()

	var env envelope
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &env))
	}
	return res, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}
