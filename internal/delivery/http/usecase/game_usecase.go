package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/evandrarf/mathplay-be/internal/delivery/http/repository"
	"github.com/evandrarf/mathplay-be/internal/entity"
	"github.com/evandrarf/mathplay-be/internal/game"
	"github.com/evandrarf/mathplay-be/internal/pkg/metrics"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSessionNotFound = errors.New("game session not found")
	ErrTopicNotFound   = errors.New("topic not found")
)

const (
	DefaultSessionTTL     = 30 * time.Minute
	DefaultPersistRetries = 2
	DefaultPersistBackoff = 200 * time.Millisecond
	MaxGenerateCount      = 10
)

type GameUsecase interface {
	Topics(ctx context.Context) ([]entity.TopicRecord, error)
	Generate(topic game.Topic, difficulty game.Difficulty, count int) []game.Question

	Start(ctx context.Context, topic string, difficulty game.Difficulty) (game.State, error)
	Get(id string) (game.State, error)
	Submit(id string, answer game.Answer) (game.Result, error)
	Tap(id string, index int) (game.State, error)
	SetDifficulty(id string, difficulty game.Difficulty) (game.State, error)
	SetTopic(ctx context.Context, id string, topic string) (game.State, error)
	End(id string) (game.Summary, error)

	Sweep(now time.Time) int
	RunJanitor(ctx context.Context, interval time.Duration)
	Shutdown(ctx context.Context) error
}

type GameConfig struct {
	DB              *gorm.DB
	TopicRepository repository.TopicRepository
	Recorder        ScoreRecorder
	Log             *logrus.Logger
	Metrics         *metrics.Metrics

	Clock          game.Clock
	NewSource      func() game.Source
	Now            func() time.Time
	CorrectDelay   time.Duration
	IncorrectDelay time.Duration
	SessionTTL     time.Duration
	PersistRetries int
	PersistBackoff time.Duration
}

type gameUsecase struct {
	cfg       GameConfig
	generator *game.Generator

	mu       sync.Mutex
	sessions map[string]*game.Session

	// pending tracks fire-and-forget score saves
	pending sync.WaitGroup
}

func NewGameUsecase(cfg GameConfig) GameUsecase {
	if cfg.Log == nil {
		cfg.Log = logrus.New()
	}
	if cfg.Clock == nil {
		cfg.Clock = game.SystemClock{}
	}
	if cfg.NewSource == nil {
		cfg.NewSource = func() game.Source { return game.NewTimeSource() }
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}
	if cfg.PersistRetries < 0 {
		cfg.PersistRetries = 0
	}
	if cfg.PersistBackoff <= 0 {
		cfg.PersistBackoff = DefaultPersistBackoff
	}

	return &gameUsecase{
		cfg:       cfg,
		generator: game.NewGenerator(game.NewLockedSource(cfg.NewSource())),
		sessions:  map[string]*game.Session{},
	}
}

func (u *gameUsecase) Topics(ctx context.Context) ([]entity.TopicRecord, error) {
	topics, err := u.cfg.TopicRepository.FindAll(u.db(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	return topics, nil
}

// Generate is the stateless generator; unknown topics yield sentinel questions.
func (u *gameUsecase) Generate(topic game.Topic, difficulty game.Difficulty, count int) []game.Question {
	if count <= 0 {
		count = 1
	}
	if count > MaxGenerateCount {
		count = MaxGenerateCount
	}

	questions := make([]game.Question, 0, count)
	for i := 0; i < count; i++ {
		questions = append(questions, u.generator.Generate(topic, difficulty))
	}
	u.cfg.Metrics.QuestionGenerated(string(topic))
	return questions
}

func (u *gameUsecase) Start(ctx context.Context, topic string, difficulty game.Difficulty) (game.State, error) {
	t, err := u.resolveTopic(ctx, topic)
	if err != nil {
		return game.State{}, err
	}

	id := uuid.NewString()
	session := game.NewSession(game.SessionConfig{
		ID:             id,
		Topic:          t,
		Difficulty:     difficulty,
		Source:         u.cfg.NewSource(),
		Clock:          u.cfg.Clock,
		Cue:            u.logCue(id),
		CorrectDelay:   u.cfg.CorrectDelay,
		IncorrectDelay: u.cfg.IncorrectDelay,
		Now:            u.cfg.Now,
	})

	u.mu.Lock()
	u.sessions[id] = session
	u.mu.Unlock()

	u.cfg.Metrics.SessionStarted()
	u.cfg.Log.WithFields(logrus.Fields{
		"session":    id,
		"topic":      t,
		"difficulty": difficulty,
	}).Info("game started")

	return session.State(), nil
}

func (u *gameUsecase) Get(id string) (game.State, error) {
	session, err := u.session(id)
	if err != nil {
		return game.State{}, err
	}
	return session.State(), nil
}

func (u *gameUsecase) Submit(id string, answer game.Answer) (game.Result, error) {
	session, err := u.session(id)
	if err != nil {
		return game.Result{}, err
	}

	res := session.Submit(answer)
	if res.Accepted {
		u.cfg.Metrics.AnswerRecorded(string(res.State.Topic), res.Correct)
	}
	return res, nil
}

func (u *gameUsecase) Tap(id string, index int) (game.State, error) {
	session, err := u.session(id)
	if err != nil {
		return game.State{}, err
	}
	return session.Tap(index)
}

func (u *gameUsecase) SetDifficulty(id string, difficulty game.Difficulty) (game.State, error) {
	session, err := u.session(id)
	if err != nil {
		return game.State{}, err
	}
	return session.SetDifficulty(difficulty)
}

func (u *gameUsecase) SetTopic(ctx context.Context, id string, topic string) (game.State, error) {
	session, err := u.session(id)
	if err != nil {
		return game.State{}, err
	}
	t, err := u.resolveTopic(ctx, topic)
	if err != nil {
		return game.State{}, err
	}
	return session.SetTopic(t)
}

// End closes the session and queues its score for saving. The call does
// not wait for the save.
func (u *gameUsecase) End(id string) (game.Summary, error) {
	u.mu.Lock()
	session, ok := u.sessions[id]
	delete(u.sessions, id)
	u.mu.Unlock()
	if !ok {
		return game.Summary{}, ErrSessionNotFound
	}

	return u.finish(session, false), nil
}

// Sweep closes every session idle for longer than the TTL and returns how
// many were closed.
func (u *gameUsecase) Sweep(now time.Time) int {
	var expired []*game.Session

	u.mu.Lock()
	for id, session := range u.sessions {
		if now.Sub(session.LastActive()) > u.cfg.SessionTTL {
			expired = append(expired, session)
			delete(u.sessions, id)
		}
	}
	u.mu.Unlock()

	for _, session := range expired {
		u.finish(session, true)
	}
	if len(expired) > 0 {
		u.cfg.Log.WithField("count", len(expired)).Info("closed idle game sessions")
	}
	return len(expired)
}

func (u *gameUsecase) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			u.Sweep(u.cfg.Now())
		}
	}
}

// Shutdown ends every open session and waits for queued score saves.
func (u *gameUsecase) Shutdown(ctx context.Context) error {
	u.mu.Lock()
	open := make([]*game.Session, 0, len(u.sessions))
	for id, session := range u.sessions {
		open = append(open, session)
		delete(u.sessions, id)
	}
	u.mu.Unlock()

	for _, session := range open {
		u.finish(session, false)
	}

	done := make(chan struct{})
	go func() {
		u.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for score saves: %w", ctx.Err())
	}
}

func (u *gameUsecase) finish(session *game.Session, expired bool) game.Summary {
	summary, closed := session.Close()
	if !closed {
		return summary
	}
	u.cfg.Metrics.SessionEnded(expired)

	u.cfg.Log.WithFields(logrus.Fields{
		"session": summary.ID,
		"topic":   summary.Topic,
		"score":   summary.Score,
		"expired": expired,
	}).Info("game ended")

	if summary.Score > 0 && u.cfg.Recorder != nil {
		u.pending.Add(1)
		go func() {
			defer u.pending.Done()
			u.persist(summary)
		}()
	}
	return summary
}

func (u *gameUsecase) persist(summary game.Summary) {
	input := ScoreInput{
		SessionID:  summary.ID,
		Topic:      string(summary.Topic),
		Difficulty: string(summary.Difficulty),
		Score:      summary.Score,
		Answered:   summary.Answered,
		Correct:    summary.Correct,
	}

	var err error
	backoff := u.cfg.PersistBackoff
	for attempt := 0; attempt <= u.cfg.PersistRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(backoff)
			backoff *= 2
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, err = u.cfg.Recorder.AppendScore(ctx, input)
		cancel()
		if err == nil {
			return
		}
	}

	u.cfg.Metrics.PersistFailed()
	u.cfg.Log.WithFields(logrus.Fields{
		"session": summary.ID,
		"topic":   summary.Topic,
		"score":   summary.Score,
	}).WithError(err).Error("failed to save session score")
}

func (u *gameUsecase) session(id string) (*game.Session, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	session, ok := u.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (u *gameUsecase) resolveTopic(ctx context.Context, topic string) (game.Topic, error) {
	t, ok := game.ParseTopic(topic)
	if !ok {
		return "", ErrTopicNotFound
	}
	if u.cfg.TopicRepository == nil {
		return t, nil
	}

	_, err := u.cfg.TopicRepository.FindByID(u.db(ctx), string(t))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrTopicNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up topic: %w", err)
	}
	return t, nil
}

func (u *gameUsecase) db(ctx context.Context) *gorm.DB {
	if u.cfg.DB == nil {
		return nil
	}
	return u.cfg.DB.WithContext(ctx)
}

func (u *gameUsecase) logCue(id string) game.SpeechCue {
	return game.CueFunc(func(text string) {
		u.cfg.Log.WithField("session", id).Debugf("speech cue: %s", text)
	})
}
