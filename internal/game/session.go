package game

import (
	"errors"
	"sort"
	"sync"
	"time"
)

// Feedback is the transient result banner shown after a submission.
type Feedback string

const (
	FeedbackNone      Feedback = ""
	FeedbackCorrect   Feedback = "correct"
	FeedbackIncorrect Feedback = "incorrect"
)

const (
	ScoreIncrement = 10

	DefaultCorrectDelay   = 2 * time.Second
	DefaultIncorrectDelay = 1 * time.Second
)

var (
	ErrSessionClosed  = errors.New("game session is closed")
	ErrLocked         = errors.New("game session is showing feedback")
	ErrNotInteractive = errors.New("current question has no tappable marks")
	ErrMarkOutOfRange = errors.New("mark index out of range")
)

type SessionConfig struct {
	ID         string
	Topic      Topic
	Difficulty Difficulty

	Source         Source
	Clock          Clock
	Cue            SpeechCue
	CorrectDelay   time.Duration
	IncorrectDelay time.Duration
	Now            func() time.Time
}

// State is a snapshot of a session. It shares nothing with the session.
type State struct {
	ID          string
	Topic       Topic
	Difficulty  Difficulty
	Question    Question
	Score       int
	Streak      int
	Feedback    Feedback
	Celebrating bool
	Cue         string
	Taps        []int
	Answered    int
	Correct     int
	StartedAt   time.Time
	Closed      bool
}

// Locked reports whether submissions are currently ignored.
func (s State) Locked() bool {
	return s.Feedback != FeedbackNone
}

type Result struct {
	Accepted bool
	Correct  bool
	State    State
}

// Summary is what gets reported when a session ends.
type Summary struct {
	ID         string
	Topic      Topic
	Difficulty Difficulty
	Score      int
	Answered   int
	Correct    int
}

// Session is the per-game state machine: Idle, then Locked while feedback
// is displayed, then Idle again once the feedback timer fires. All methods
// are safe for concurrent use.
type Session struct {
	mu sync.Mutex

	id         string
	topic      Topic
	difficulty Difficulty

	gen            *Generator
	clock          Clock
	cue            SpeechCue
	correctDelay   time.Duration
	incorrectDelay time.Duration
	now            func() time.Time

	question    Question
	score       int
	streak      int
	answered    int
	correct     int
	feedback    Feedback
	celebrating bool
	lastCue     string
	taps        map[int]bool

	// epoch invalidates timers scheduled before the last state reset.
	epoch   uint64
	pending CancelToken

	closed     bool
	startedAt  time.Time
	lastActive time.Time
}

func NewSession(cfg SessionConfig) *Session {
	if !cfg.Difficulty.Valid() {
		cfg.Difficulty = DifficultyEasy
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	if cfg.Cue == nil {
		cfg.Cue = NopCue{}
	}
	if cfg.CorrectDelay <= 0 {
		cfg.CorrectDelay = DefaultCorrectDelay
	}
	if cfg.IncorrectDelay <= 0 {
		cfg.IncorrectDelay = DefaultIncorrectDelay
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	s := &Session{
		id:             cfg.ID,
		topic:          cfg.Topic,
		difficulty:     cfg.Difficulty,
		gen:            NewGenerator(cfg.Source),
		clock:          cfg.Clock,
		cue:            cfg.Cue,
		correctDelay:   cfg.CorrectDelay,
		incorrectDelay: cfg.IncorrectDelay,
		now:            cfg.Now,
		taps:           map[int]bool{},
	}
	s.startedAt = s.now()
	s.lastActive = s.startedAt
	s.question = s.gen.Generate(s.topic, s.difficulty)
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.snapshot()
}

func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Submit evaluates an answer. While feedback is showing, after Close, or
// on the unknown-topic question the call is ignored and Accepted is false.
func (s *Session) Submit(answer Answer) Result {
	s.mu.Lock()
	if s.closed || s.feedback != FeedbackNone || s.question.IsSentinel() {
		res := Result{State: s.snapshot()}
		s.mu.Unlock()
		return res
	}
	s.touch()
	s.answered++

	var cue string
	correct := answer == s.question.Answer
	if correct {
		s.score += ScoreIncrement
		s.streak++
		s.correct++
		s.feedback = FeedbackCorrect
		s.celebrating = true
		cue = CueCorrect
		s.schedule(s.correctDelay, func() {
			s.clearFeedback()
			s.question = s.gen.Generate(s.topic, s.difficulty)
			s.taps = map[int]bool{}
		})
	} else {
		s.streak = 0
		s.feedback = FeedbackIncorrect
		cue = CueIncorrect
		s.schedule(s.incorrectDelay, s.clearFeedback)
	}
	s.lastCue = cue
	res := Result{Accepted: true, Correct: correct, State: s.snapshot()}
	s.mu.Unlock()

	s.cue.Say(cue)
	return res
}

// SetDifficulty switches difficulty and draws a new question right away.
// Setting the current difficulty again changes nothing.
func (s *Session) SetDifficulty(d Difficulty) (State, error) {
	if !d.Valid() {
		d = DifficultyEasy
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return s.snapshot(), ErrSessionClosed
	}
	s.touch()
	if d != s.difficulty {
		s.difficulty = d
		s.reset()
	}
	return s.snapshot(), nil
}

// SetTopic switches topic and draws a new question right away. Score and
// streak carry over.
func (s *Session) SetTopic(t Topic) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return s.snapshot(), ErrSessionClosed
	}
	s.touch()
	if t != s.topic {
		s.topic = t
		s.reset()
	}
	return s.snapshot(), nil
}

// Tap toggles one mark of a line-stop question.
func (s *Session) Tap(index int) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.closed:
		return s.snapshot(), ErrSessionClosed
	case s.feedback != FeedbackNone:
		return s.snapshot(), ErrLocked
	case !s.question.RenderMode.LineStop():
		return s.snapshot(), ErrNotInteractive
	case index < 0 || index >= s.question.Visual.Marks():
		return s.snapshot(), ErrMarkOutOfRange
	}
	s.touch()
	if s.taps[index] {
		delete(s.taps, index)
	} else {
		s.taps[index] = true
	}
	return s.snapshot(), nil
}

// Close stops the session and cancels any pending feedback timer. The
// second return value is false if the session was already closed.
func (s *Session) Close() (Summary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return s.summary(), false
	}
	s.closed = true
	s.invalidate()
	return s.summary(), true
}

// schedule runs fn under the session lock after d, unless the session was
// reset or closed in the meantime. Callers hold s.mu.
func (s *Session) schedule(d time.Duration, fn func()) {
	s.invalidate()
	epoch := s.epoch
	s.pending = s.clock.After(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed || s.epoch != epoch {
			return
		}
		s.pending = nil
		fn()
	})
}

func (s *Session) invalidate() {
	s.epoch++
	if s.pending != nil {
		s.pending.Cancel()
		s.pending = nil
	}
}

func (s *Session) reset() {
	s.invalidate()
	s.clearFeedback()
	s.question = s.gen.Generate(s.topic, s.difficulty)
	s.taps = map[int]bool{}
}

func (s *Session) clearFeedback() {
	s.feedback = FeedbackNone
	s.celebrating = false
	s.lastCue = ""
}

func (s *Session) touch() {
	s.lastActive = s.now()
}

func (s *Session) snapshot() State {
	taps := make([]int, 0, len(s.taps))
	for i := range s.taps {
		taps = append(taps, i)
	}
	sort.Ints(taps)

	return State{
		ID:          s.id,
		Topic:       s.topic,
		Difficulty:  s.difficulty,
		Question:    s.question.Clone(),
		Score:       s.score,
		Streak:      s.streak,
		Feedback:    s.feedback,
		Celebrating: s.celebrating,
		Cue:         s.lastCue,
		Taps:        taps,
		Answered:    s.answered,
		Correct:     s.correct,
		StartedAt:   s.startedAt,
		Closed:      s.closed,
	}
}

func (s *Session) summary() Summary {
	return Summary{
		ID:         s.id,
		Topic:      s.topic,
		Difficulty: s.difficulty,
		Score:      s.score,
		Answered:   s.answered,
		Correct:    s.correct,
	}
}
