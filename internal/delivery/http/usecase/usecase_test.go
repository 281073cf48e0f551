package usecase

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/evandrarf/mathplay-be/database"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.SeedTopics(db, quietLogger()))
	return db
}

// fakeRecorder fails the first `failures` calls.
type fakeRecorder struct {
	mu       sync.Mutex
	failures int
	calls    int
	saved    []ScoreInput
}

func (f *fakeRecorder) AppendScore(_ context.Context, in ScoreInput) (uint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.calls <= f.failures {
		return 0, errors.New("database is locked")
	}
	f.saved = append(f.saved, in)
	return uint(len(f.saved)), nil
}

func (f *fakeRecorder) Saved() []ScoreInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ScoreInput(nil), f.saved...)
}

func (f *fakeRecorder) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeLLM returns a canned reply.
type fakeLLM struct {
	text   string
	err    error
	prompt string
}

func (f *fakeLLM) GenerateText(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.text, f.err
}
