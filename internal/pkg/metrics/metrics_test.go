package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCounters(t *testing.T) {
	m := New()

	m.SessionStarted()
	m.SessionStarted()
	m.SessionEnded(true)
	m.AnswerRecorded("addition", true)
	m.AnswerRecorded("addition", false)
	m.AnswerRecorded("addition", true)
	m.PersistFailed()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SessionsStarted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SessionsActive))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SessionsExpired))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Answers.WithLabelValues("addition", "correct")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Answers.WithLabelValues("addition", "incorrect")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PersistFailures))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.SessionStarted()
		m.SessionEnded(false)
		m.AnswerRecorded("counting", true)
		m.QuestionGenerated("counting")
		m.ScoreSaved()
		m.PersistFailed()
		m.ReportFallback()
	})
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New()
	m.ScoreSaved()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "mathplay_scores_saved_total 1")
}
