package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mathplay"

// Metrics holds the service counters. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	registry *prometheus.Registry

	SessionsStarted prometheus.Counter
	SessionsActive  prometheus.Gauge
	SessionsExpired prometheus.Counter
	Answers         *prometheus.CounterVec
	QuestionsServed *prometheus.CounterVec
	ScoresSaved     prometheus.Counter
	PersistFailures prometheus.Counter
	ReportFallbacks prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		SessionsStarted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_started_total",
			Help:      "Game sessions started.",
		}),
		SessionsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Game sessions currently open.",
		}),
		SessionsExpired: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_expired_total",
			Help:      "Game sessions closed by the idle janitor.",
		}),
		Answers: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "answers_total",
			Help:      "Accepted answer submissions by topic and result.",
		}, []string{"topic", "result"}),
		QuestionsServed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "questions_generated_total",
			Help:      "Questions returned by the stateless generator.",
		}, []string{"topic"}),
		ScoresSaved: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scores_saved_total",
			Help:      "Score records written.",
		}),
		PersistFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persist_failures_total",
			Help:      "Session scores that could not be saved after all retries.",
		}),
		ReportFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_fallbacks_total",
			Help:      "Progress reports that used the built-in encouragement text.",
		}),
	}
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) SessionStarted() {
	if m == nil {
		return
	}
	m.SessionsStarted.Inc()
	m.SessionsActive.Inc()
}

func (m *Metrics) SessionEnded(expired bool) {
	if m == nil {
		return
	}
	m.SessionsActive.Dec()
	if expired {
		m.SessionsExpired.Inc()
	}
}

func (m *Metrics) AnswerRecorded(topic string, correct bool) {
	if m == nil {
		return
	}
	result := "incorrect"
	if correct {
		result = "correct"
	}
	m.Answers.WithLabelValues(topic, result).Inc()
}

func (m *Metrics) QuestionGenerated(topic string) {
	if m == nil {
		return
	}
	m.QuestionsServed.WithLabelValues(topic).Inc()
}

func (m *Metrics) ScoreSaved() {
	if m == nil {
		return
	}
	m.ScoresSaved.Inc()
}

func (m *Metrics) PersistFailed() {
	if m == nil {
		return
	}
	m.PersistFailures.Inc()
}

func (m *Metrics) ReportFallback() {
	if m == nil {
		return
	}
	m.ReportFallbacks.Inc()
}
