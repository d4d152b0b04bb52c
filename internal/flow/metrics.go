package flow

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics структура для метрик Prometheus
type Metrics struct {
	UpdatesProcessed       *prometheus.CounterVec
	ErrorsTotal            prometheus.Counter
	UnknownTokens          prometheus.Counter
	ConversationsCompleted prometheus.Counter
	QuestionsReceived      prometheus.Counter
	UpdateProcessingTime   prometheus.Histogram
}

// NewMetrics создает новые метрики
func NewMetrics() *Metrics {
	return &Metrics{
		UpdatesProcessed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "counseling_bot_updates_total",
			Help: "Total number of processed updates",
		}, []string{"kind"}),

		ErrorsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "counseling_bot_errors_total",
			Help: "Total number of handler errors",
		}),

		UnknownTokens: promauto.NewCounter(prometheus.CounterOpts{
			Name: "counseling_bot_unknown_tokens_total",
			Help: "Total number of button tokens with no route",
		}),

		ConversationsCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "counseling_bot_conversations_completed_total",
			Help: "Total number of conversations that reached the final state",
		}),

		QuestionsReceived: promauto.NewCounter(prometheus.CounterOpts{
			Name: "counseling_bot_questions_total",
			Help: "Total number of anonymous questions received",
		}),

		UpdateProcessingTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "counseling_bot_update_processing_time_seconds",
			Help:    "Time spent processing updates",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
