package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	registry     *prometheus.Registry
	messages     *prometheus.CounterVec
	unauthorized prometheus.Counter
	actions      *prometheus.CounterVec
	latency      prometheus.Histogram
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	f := promauto.With(reg)
	return &metrics{
		registry: reg,
		messages: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mpa_messages_total",
			Help: "Messages answered, by intent.",
		}, []string{"intent"}),
		unauthorized: f.NewCounter(prometheus.CounterOpts{
			Name: "mpa_unauthorized_total",
			Help: "Messages rejected because the caller is not the registered user.",
		}),
		actions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mpa_actions_total",
			Help: "Action codes emitted, by kind.",
		}, []string{"kind"}),
		latency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "mpa_message_duration_seconds",
			Help:    "Time to answer a message, side effects included.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
