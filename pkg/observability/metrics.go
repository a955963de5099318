package observability

import (
	"context"
	"fmt"

	"github.com/aretw0/ppda/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by engine hooks.
type Metrics struct {
	Steps       *prometheus.CounterVec
	Accepts     *prometheus.CounterVec
	Generations *prometheus.CounterVec
	Length      *prometheus.HistogramVec
	Duration    *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ppda_steps_total",
				Help: "Total number of executed transitions",
			},
			[]string{"model"},
		),
		Accepts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ppda_accepts_total",
				Help: "Total number of scored strings, by whether the weight was zero",
			},
			[]string{"model", "result"},
		),
		Generations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ppda_generations_total",
				Help: "Total number of generations, by outcome",
			},
			[]string{"model", "outcome"},
		),
		Length: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ppda_generated_length",
				Help:    "Length in symbols of generated strings",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"model"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ppda_generate_duration_seconds",
				Help:    "Duration of single generations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"model"},
		),
	}

	for _, c := range []prometheus.Collector{m.Steps, m.Accepts, m.Generations, m.Length, m.Duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			m.Steps.WithLabelValues(e.Model).Inc()
		},
		OnAccept: func(ctx context.Context, e *domain.AcceptEvent) {
			result := "positive"
			if e.Zero {
				result = "zero"
			}
			m.Accepts.WithLabelValues(e.Model, result).Inc()
		},
		OnGenerate: func(ctx context.Context, e *domain.GenerateEvent) {
			if e.Err != nil {
				m.Generations.WithLabelValues(e.Model, "error").Inc()
				return
			}
			m.Generations.WithLabelValues(e.Model, "ok").Inc()
			m.Duration.WithLabelValues(e.Model).Observe(e.Duration.Seconds())
			if e.Sample != nil {
				m.Length.WithLabelValues(e.Model).Observe(float64(len(e.Sample.Symbols)))
			}
		},
	}
}
