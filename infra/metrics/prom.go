package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kilianp07/macc/core/curve"
	"github.com/kilianp07/macc/core/measure"
	coremetrics "github.com/kilianp07/macc/core/metrics"
)

// PromSink exposes computation and curve counters via Prometheus.
type PromSink struct {
	computations *prometheus.CounterVec
	duration     prometheus.Histogram
	curves       prometheus.Counter
	abatement    prometheus.Gauge
}

// NewPromSink registers metrics on the default registerer.
func NewPromSink() (coremetrics.ComputeSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.ComputeSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	computations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "measure_computations_total",
		Help: "Total number of measure computations",
	}, []string{"sector", "mode"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "measure_computation_duration_seconds",
		Help:    "Time spent evaluating a measure draft",
		Buckets: prometheus.DefBuckets,
	})
	curves := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "curve_builds_total",
		Help: "Total number of curve constructions",
	})
	abatement := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "curve_total_abatement",
		Help: "Total abatement of the most recent curve, in axis units",
	})

	if err := reg.Register(computations); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			computations = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(curves); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			curves = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(abatement); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			abatement = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	return &PromSink{computations: computations, duration: duration, curves: curves, abatement: abatement}, nil
}

// RecordComputation counts a computation and its duration.
func (s *PromSink) RecordComputation(m measure.Measure, elapsed time.Duration) error {
	s.computations.WithLabelValues(m.Sector, m.Details.Mode).Inc()
	s.duration.Observe(elapsed.Seconds())
	return nil
}

// RecordCurve counts a curve build and tracks its total abatement.
func (s *PromSink) RecordCurve(c curve.Curve) error {
	s.curves.Inc()
	s.abatement.Set(c.TotalAbatement)
	return nil
}

// StartPromServer starts an HTTP server exposing Prometheus metrics on
// the given address. The server runs until the context is canceled.
// A dedicated ServeMux is used to avoid interfering with other handlers.
func StartPromServer(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
