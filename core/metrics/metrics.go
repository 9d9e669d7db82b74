package metrics

import (
	"time"

	"github.com/kilianp07/macc/core/curve"
	"github.com/kilianp07/macc/core/measure"
)

// Config enables and addresses the available sinks.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusPort    string `json:"prometheus_port"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}

// ComputeSink records engine and curve activity. Implementations must be
// safe for concurrent use; the engine itself never touches a sink.
type ComputeSink interface {
	RecordComputation(m measure.Measure, elapsed time.Duration) error
	RecordCurve(c curve.Curve) error
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) RecordComputation(measure.Measure, time.Duration) error { return nil }
func (NopSink) RecordCurve(curve.Curve) error                          { return nil }

// MultiSink fans events out to several sinks, returning the first error.
type MultiSink []ComputeSink

// NewMultiSink combines sinks into one.
func NewMultiSink(sinks ...ComputeSink) MultiSink { return MultiSink(sinks) }

func (m MultiSink) RecordComputation(rec measure.Measure, elapsed time.Duration) error {
	for _, s := range m {
		if err := s.RecordComputation(rec, elapsed); err != nil {
			return err
		}
	}
	return nil
}

func (m MultiSink) RecordCurve(c curve.Curve) error {
	for _, s := range m {
		if err := s.RecordCurve(c); err != nil {
			return err
		}
	}
	return nil
}
