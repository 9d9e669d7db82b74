package metrics

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/kilianp07/macc/core/curve"
	"github.com/kilianp07/macc/core/measure"
	coremetrics "github.com/kilianp07/macc/core/metrics"
	"github.com/kilianp07/macc/infra/logger"
)

// InfluxSink exports per-year measure series and curve summaries to an
// InfluxDB instance using the official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a sink for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns a
// NopSink if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.ComputeSink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordComputation writes one point per modeled year of the measure.
func (s *InfluxSink) RecordComputation(m measure.Measure, _ time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, y := range m.Details.PerYear {
		p := write.NewPointWithMeasurement("measure_year").
			AddTag("measure_id", m.ID).
			AddTag("name", m.Name).
			AddTag("sector", m.Sector).
			AddField("direct_tons", round3(y.DirectTons)).
			AddField("net_cost", round3(y.NetCost)).
			AddField("cashflow_no_cp", round3(y.CashflowNoCP)).
			AddField("cashflow_with_cp", round3(y.CashflowWithCP)).
			SetTime(time.Date(y.Year, time.January, 1, 0, 0, 0, 0, time.UTC))
		if err := s.writeAPI.WritePoint(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// RecordCurve writes the curve summary as a single point.
func (s *InfluxSink) RecordCurve(c curve.Curve) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("macc_curve").
		AddTag("mode", string(c.Mode)).
		AddField("segments", len(c.Segments)).
		AddField("total_abatement", round3(c.TotalAbatement)).
		SetTime(time.Now().UTC())
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() { s.client.Close() }

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
