package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	curveapi "github.com/kilianp07/macc/api/curvehttp"
	measuresapi "github.com/kilianp07/macc/api/measures"
	"github.com/kilianp07/macc/config"
	"github.com/kilianp07/macc/core/catalog"
	"github.com/kilianp07/macc/core/measure"
	coremetrics "github.com/kilianp07/macc/core/metrics"
	coremon "github.com/kilianp07/macc/core/monitoring"
	"github.com/kilianp07/macc/infra/logger"
	"github.com/kilianp07/macc/infra/metrics"
	"github.com/kilianp07/macc/infra/monitoring"
	"github.com/kilianp07/macc/infra/store"
)

// Service wires catalogs, the computation engine, persistence and the
// HTTP API together from configuration.
type Service struct {
	Engine   measure.Engine
	Catalogs catalog.Resolved
	Store    measure.Store
	Sink     coremetrics.ComputeSink

	cfg *config.Config
	log logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	mon, err := monitoring.NewSentryMonitor(cfg.Sentry)
	if err != nil {
		return nil, fmt.Errorf("sentry: %w", err)
	}
	coremon.Init(mon)

	set, err := cfg.Catalogs.LoadCatalogs()
	if err != nil {
		return nil, fmt.Errorf("catalogs: %w", err)
	}

	st, err := newStore(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}

	var sinks []coremetrics.ComputeSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(
			cfg.Metrics.InfluxURL, cfg.Metrics.InfluxToken, cfg.Metrics.InfluxOrg, cfg.Metrics.InfluxBucket))
	}
	var sink coremetrics.ComputeSink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = coremetrics.NewMultiSink(sinks...)
	}

	return &Service{
		Engine: measure.Engine{
			Years:     cfg.Model.Years,
			BaseYear:  cfg.Model.BaseYear,
			UnitScale: cfg.Model.UnitScale,
		},
		Catalogs: set.Index(),
		Store:    st,
		Sink:     sink,
		cfg:      cfg,
		log:      logg,
	}, nil
}

func newStore(cfg config.StorageConfig) (measure.Store, error) {
	if cfg.Backend == "memory" {
		return store.NewMemoryStore(), nil
	}
	return store.NewSQLiteStore(cfg.Path)
}

// Mux returns the HTTP API routes.
func (s *Service) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/measures/compute", measuresapi.NewComputeHandler(
		s.Engine, s.Catalogs, s.Store, s.Sink, s.cfg.Model.DiscountRate(), s.cfg.Model.CarbonPrice, s.log))
	mux.Handle("/api/measures", measuresapi.NewListHandler(s.Store))
	mux.Handle("/api/measures/", measuresapi.NewDeleteHandler(s.Store))
	mux.Handle("/api/curve", curveapi.NewHandler(s.Store, s.Sink, s.cfg.Model.CarbonPrice, s.log))
	return mux
}

// Run serves the HTTP API until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	srv := &http.Server{Addr: s.cfg.API.Addr, Handler: s.Mux()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	s.log.Infof("api listening on %s", s.cfg.API.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	coremon.Flush(2 * time.Second)
	return s.Store.Close()
}
