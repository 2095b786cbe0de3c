package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/ib-77/outbound/internal/config"
	"github.com/ib-77/outbound/internal/observability"
	"github.com/ib-77/outbound/internal/service"
	"github.com/ib-77/outbound/internal/transport/httpapi"
	"github.com/ib-77/outbound/pkg/outbound"
	"github.com/ib-77/outbound/pkg/rop/chain"
)

const shutdownTimeout = 5 * time.Second

// App wires application components.
type App struct {
	cfg      config.Config
	log      zerolog.Logger
	registry *prometheus.Registry
	store    *outbound.Store
	svc      *service.Service
}

// New builds the store, metrics and service from cfg. Logs go to logOut.
func New(ctx context.Context, cfg config.Config, logOut io.Writer, name string) (*App, error) {
	log := observability.NewLogger(observability.LoggerConfig{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: name,
		Out:     logOut,
	})

	store, err := loadStore(ctx, cfg.FixturesFile, log)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("shipments", store.Len()).Str("fixtures", cfg.FixturesFile).Msg("store loaded")

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetricsWithRegistry(registry)

	return &App{
		cfg:      cfg,
		log:      log,
		registry: registry,
		store:    store,
		svc:      service.New(outbound.NewCanceller(store), log, metrics),
	}, nil
}

func (a *App) Service() *service.Service {
	return a.svc
}

func (a *App) Logger() zerolog.Logger {
	return a.log
}

// Handler returns the HTTP routes served by Run.
func (a *App) Handler() http.Handler {
	return httpapi.NewRouter(httpapi.NewHandler(a.svc, a.log), a.registry)
}

// Run serves HTTP until ctx is done, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{Addr: a.cfg.HTTP.Addr, Handler: a.Handler()}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", a.cfg.HTTP.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// WriteMetrics dumps the registry to the configured text file, if any.
func (a *App) WriteMetrics() error {
	if a.cfg.MetricsTextfile == "" {
		return nil
	}
	return prometheus.WriteToTextfile(a.cfg.MetricsTextfile, a.registry)
}

func loadStore(ctx context.Context, path string, log zerolog.Logger) (*outbound.Store, error) {
	if path == "" {
		return outbound.NewStore(outbound.DemoShipments()...)
	}

	read := chain.ThenTry(chain.FromValue(ctx, path), func(_ context.Context, p string) (io.Reader, error) {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("open fixtures: %w", err)
		}
		return bytes.NewReader(data), nil
	})
	loaded := chain.Then(read, outbound.LoadFixtures).
		Ensure(func(_ context.Context, shipments []outbound.Shipment) {
			log.Info().Str("fixtures", path).Int("shipments", len(shipments)).Msg("fixtures loaded")
		})
	store := chain.ThenTry(loaded, func(_ context.Context, shipments []outbound.Shipment) (*outbound.Store, error) {
		return outbound.NewStore(shipments...)
	})

	s, err := store.Result().Get()
	if err != nil {
		return nil, fmt.Errorf("load fixtures %s: %w", path, err)
	}
	return s, nil
}
