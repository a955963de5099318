package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/ppda"
	"github.com/aretw0/ppda/internal/config"
	"github.com/aretw0/ppda/pkg/adapters/memory"
	"github.com/aretw0/ppda/pkg/adapters/redis"
	"github.com/aretw0/ppda/pkg/automaton"
	"github.com/aretw0/ppda/pkg/catalog"
	"github.com/aretw0/ppda/pkg/observability"
	"github.com/aretw0/ppda/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// Environment bundles everything a command needs: the workspace of
// engines, the store behind it, the metrics registry and the logger.
type Environment struct {
	Config    config.Config
	Logger    *slog.Logger
	Metrics   *prometheus.Registry
	Store     ports.SampleStore
	Workspace *ppda.Workspace

	closers []func() error
}

// NewEnvironment wires an Environment from cfg using the built-in catalog.
func NewEnvironment(cfg config.Config, logger *slog.Logger) (*Environment, error) {
	return NewEnvironmentWithRegistry(cfg, logger, catalog.Default())
}

// NewEnvironmentWithRegistry is NewEnvironment over a custom model registry.
func NewEnvironmentWithRegistry(cfg config.Config, logger *slog.Logger, registry *catalog.Registry) (*Environment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	env := &Environment{
		Config:  cfg,
		Logger:  logger,
		Metrics: prometheus.NewRegistry(),
	}

	store, err := env.createStore(cfg.Store)
	if err != nil {
		return nil, err
	}
	env.Store = store

	metrics, err := observability.NewMetrics(env.Metrics)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	hooks := observability.Chain(metrics.Hooks(), observability.LoggingHooks(logger))
	env.Workspace = ppda.NewWorkspace(registry,
		ppda.WithStore(store),
		ppda.WithModelOptions(
			automaton.WithSeed(cfg.Seed),
			automaton.WithMaxSteps(cfg.MaxSteps),
		),
		ppda.WithEngineOptions(
			ppda.WithLogger(logger),
			ppda.WithLifecycleHooks(hooks),
			ppda.WithWorkers(cfg.Workers),
		),
	)
	return env, nil
}

// createStore picks the sample store driver.
func (e *Environment) createStore(cfg config.StoreConfig) (ports.SampleStore, error) {
	switch cfg.Driver {
	case config.DriverRedis:
		store := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithTTL(cfg.Redis.TTL),
			redis.WithPrefix(cfg.Redis.Prefix),
		)
		e.closers = append(e.closers, store.Close)
		e.Logger.Debug("using redis sample store", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB)
		return store, nil
	case config.DriverMemory, "":
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// Engine returns the engine of the named model.
func (e *Environment) Engine(name string) (*ppda.Engine, error) {
	return e.Workspace.Engine(name)
}

// Close releases the store connections.
func (e *Environment) Close() error {
	var errs []error
	for _, c := range e.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
