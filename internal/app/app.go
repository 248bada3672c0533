package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/specialistvlad/orchestraigo/internal/conductor"
	"github.com/specialistvlad/orchestraigo/internal/config"
	"github.com/specialistvlad/orchestraigo/internal/ctxlog"
	"github.com/specialistvlad/orchestraigo/internal/metrics"
	"github.com/specialistvlad/orchestraigo/internal/paths"
	"github.com/specialistvlad/orchestraigo/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	cfg       *Config
	ctx       context.Context
	logger    *slog.Logger
	logFile   io.Closer
	registry  *registry.Registry
	model     *config.Model
	conductor *conductor.Conductor
	metrics   *metrics.Metrics
	mux       *http.ServeMux

	httpServer *http.Server
}

// openRootLog prepares the standard layout under root and opens its log file
// for appending.
var openRootLog = func(root string) (io.WriteCloser, error) {
	p, err := paths.New(nil, root)
	if err != nil {
		return nil, err
	}
	return p.OpenLog()
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger, catalog, metrics and
// conductor. A nil loader selects NewScoreLoader; no modules selects the core
// modules. Fatal startup errors panic.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) *App {
	a := &App{outW: outW, cfg: cfg}
	defer func() {
		if r := recover(); r != nil {
			if a.logFile != nil {
				_ = a.logFile.Close()
			}
			panic(r)
		}
	}()

	var fileW io.Writer
	if cfg.Root != "" {
		f, err := openRootLog(cfg.Root)
		if err != nil {
			panic(err)
		}
		a.logFile, fileW = f, f
	}

	a.logger = newLogger(cfg.LogLevel, cfg.LogFormat, outW, fileW)
	a.ctx = ctxlog.WithLogger(context.Background(), a.logger)
	a.logger.Debug("Logger configured successfully.")

	if loader == nil {
		loader = NewScoreLoader()
	}
	model, err := loader.Load(a.ctx, cfg.ScorePaths...)
	if err != nil {
		// A failure to load the score is a fatal startup error.
		panic(fmt.Errorf("failed to load score: %w", err))
	}
	a.model = model
	a.logger.Debug("Score loaded and translated into unified model.")

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	a.metrics = metrics.New(promReg)

	if len(modules) == 0 {
		modules = coreModules(a.metrics)
	}
	a.registry = Catalog(modules...)
	a.logger.Debug("All section modules registered.", "count", len(modules), "kinds", a.registry.Kinds())

	// A mismatch between the score and the compiled sections is a user
	// error we cannot recover from, so we panic.
	if err := a.registry.Validate(a.ctx, model); err != nil {
		panic(err)
	}
	a.logger.Debug("Registry validation passed.")

	a.conductor = conductor.New(append(a.conductorOptions(), conductor.WithRecorder(a.metrics), conductor.WithLogger(a.logger))...)
	if err := a.registry.Populate(a.ctx, model, a.conductor); err != nil {
		panic(err)
	}
	a.logger.Debug("Conductor populated.", "sections", a.conductor.Len())

	a.mux = newMux(a, promReg)
	a.startHealthcheckServer()
	return a
}

// conductorOptions merges the score's conductor block with the CLI settings;
// non-zero CLI values win.
func (a *App) conductorOptions() []conductor.Option {
	concurrency, failFast, timeout := 1, a.cfg.FailFast, a.cfg.Timeout
	if s := a.model.Conductor; s != nil {
		concurrency = s.Concurrency
		failFast = failFast || s.FailFast
		if timeout == 0 {
			timeout = s.Timeout
		}
	}
	if a.cfg.Concurrency > 0 {
		concurrency = a.cfg.Concurrency
	}
	a.logger.Debug("Conductor settings resolved.", "concurrency", concurrency, "fail_fast", failFast, "timeout", timeout)
	return []conductor.Option{
		conductor.WithConcurrency(concurrency),
		conductor.WithFailFast(failFast),
		conductor.WithTimeout(timeout),
	}
}

// Registry returns the application's section catalog.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Conductor returns the populated conductor.
func (a *App) Conductor() *conductor.Conductor {
	return a.conductor
}

// Model returns the loaded score model.
func (a *App) Model() *config.Model {
	return a.model
}

// Handler returns the health and metrics endpoints.
func (a *App) Handler() http.Handler {
	return a.mux
}

// Close stops the health check server and closes the log file.
func (a *App) Close() error {
	err := a.closeHealthcheckServer()
	if a.logFile != nil {
		if cerr := a.logFile.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
