package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/skillcoder/job-restart-operator/internal/adapters/outbound/k8s"
	"github.com/skillcoder/job-restart-operator/internal/config"
	"github.com/skillcoder/job-restart-operator/internal/httpserver"
	"github.com/skillcoder/job-restart-operator/internal/infra/appstate"
	"github.com/skillcoder/job-restart-operator/internal/infra/shutdown"
	"github.com/skillcoder/job-restart-operator/internal/logic/reconciler"
)

// Version is overridden at build time with -ldflags "-X .../internal/app.Version=...".
var Version = "dev"

type App struct {
	logger     *slog.Logger
	cfg        *config.Config
	appState   *appstate.AppState
	signals    signalHandler
	components []pingComponent
}

// New creates a new application instance with all dependencies wired.
func New(logger *slog.Logger, cfg *config.Config, appState *appstate.AppState) (*App, error) {
	clientset, err := k8s.NewClientset(cfg.KubeMaster, cfg.KubeConfig)
	if err != nil {
		return nil, fmt.Errorf("new clientset: %w", err)
	}

	return newApp(logger, cfg, appState, k8s.New(logger, clientset)), nil
}

func newApp(
	logger *slog.Logger,
	cfg *config.Config,
	appState *appstate.AppState,
	repo reconciler.Repository,
) *App {
	service := reconciler.New(logger, repo, reconciler.Settings{
		Namespace:      cfg.Namespace,
		JobNames:       cfg.JobNames(),
		CheckInterval:  cfg.CheckInterval,
		RestartDelay:   cfg.RestartDelay,
		SkipDelayOnOOM: cfg.SkipDelayOnOOM,
	})

	// shutdown runs in reverse, so the reconciler stops before the servers
	components := make([]pingComponent, 0, 3)

	if cfg.HTTPPort != "" {
		components = append(components, httpserver.New(logger, appState, service, cfg.HTTPPort))
	}

	if cfg.MetricsPort != "" {
		components = append(components, httpserver.NewMetricsServer(logger, cfg.MetricsPort))
	}

	components = append(components, service)

	return &App{
		logger:     logger,
		cfg:        cfg,
		appState:   appState,
		signals:    shutdown.New(logger, appState),
		components: components,
	}
}

// Run starts every component and blocks until a termination signal or ctx cancellation,
// then shuts the components down.
func (a *App) Run(originCtx context.Context) error {
	ctx, cancel := context.WithCancel(originCtx)
	defer cancel()

	go a.signals.HandleSignals(ctx, cancel)

	if err := a.appState.SetStarting(ctx); err != nil {
		return fmt.Errorf("set starting application state: %w", err)
	}

	a.logStartup(ctx)

	startErr := a.start(ctx)
	if startErr == nil {
		<-allChannelsClose(ctx, a.logger, a.readyChannels()...)

		if err := a.appState.SetRunning(ctx); err != nil {
			a.logger.ErrorContext(ctx, "failed to set running state", "reason", err)
		} else {
			a.logger.InfoContext(ctx, "application is running")
		}

		<-ctx.Done()
	}

	a.logger.InfoContext(ctx, "stopping application")

	shutdownErr := a.appState.Shutdown(ctx)

	return errors.Join(startErr, shutdownErr)
}

func (a *App) start(ctx context.Context) error {
	for _, c := range a.components {
		if err := c.Start(ctx); err != nil {
			return fmt.Errorf("start %s: %w", c.Name(), err)
		}

		a.appState.RegisterShutdowner(c)

		if err := a.appState.RegisterChecker(c); err != nil {
			return fmt.Errorf("register %s: %w", c.Name(), err)
		}
	}

	return nil
}

func (a *App) readyChannels() []<-chan struct{} {
	chans := make([]<-chan struct{}, 0, len(a.components))
	for _, c := range a.components {
		chans = append(chans, c.Ready())
	}

	return chans
}

func (a *App) logStartup(ctx context.Context) {
	a.logger.InfoContext(ctx, "starting job-restart-operator",
		"version", Version,
		"namespace", a.cfg.Namespace,
		"jobs", a.cfg.JobNames(),
		"checkInterval", a.cfg.CheckInterval,
		"restartDelay", a.cfg.RestartDelay,
		"skipDelayOnOOM", a.cfg.SkipDelayOnOOM,
		"httpPort", a.cfg.HTTPPort,
		"metricsPort", a.cfg.MetricsPort,
		"logLevel", a.cfg.LogLevel,
	)
}

// allChannelsClose returns a channel closed once every input channel is closed
// or ctx is done, whichever comes first.
func allChannelsClose(ctx context.Context, logger *slog.Logger, chans ...<-chan struct{}) <-chan struct{} {
	out := make(chan struct{})

	go func() {
		defer close(out)

		for _, ch := range chans {
			select {
			case <-ch:
			case <-ctx.Done():
				logger.DebugContext(ctx, "stopped waiting for components", "reason", context.Cause(ctx))

				return
			}
		}
	}()

	return out
}
