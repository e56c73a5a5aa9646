// Package app wires configuration, the operation registry, and the
// presentation layers into a runnable application.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/numcalc/internal/cli"
	"github.com/agbru/numcalc/internal/config"
	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/logging"
	"github.com/agbru/numcalc/internal/numeric"
	"github.com/agbru/numcalc/internal/server"
	"github.com/agbru/numcalc/internal/tui"
	"github.com/agbru/numcalc/internal/ui"
)

// Application represents the numcalc application instance.
type Application struct {
	Config    config.AppConfig
	Factory   numeric.OperationFactory
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom OperationFactory for the application.
func WithFactory(f numeric.OperationFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = numeric.NewDefaultFactory()
	}

	programName := "numcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}
	cfg = config.ApplyAdaptiveParallelism(cfg)

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	switch {
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	ctx, stopMetrics := a.startMetricsServer(ctx)
	defer stopMetrics()

	if a.Config.Demo() {
		return a.runDemo(ctx, out)
	}

	if a.Config.REPL {
		return a.runREPL()
	}

	if a.Config.TUI {
		return a.runTUI(ctx)
	}

	return a.runCompute(ctx, out)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Factory.List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// startMetricsServer launches the observability listener when configured.
// The returned stop function cancels the listener and is safe to call when
// no server was started.
func (a *Application) startMetricsServer(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.Config.MetricsAddr == "" {
		return ctx, func() {}
	}

	ctx, cancel := context.WithCancel(ctx)
	logger := logging.NewLogger(a.ErrWriter, "metrics-server")
	srv := server.New(a.Config.MetricsAddr, logger)
	go func() {
		if err := srv.Run(ctx); err != nil {
			logger.Error("metrics server stopped", err)
		}
	}()
	return ctx, cancel
}

// runREPL starts the interactive session.
func (a *Application) runREPL() int {
	repl := cli.NewREPL(a.Factory, cli.REPLConfig{
		Timeout:     a.Config.Timeout,
		Parallelism: a.Config.Parallelism,
	})
	repl.Start()
	return apperrors.ExitSuccess
}

// runTUI launches the interactive dashboard.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	tasks, err := a.buildTasks()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return tui.Run(ctx, a.Factory, tasks, a.Config, Version)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
