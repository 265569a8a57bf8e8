package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/telemetry"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// app carries the dependencies shared by every subcommand.
type app struct {
	logLevel    string
	logFormat   string
	metricsAddr string

	log     *slog.Logger
	metrics *telemetry.Metrics
	server  *http.Server
}

// newRootCmd builds the command tree. The returned app must be shut down
// once the command finishes, whatever its outcome.
func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	root := &cobra.Command{
		Use:           "gridpath",
		Short:         "Paint grid boards and watch A* search them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "log format: text or json")
	root.PersistentFlags().StringVar(&a.metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address (e.g. :9090)")

	root.AddCommand(newRunCmd(a), newEditCmd(a), newVersionCmd())
	return root, a
}

// execute runs root and then stops the metrics server, including when RunE
// returns an exitCodeError.
func execute(ctx context.Context, root *cobra.Command, a *app) error {
	err := root.ExecuteContext(ctx)
	if serr := a.shutdown(); serr != nil && err == nil {
		err = serr
	}
	return err
}

func (a *app) setup(ctx context.Context) error {
	log, err := telemetry.NewLogger(os.Stderr, a.logLevel, a.logFormat)
	if err != nil {
		return err
	}
	a.log = log
	a.metrics = telemetry.NewMetrics()

	if a.metricsAddr == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", a.metrics.Handler())
	a.server = &http.Server{Addr: a.metricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("metrics server stopped", "addr", a.metricsAddr, "error", err)
		}
	}()
	a.log.Info("serving metrics", "addr", a.metricsAddr)
	return nil
}

func (a *app) shutdown() error {
	if a.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return a.server.Shutdown(ctx)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gridpath version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("gridpath", version)
		},
	}
}
