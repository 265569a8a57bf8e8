package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/telemetry"
)

// Exit codes for gridpath run.
const (
	exitUnreachable = 2
	exitCanceled    = 130
)

type runFlags struct {
	scenario string
	size     int
	density  float64
	seed     uint64
	delay    time.Duration
	watch    bool
}

// board is a grid ready to search.
type board struct {
	g          *grid.Grid
	start, end grid.Position
}

func newRunCmd(a *app) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Search a board and print the result",
		Long: `Search a board loaded from a scenario file, or a random board of the given
size, and print the final board with a summary line.

When stdout is a terminal and --delay is set, every step is redrawn in place.
Exit status is 0 when a path is found, 2 when the end is unreachable and 130
when the search is interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.watch && f.scenario == "" {
				return errors.New("--watch requires --scenario")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.run(ctx, cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().StringVarP(&f.scenario, "scenario", "f", "", "scenario YAML file")
	cmd.Flags().IntVar(&f.size, "size", 20, "side of a random board when no scenario is given")
	cmd.Flags().Float64Var(&f.density, "density", 0.25, "wall probability for a random board")
	cmd.Flags().Uint64Var(&f.seed, "seed", 1, "seed for a random board")
	cmd.Flags().DurationVar(&f.delay, "delay", 0, "pause after every step (animates on a terminal)")
	cmd.Flags().BoolVar(&f.watch, "watch", false, "re-run whenever the scenario file changes")
	return cmd
}

func (a *app) run(ctx context.Context, out io.Writer, f *runFlags) error {
	load := func() (board, error) { return loadBoard(f) }

	b, err := load()
	if err != nil {
		return err
	}
	res, err := search(ctx, out, b, f.delay, a.log, a.metrics)
	if err != nil {
		return err
	}
	if !f.watch {
		return exitFor(res)
	}

	w, err := scenario.NewWatcher(f.scenario, func() {
		b, err := load()
		if err != nil {
			a.log.Warn("scenario reload failed", "path", f.scenario, "error", err)
			return
		}
		if _, err := search(ctx, out, b, f.delay, a.log, a.metrics); err != nil {
			a.log.Warn("search failed", "error", err)
		}
	}, scenario.DefaultDebounce, a.log)
	if err != nil {
		return err
	}
	defer w.Close()

	a.log.Info("watching scenario", "path", f.scenario)
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func loadBoard(f *runFlags) (board, error) {
	if f.scenario == "" {
		g, start, end, err := scenario.Random(f.size, f.density, f.seed)
		return board{g: g, start: start, end: end}, err
	}
	s, err := scenario.Load(f.scenario)
	if err != nil {
		return board{}, err
	}
	g, start, end, err := s.Build()
	return board{g: g, start: start, end: end}, err
}

// search runs A* over b, redrawing after every step when out is a terminal
// and delay is positive, and prints the final board and a summary line.
func search(ctx context.Context, out io.Writer, b board, delay time.Duration, log *slog.Logger, m *telemetry.Metrics) (*astar.Result, error) {
	tty := isTerminal(out)
	animate := tty && delay > 0
	draw := func() string {
		if tty {
			return render.Styled(b.g.States(), nil, nil)
		}
		return render.Text(b.g.States())
	}

	onStep := func() {
		if delay <= 0 {
			return
		}
		time.Sleep(delay)
		if animate {
			fmt.Fprint(out, "\x1b[H\x1b[2J", draw())
		}
	}

	log = log.With("run_id", uuid.NewString())
	began := time.Now()
	res, err := astar.Run(b.g, b.start, b.end, onStep, nil,
		astar.WithContext(ctx), astar.WithLogger(log))
	if err != nil {
		return nil, err
	}
	took := time.Since(began)
	if m != nil {
		m.Observe(res, took)
	}

	if animate {
		fmt.Fprint(out, "\x1b[H\x1b[2J")
	}
	fmt.Fprint(out, draw())
	fmt.Fprintln(out, summary(res, took))
	log.Info("search finished", "status", res.Status.String(), "cost", res.Cost, "expanded", res.Expanded, "took", took)

	return res, nil
}

func summary(res *astar.Result, took time.Duration) string {
	switch res.Status {
	case astar.Found:
		return fmt.Sprintf("found: cost=%d expanded=%d took=%s", res.Cost, res.Expanded, took.Round(time.Microsecond))
	default:
		return fmt.Sprintf("%s: expanded=%d took=%s", res.Status, res.Expanded, took.Round(time.Microsecond))
	}
}

func exitFor(res *astar.Result) error {
	switch res.Status {
	case astar.Unreachable:
		return exitCodeError{code: exitUnreachable, msg: "end is unreachable"}
	case astar.Canceled:
		return exitCodeError{code: exitCanceled, msg: "search canceled"}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
