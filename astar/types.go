package astar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by Run.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to Run.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrInvalidEndpoints indicates start and end are the same cell or one of
	// them is Blocked.
	ErrInvalidEndpoints = errors.New("astar: invalid start/end endpoints")
)

// Status is the terminal outcome of a Run.
type Status int

const (
	// Found means the end was reached and the path was marked.
	Found Status = iota
	// Unreachable means the frontier emptied without reaching the end.
	Unreachable
	// Canceled means isCanceled (or the context) asked the search to stop.
	Canceled
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case Unreachable:
		return "unreachable"
	case Canceled:
		return "canceled"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result reports how a Run ended.
//
// Path lists cells from start to end inclusive and is nil unless Status is
// Found. Cost is the number of unit steps on Path (len(Path)-1). Expanded
// counts cells whose neighbors were relaxed, i.e. the number of onStep calls
// made before reconstruction started.
type Result struct {
	Status   Status
	Path     []grid.Position
	Cost     int
	Expanded int
}

// Heuristic estimates the remaining cost from a cell to the target.
// It must be consistent for Run to return optimal paths.
type Heuristic func(from, to grid.Position) int

// Manhattan returns |Δrow| + |Δcol|, the exact unobstructed distance on a
// 4-connected unit grid.
func Manhattan(from, to grid.Position) int {
	return abs(from.Row-to.Row) + abs(from.Col-to.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Options configures Run beyond its required arguments.
//
// Ctx      : extra cancellation source, polled alongside isCanceled.
// Logger   : receives debug records at run start and end.
// Heuristic: remaining-cost estimate; Manhattan by default.
type Options struct {
	Ctx       context.Context
	Logger    *slog.Logger
	Heuristic Heuristic
}

// Option is a functional option for Run.
type Option func(*Options)

// DefaultOptions returns a background context, a discarding logger and the
// Manhattan heuristic.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Logger:    slog.New(slog.DiscardHandler),
		Heuristic: Manhattan,
	}
}

// WithContext makes Run also stop with Canceled once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes run diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithHeuristic replaces the Manhattan estimate. An inconsistent heuristic
// still terminates but may return a longer path.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}
