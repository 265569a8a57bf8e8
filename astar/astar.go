package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/grid"
)

// unscored stands in for +∞ when a cell has no g or f entry yet.
const unscored = math.MaxInt

// Run searches g for a shortest path from start to end.
//
// onStep is invoked after each expansion and after each reconstruction step;
// isCanceled is polled before each pop. Either may be nil.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start and end must be in bounds (grid.ErrOutOfRange).
//  3. start != end and neither is Blocked (ErrInvalidEndpoints).
//
// The returned Result is non-nil whenever err is nil.
func Run(g *grid.Grid, start, end grid.Position, onStep func(), isCanceled func() bool, opts ...Option) (*Result, error) {
	// 1) Build Options from defaults and the supplied functional options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the grid is non-nil.
	if g == nil {
		return nil, ErrNilGrid
	}
	// 3) Validate both endpoints: in range, distinct, not Blocked.
	if err := validateEndpoints(g, start, end); err != nil {
		return nil, err
	}
	// 4) Nil hooks become no-ops so the loop never checks for them.
	if onStep == nil {
		onStep = func() {}
	}
	if isCanceled == nil {
		isCanceled = func() bool { return false }
	}

	// 5) Prepare the per-run score tables, closed set and frontier.
	r := &runner{
		g:          g,
		start:      start,
		end:        end,
		h:          cfg.Heuristic,
		onStep:     onStep,
		isCanceled: isCanceled,
		opts:       cfg,
		gScore:     make(map[grid.Position]int),
		fScore:     make(map[grid.Position]int),
		cameFrom:   make(map[grid.Position]grid.Position),
		closed:     make(map[grid.Position]bool),
		open:       frontier.New[grid.Position](),
	}

	log := cfg.Logger.With("start", start.String(), "end", end.String())
	log.Debug("astar: run start", "rows", g.Rows(), "cols", g.Cols())

	// 6) Seed the frontier with start and run the main loop.
	r.init()
	status, err := r.loop()
	if err != nil {
		return nil, err
	}

	// 7) Only a Found run carries a path and a cost.
	res := &Result{Status: status, Expanded: r.expanded}
	if status == Found {
		res.Path = r.path
		res.Cost = r.gScore[end]
	}
	log.Debug("astar: run done", "status", status.String(), "expanded", res.Expanded, "cost", res.Cost)

	return res, nil
}

func validateEndpoints(g *grid.Grid, start, end grid.Position) error {
	ss, err := g.State(start)
	if err != nil {
		return fmt.Errorf("astar: start: %w", err)
	}
	es, err := g.State(end)
	if err != nil {
		return fmt.Errorf("astar: end: %w", err)
	}
	if start == end {
		return fmt.Errorf("%w: start and end are both %v", ErrInvalidEndpoints, start)
	}
	if ss == grid.Blocked || es == grid.Blocked {
		return fmt.Errorf("%w: endpoint is blocked", ErrInvalidEndpoints)
	}
	return nil
}

// runner holds the mutable state of a single Run. Nothing in it outlives the call.
type runner struct {
	g          *grid.Grid
	start, end grid.Position
	h          Heuristic
	onStep     func()
	isCanceled func() bool
	opts       Options

	gScore   map[grid.Position]int           // best known steps from start; absent = +∞
	fScore   map[grid.Position]int           // gScore + h; absent = +∞
	cameFrom map[grid.Position]grid.Position // predecessor on the best known route
	closed   map[grid.Position]bool          // cells whose neighbors were relaxed
	open     *frontier.Queue[grid.Position]

	expanded int
	path     []grid.Position
}

// init seeds the frontier with the start cell.
func (r *runner) init() {
	r.gScore[r.start] = 0
	r.fScore[r.start] = r.h(r.start, r.end)
	r.open.Push(r.start, r.fScore[r.start])
}

func score(m map[grid.Position]int, p grid.Position) int {
	if v, ok := m[p]; ok {
		return v
	}
	return unscored
}

func (r *runner) canceled() bool {
	if r.isCanceled() {
		return true
	}
	return r.opts.Ctx.Err() != nil
}

// loop pops cells until the end is reached, the frontier empties, or the
// caller cancels.
func (r *runner) loop() (Status, error) {
	for !r.open.IsEmpty() {
		// 1) Poll for cancellation once per iteration, before popping.
		if r.canceled() {
			return Canceled, nil
		}

		// 2) Pop the entry with the smallest (f, sequence).
		current, priority, _ := r.open.PopMin()

		// 3) Skip stale entries: a better route was queued later, or the cell is closed.
		if r.closed[current] || priority != score(r.fScore, current) {
			continue
		}

		// 4) Goal reached: rebuild the path and restore the End marker.
		if current == r.end {
			r.path = reconstruct(r.g, r.cameFrom, r.end, r.onStep)
			if err := r.g.Mark(r.end, grid.End); err != nil {
				return Found, err
			}
			return Found, nil
		}

		// 5) Close the cell and relax its neighbors.
		r.closed[current] = true
		if err := r.relax(current); err != nil {
			return Unreachable, err
		}

		// 6) Count the expansion and notify the caller.
		r.expanded++
		r.onStep()

		// 7) Paint it Visited after the callback; start keeps its marker.
		if current != r.start {
			paint(r.g, current, grid.Visited)
		}
	}

	return Unreachable, nil
}

// relax tries to improve every neighbor of u through u with a unit step.
// Only strict improvements update a neighbor, so the first predecessor found
// at a given cost is kept.
func (r *runner) relax(u grid.Position) error {
	nbrs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("astar: neighbors of %v: %w", u, err)
	}
	tentative := r.gScore[u] + 1
	for _, v := range nbrs {
		// 1) Closed cells are final; non-improving routes are ignored.
		if r.closed[v] || tentative >= score(r.gScore, v) {
			continue
		}
		// 2) Record the better route and its scores.
		r.cameFrom[v] = u
		r.gScore[v] = tentative
		f := tentative + r.h(v, r.end)
		r.fScore[v] = f

		// 3) Always push; only a first discovery is painted Frontier.
		discovered := !r.open.Contains(v)
		r.open.Push(v, f)
		if discovered {
			paint(r.g, v, grid.Frontier)
		}
	}
	return nil
}

// paint sets p to s unless p holds a Start or End marker.
func paint(g *grid.Grid, p grid.Position, s grid.State) {
	cur, err := g.State(p)
	if err != nil || cur.Endpoint() {
		return
	}
	_ = g.Mark(p, s)
}
