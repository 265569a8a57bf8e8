package scenario

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for scenario loading.
var (
	ErrInvalid           = errors.New("scenario: invalid scenario")
	ErrNoBoard           = errors.New("scenario: either size or map is required")
	ErrBoardConflict     = errors.New("scenario: size and map are mutually exclusive")
	ErrNonRectangular    = errors.New("scenario: all map rows must have the same length")
	ErrBadRune           = errors.New("scenario: unexpected map character")
	ErrMissingEndpoint   = errors.New("scenario: start and end are both required")
	ErrDuplicateEndpoint = errors.New("scenario: map has more than one start or end")
)

// MaxSide bounds the rows and columns of any scenario board.
const MaxSide = 512

var validate = validator.New()

// Scenario is the on-disk description of a board.
type Scenario struct {
	Name  string  `yaml:"name"`
	Size  int     `yaml:"size" validate:"gte=0,lte=512"`
	Start []int   `yaml:"start,flow" validate:"omitempty,len=2,dive,gte=0"`
	End   []int   `yaml:"end,flow" validate:"omitempty,len=2,dive,gte=0"`
	Walls [][]int `yaml:"walls,flow" validate:"dive,len=2,dive,gte=0"`
	Map   string  `yaml:"map"`
}

// Load reads and validates the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a YAML scenario.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks field constraints and that exactly one board form is used.
func (s *Scenario) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	hasMap := strings.TrimSpace(s.Map) != ""
	switch {
	case s.Size == 0 && !hasMap:
		return ErrNoBoard
	case s.Size > 0 && hasMap:
		return ErrBoardConflict
	case hasMap && (s.Start != nil || s.End != nil || len(s.Walls) > 0):
		return fmt.Errorf("%w: start, end and walls belong in the map", ErrBoardConflict)
	}
	return nil
}

// Build materializes the board, computes its adjacency and returns the
// endpoints. Out-of-range coordinates wrap grid.ErrOutOfRange.
func (s *Scenario) Build() (g *grid.Grid, start, end grid.Position, err error) {
	if err = s.Validate(); err != nil {
		return nil, start, end, err
	}
	if strings.TrimSpace(s.Map) != "" {
		g, start, end, err = ParseMap(s.Map)
		if err != nil {
			return nil, start, end, err
		}
		g.ComputeNeighbors()
		return g, start, end, nil
	}

	if s.Start == nil || s.End == nil {
		return nil, start, end, ErrMissingEndpoint
	}
	if g, err = grid.New(s.Size); err != nil {
		return nil, start, end, err
	}
	for _, w := range s.Walls {
		if err = g.SetBlocked(pair(w), true); err != nil {
			return nil, start, end, fmt.Errorf("scenario: wall: %w", err)
		}
	}
	start, end = pair(s.Start), pair(s.End)
	if err = g.SetStart(start); err != nil {
		return nil, start, end, fmt.Errorf("scenario: start: %w", err)
	}
	if err = g.SetEnd(end); err != nil {
		return nil, start, end, fmt.Errorf("scenario: end: %w", err)
	}
	g.ComputeNeighbors()

	return g, start, end, nil
}

func pair(v []int) grid.Position {
	return grid.Position{Row: v[0], Col: v[1]}
}

// ParseMap builds a grid from map text. Blank lines and spaces are ignored.
// Adjacency is not computed.
func ParseMap(text string) (g *grid.Grid, start, end grid.Position, err error) {
	var rows [][]rune
	for _, line := range strings.Split(text, "\n") {
		line = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if line == "" {
			continue
		}
		rows = append(rows, []rune(line))
	}
	if len(rows) == 0 {
		return nil, start, end, ErrNoBoard
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, start, end, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, len(row), cols)
		}
	}

	if len(rows) > MaxSide || cols > MaxSide {
		return nil, start, end, fmt.Errorf("%w: map is %dx%d, limit is %d", ErrInvalid, len(rows), cols, MaxSide)
	}

	if g, err = grid.NewRect(len(rows), cols); err != nil {
		return nil, start, end, err
	}
	var hasStart, hasEnd bool
	for r, row := range rows {
		for c, ch := range row {
			st, ok := grid.StateFromRune(ch)
			if !ok || !editable(st) {
				return nil, start, end, fmt.Errorf("%w: %q at (%d,%d)", ErrBadRune, ch, r, c)
			}
			p := grid.Position{Row: r, Col: c}
			switch st {
			case grid.Start:
				if hasStart {
					return nil, start, end, fmt.Errorf("%w: second S at %v", ErrDuplicateEndpoint, p)
				}
				start, hasStart = p, true
			case grid.End:
				if hasEnd {
					return nil, start, end, fmt.Errorf("%w: second E at %v", ErrDuplicateEndpoint, p)
				}
				end, hasEnd = p, true
			}
			_ = g.Mark(p, st)
		}
	}
	if !hasStart || !hasEnd {
		return nil, start, end, ErrMissingEndpoint
	}
	return g, start, end, nil
}

// editable reports whether st may appear in a hand-written map.
func editable(st grid.State) bool {
	switch st {
	case grid.Empty, grid.Blocked, grid.Start, grid.End:
		return true
	}
	return false
}
