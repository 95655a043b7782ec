package mines

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/retrodesk/model"
)

var (
	// ErrInvalidConfig occurs when a field is reset with bad dimensions or mine count
	ErrInvalidConfig = errors.New("invalid mine field configuration")
	// ErrOutOfBounds occurs when a coordinate lies outside the grid
	ErrOutOfBounds = errors.New("coordinate is out of range")
)

const (
	DefaultRows  = 9
	DefaultCols  = 9
	DefaultMines = 10
)

type point struct {
	row, col int
}

// Field owns the mine grid and the state of one game.
// It is not safe for concurrent use.
type Field struct {
	rows, cols int
	mines      int
	cells      [][]model.Cell
	revealed   int
	flags      int
	phase      model.Phase
	outcome    model.Outcome
	rnd        *rand.Rand
}

type Option func(*Field)

// WithRand makes mine placement use r, mostly for reproducible games.
func WithRand(r *rand.Rand) Option {
	return func(f *Field) {
		f.rnd = r
	}
}

// New returns a field with the default 9x9 grid and 10 mines already placed.
func New(opts ...Option) *Field {
	f := &Field{}
	for _, opt := range opts {
		opt(f)
	}
	if f.rnd == nil {
		f.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if _, err := f.Reset(DefaultRows, DefaultCols, DefaultMines); err != nil {
		panic(err)
	}
	return f
}

// Reset discards the current game and places mines on a fresh rows x cols grid.
func (f *Field) Reset(rows, cols, mines int) (*model.FieldState, error) {
	if err := validate(rows, cols, mines); err != nil {
		return nil, err
	}

	f.rows, f.cols, f.mines = rows, cols, mines
	f.cells = emptyCells(rows, cols)
	f.placeMines()
	f.start()

	log.WithFields(log.Fields{
		"rows":  rows,
		"cols":  cols,
		"mines": mines,
	}).Debug("mine field reset")
	return f.State(), nil
}

func validate(rows, cols, mines int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, rows, cols)
	}
	if mines < 0 || mines >= rows*cols {
		return fmt.Errorf("%w: %d mines on %dx%d grid", ErrInvalidConfig, mines, rows, cols)
	}
	return nil
}

func emptyCells(rows, cols int) [][]model.Cell {
	cells := make([][]model.Cell, rows)
	for r := range cells {
		cells[r] = make([]model.Cell, cols)
	}
	return cells
}

// placeMines samples cells uniformly and retries on collision.
func (f *Field) placeMines() {
	placed := 0
	for placed < f.mines {
		r := f.rnd.Intn(f.rows)
		c := f.rnd.Intn(f.cols)
		if !f.cells[r][c].Mine {
			f.cells[r][c].Mine = true
			placed++
		}
	}
}

func (f *Field) start() {
	f.countNeighbors()
	f.revealed = 0
	f.flags = 0
	f.phase = model.Idle
	f.outcome = model.None
}

func (f *Field) countNeighbors() {
	for r := 0; r < f.rows; r++ {
		for c := 0; c < f.cols; c++ {
			if f.cells[r][c].Mine {
				f.cells[r][c].NeighborMines = 0
				continue
			}
			count := 0
			f.eachNeighbor(r, c, func(nr, nc int) {
				if f.cells[nr][nc].Mine {
					count++
				}
			})
			f.cells[r][c].NeighborMines = count
		}
	}
}

// eachNeighbor calls fn for every in-grid cell of the Moore neighbourhood.
func (f *Field) eachNeighbor(row, col int, fn func(r, c int)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if r >= 0 && r < f.rows && c >= 0 && c < f.cols {
				fn(r, c)
			}
		}
	}
}

// Reveal opens a cell. Revealing a mine loses the game; revealing a zero
// cell opens its whole zero region and the numbered border around it.
func (f *Field) Reveal(row, col int) (*model.FieldState, error) {
	if err := f.checkPosition(row, col); err != nil {
		return nil, err
	}
	cell := &f.cells[row][col]
	if f.IsOver() || cell.Revealed || cell.Flagged {
		return f.State(), nil
	}
	f.phase = model.Playing

	cell.Revealed = true
	f.revealed++

	if cell.Mine {
		f.lose(row, col)
		return f.State(), nil
	}
	if cell.NeighborMines == 0 {
		f.flood(row, col)
	}
	if f.revealed == f.rows*f.cols-f.mines {
		f.phase = model.Won
		f.outcome = model.Win
		log.WithField("revealed", f.revealed).Debug("mine field cleared")
	}
	return f.State(), nil
}

// flood walks the zero region from (row, col) with an explicit stack.
func (f *Field) flood(row, col int) {
	stack := []point{{row, col}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		f.eachNeighbor(p.row, p.col, func(r, c int) {
			n := &f.cells[r][c]
			if n.Revealed || n.Flagged || n.Mine {
				return
			}
			n.Revealed = true
			f.revealed++
			if n.NeighborMines == 0 {
				stack = append(stack, point{r, c})
			}
		})
	}
}

// lose ends the game and uncovers every mine. Flags stay as they are.
func (f *Field) lose(row, col int) {
	f.phase = model.Lost
	f.outcome = model.Loss
	for r := 0; r < f.rows; r++ {
		for c := 0; c < f.cols; c++ {
			cell := &f.cells[r][c]
			if cell.Mine {
				cell.Revealed = true
			}
		}
	}
	log.WithFields(log.Fields{
		"row": row,
		"col": col,
	}).Debug("mine hit")
}

// ToggleFlag puts or removes a flag on a covered cell.
func (f *Field) ToggleFlag(row, col int) (*model.FieldState, error) {
	if err := f.checkPosition(row, col); err != nil {
		return nil, err
	}
	cell := &f.cells[row][col]
	if f.IsOver() || cell.Revealed {
		return f.State(), nil
	}
	f.phase = model.Playing

	cell.Flagged = !cell.Flagged
	if cell.Flagged {
		f.flags++
	} else {
		f.flags--
	}
	return f.State(), nil
}

func (f *Field) checkPosition(row, col int) error {
	if row < 0 || row >= f.rows || col < 0 || col >= f.cols {
		return fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, row, col, f.rows, f.cols)
	}
	return nil
}

// IsOver reports whether the game reached Won or Lost.
func (f *Field) IsOver() bool {
	return f.phase == model.Won || f.phase == model.Lost
}

func (f *Field) Phase() model.Phase {
	return f.phase
}

// Size returns rows and columns of the current grid.
func (f *Field) Size() (int, int) {
	return f.rows, f.cols
}

// State returns a deep copy of the field for rendering.
func (f *Field) State() *model.FieldState {
	state := model.NewFieldState(f.rows, f.cols, f.mines, f.cells)
	state.RevealedCount = f.revealed
	state.FlagCount = f.flags
	state.IsOver = f.IsOver()
	state.Outcome = f.outcome
	state.Phase = f.phase
	return state
}
