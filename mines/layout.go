package mines

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/retrodesk/model"
)

// ErrLayout occurs when a layout text cannot be parsed
var ErrLayout = errors.New("malformed mine layout")

// Layout is a fixed mine placement, one bool per cell.
type Layout struct {
	Rows, Cols int
	Mines      [][]bool
}

// MineCount returns the number of mines in the layout.
func (l *Layout) MineCount() int {
	n := 0
	for _, row := range l.Mines {
		for _, m := range row {
			if m {
				n++
			}
		}
	}
	return n
}

// ReadLayout parses a text grid: '*' or 'X' is a mine, '.', '-' or '0' is
// empty. Blank lines and lines starting with '#' are skipped.
func ReadLayout(reader io.Reader) (*Layout, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)

	layout := &Layout{Mines: make([][]bool, 0)}
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		line := make([]bool, 0, len(s))
		for i, char := range s {
			switch char {
			case '*', 'X', 'x':
				line = append(line, true)
			case '.', '-', '0':
				line = append(line, false)
			case ' ', '\t':
				// separators
			default:
				return nil, fmt.Errorf("%w: line %d col %d: unexpected %q", ErrLayout, lineNo, i+1, char)
			}
		}
		if layout.Cols == 0 {
			layout.Cols = len(line)
		} else if len(line) != layout.Cols {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrLayout, lineNo, len(line), layout.Cols)
		}
		layout.Mines = append(layout.Mines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLayout, err)
	}
	layout.Rows = len(layout.Mines)
	return layout, nil
}

// ResetLayout starts a new game with the mines of l instead of random ones.
func (f *Field) ResetLayout(l *Layout) (*model.FieldState, error) {
	if l == nil {
		return nil, fmt.Errorf("%w: nil layout", ErrInvalidConfig)
	}
	mines := l.MineCount()
	if err := validate(l.Rows, l.Cols, mines); err != nil {
		return nil, err
	}
	if len(l.Mines) != l.Rows {
		return nil, fmt.Errorf("%w: layout has %d rows, declares %d", ErrInvalidConfig, len(l.Mines), l.Rows)
	}
	for r, row := range l.Mines {
		if len(row) != l.Cols {
			return nil, fmt.Errorf("%w: layout row %d has %d cells, declares %d", ErrInvalidConfig, r, len(row), l.Cols)
		}
	}

	f.rows, f.cols, f.mines = l.Rows, l.Cols, mines
	f.cells = emptyCells(l.Rows, l.Cols)
	for r, row := range l.Mines {
		for c, m := range row {
			f.cells[r][c].Mine = m
		}
	}
	f.start()

	log.WithFields(log.Fields{
		"rows":  l.Rows,
		"cols":  l.Cols,
		"mines": mines,
	}).Debug("mine field loaded from layout")
	return f.State(), nil
}
