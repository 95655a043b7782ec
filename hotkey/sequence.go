// Package hotkey recognises repeated key chords such as the
// Ctrl+Shift+M x3 shortcut that opens the Minesweeper window.
package hotkey

import "time"

const (
	DefaultPresses = 3
	DefaultWindow  = 2 * time.Second
)

// Sequence fires once a chord was pressed Presses times with no gap longer
// than Window between two presses.
type Sequence struct {
	Presses int
	Window  time.Duration

	count int
	last  time.Time
}

func NewSequence(presses int, window time.Duration) *Sequence {
	return &Sequence{Presses: presses, Window: window}
}

// Press registers one chord press at t and reports whether the sequence
// completed. A completed sequence starts counting from zero again.
func (s *Sequence) Press(t time.Time) bool {
	if s.count > 0 && t.Sub(s.last) > s.Window {
		s.count = 0
	}
	s.count++
	s.last = t
	if s.count >= s.Presses {
		s.count = 0
		return true
	}
	return false
}

// Pending returns how many presses were counted so far.
func (s *Sequence) Pending() int {
	return s.count
}
