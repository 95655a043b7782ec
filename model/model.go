package model

import "fmt"

type Phase int

const (
	Idle Phase = iota
	Playing
	Won
	Lost
)

func (p Phase) Name() string {
	switch p {
	case Idle:
		return "IDLE"
	case Playing:
		return "PLAYING"
	case Won:
		return "WON"
	case Lost:
		return "LOST"
	default:
		return fmt.Sprintf("N/A(%d)", p)
	}
}

type Outcome int

const (
	None Outcome = iota
	Win
	Loss
)

func (o Outcome) Name() string {
	switch o {
	case None:
		return "NONE"
	case Win:
		return "WIN"
	case Loss:
		return "LOSS"
	default:
		return fmt.Sprintf("N/A(%d)", o)
	}
}

// Face is the smiley shown above the mine field.
type Face int

const (
	Smile Face = iota
	Dead
	Cool
)

type Cell struct {
	Mine          bool
	Revealed      bool
	Flagged       bool
	NeighborMines int
}

// FieldState is a read-only copy of a mine field handed to the presentation.
type FieldState struct {
	Rows, Cols    int
	Mines         int
	Cells         [][]Cell
	RevealedCount int
	FlagCount     int
	IsOver        bool
	Outcome       Outcome
	Phase         Phase
}

type Tool int

const (
	Pencil Tool = iota + 1
	Brush
	Eraser
	Fill
)

func (t Tool) Name() string {
	switch t {
	case Pencil:
		return "pencil"
	case Brush:
		return "brush"
	case Eraser:
		return "eraser"
	case Fill:
		return "fill"
	default:
		return fmt.Sprintf("n/a:%d", t)
	}
}

func (t Tool) Valid() bool {
	return t >= Pencil && t <= Fill
}
