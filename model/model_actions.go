package model

// MinesRemaining is what the counter shows. Over-flagging makes it negative.
func (s *FieldState) MinesRemaining() int {
	return s.Mines - s.FlagCount
}

func (s *FieldState) Face() Face {
	switch s.Outcome {
	case Loss:
		return Dead
	case Win:
		return Cool
	default:
		return Smile
	}
}

// CountCells returns how many cells satisfy pred.
func (s *FieldState) CountCells(pred func(Cell) bool) int {
	n := 0
	for _, row := range s.Cells {
		for _, c := range row {
			if pred(c) {
				n++
			}
		}
	}
	return n
}

func NewFieldState(rows, cols, mines int, cells [][]Cell) *FieldState {
	copied := make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		copied[r] = make([]Cell, cols)
		copy(copied[r], cells[r])
	}
	return &FieldState{
		Rows:  rows,
		Cols:  cols,
		Mines: mines,
		Cells: copied,
	}
}
