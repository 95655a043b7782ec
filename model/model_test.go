package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	. "github.com/zucenko/retrodesk/model"
)

func TestFace(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		want    Face
	}{
		{name: "playing", outcome: None, want: Smile},
		{name: "lost", outcome: Loss, want: Dead},
		{name: "won", outcome: Win, want: Cool},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := &FieldState{Outcome: test.outcome}
			assert.Equal(t, test.want, s.Face())
		})
	}
}

func TestMinesRemaining(t *testing.T) {
	s := &FieldState{Mines: 10, FlagCount: 12}
	assert.Equal(t, -2, s.MinesRemaining())
}

func TestNewFieldStateCopiesCells(t *testing.T) {
	cells := [][]Cell{{{Mine: true}, {}}, {{}, {NeighborMines: 1}}}
	s := NewFieldState(2, 2, 1, cells)
	cells[0][0].Revealed = true

	assert.False(t, s.Cells[0][0].Revealed)
	assert.Equal(t, 1, s.CountCells(func(c Cell) bool { return c.Mine }))
}

func TestToolName(t *testing.T) {
	assert.Equal(t, "fill", Fill.Name())
	assert.False(t, Tool(0).Valid())
	assert.True(t, Eraser.Valid())
}
