package mines_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	. "github.com/zucenko/retrodesk/mines"
)

var readLayoutTests = []struct {
	name       string
	text       string
	rows, cols int
	mines      int
	want       error
}{
	{
		name: "plain",
		text: "*..\n.X.\n..-",
		rows: 3, cols: 3, mines: 2,
	},
	{
		name: "comments and spaces",
		text: "# a custom board\n\n* . 0 .\n. . . *\n",
		rows: 2, cols: 4, mines: 2,
	},
	{
		name: "ragged",
		text: "...\n..",
		want: ErrLayout,
	},
	{
		name: "unknown rune",
		text: "..?\n...",
		want: ErrLayout,
	},
}

func TestReadLayout(t *testing.T) {
	for _, test := range readLayoutTests {
		t.Run(test.name, func(t *testing.T) {
			layout, err := ReadLayout(strings.NewReader(test.text))
			if !errors.Is(err, test.want) {
				t.Fatalf("Unexpected ReadLayout error:\nwant: %v,\ngot: %v", test.want, err)
			}
			if test.want != nil {
				return
			}
			assert.Equal(t, test.rows, layout.Rows)
			assert.Equal(t, test.cols, layout.Cols)
			assert.Equal(t, test.mines, layout.MineCount())
		})
	}
}

func TestResetLayout(t *testing.T) {
	layout, err := ReadLayout(strings.NewReader("*..\n...\n..*"))
	require.NoError(t, err)

	f := New()
	state, err := f.ResetLayout(layout)
	require.NoError(t, err)

	assert.True(t, state.Cells[0][0].Mine)
	assert.True(t, state.Cells[2][2].Mine)
	assert.Equal(t, 2, state.Cells[1][1].NeighborMines)
	assert.Equal(t, 0, state.Cells[0][2].NeighborMines)
	assert.Equal(t, 2, state.Mines)
}

func TestResetLayoutRejects(t *testing.T) {
	tests := []struct {
		name   string
		layout *Layout
	}{
		{name: "nil", layout: nil},
		{name: "empty", layout: &Layout{}},
		{name: "all mines", layout: &Layout{Rows: 1, Cols: 2, Mines: [][]bool{{true, true}}}},
		{name: "rows mismatch", layout: &Layout{Rows: 2, Cols: 2, Mines: [][]bool{{true, false}}}},
		{name: "cols mismatch", layout: &Layout{Rows: 1, Cols: 3, Mines: [][]bool{{true, false}}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := New()
			before := f.State()

			_, err := f.ResetLayout(test.layout)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
			assert.Equal(t, before, f.State())
		})
	}
}
