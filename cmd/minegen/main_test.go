package main

import (
	"bytes"
	"encoding/csv"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/retrodesk/mines"
	"github.com/zucenko/retrodesk/model"
)

func TestPlayFinishes(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	field := mines.New(mines.WithRand(rnd))

	for i := 0; i < 50; i++ {
		res, err := Play(field, rnd, 9, 9, 10)
		require.NoError(t, err)

		assert.NotEqual(t, model.None, res.Outcome)
		assert.True(t, res.Reveals > 0)
		assert.True(t, res.Flags <= 10)
		if res.Outcome == model.Win {
			assert.Equal(t, 71, res.Revealed)
		}
		assert.True(t, field.IsOver())
	}
}

func TestPlayFlagsAreMines(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	field := mines.New(mines.WithRand(rnd))

	for i := 0; i < 20; i++ {
		_, err := Play(field, rnd, 8, 8, 10)
		require.NoError(t, err)
		state := field.State()
		for r := range state.Cells {
			for c, cell := range state.Cells[r] {
				if cell.Flagged {
					assert.True(t, cell.Mine, "flag on safe cell (%d,%d)", r, c)
				}
			}
		}
	}
}

func TestPlayInvalidConfig(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	_, err := Play(mines.New(), rnd, 0, 9, 10)
	assert.Error(t, err)
}

func TestRunWritesRecords(t *testing.T) {
	var buf bytes.Buffer
	won, err := run(&buf, rand.New(rand.NewSource(11)), 12, 5, 5, 3, false)
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 13)
	assert.Equal(t, []string{"game", "outcome", "reveals", "revealed", "flags"}, records[0])

	wins := 0
	for i, rec := range records[1:] {
		assert.Len(t, rec, 5)
		assert.Contains(t, []string{model.Win.Name(), model.Loss.Name()}, rec[1], "record %d", i)
		if rec[1] == model.Win.Name() {
			wins++
		}
	}
	assert.Equal(t, won, wins)
}
