package paint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	. "github.com/zucenko/retrodesk/paint"
)

func TestHistoryPushUndo(t *testing.T) {
	h := NewHistory(5)
	_, ok := h.Undo()
	assert.False(t, ok, "empty history")

	for i := byte(0); i < 3; i++ {
		h.Push([]byte{i})
	}
	assert.Equal(t, 2, h.Step())
	assert.Equal(t, 3, h.Len())

	snap, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, []byte{1}, snap)
	snap, ok = h.Undo()
	require.True(t, ok)
	assert.Equal(t, []byte{0}, snap)
	_, ok = h.Undo()
	assert.False(t, ok)
	assert.Equal(t, 0, h.Step())
}

func TestHistoryPushTruncates(t *testing.T) {
	h := NewHistory(5)
	for i := byte(0); i < 4; i++ {
		h.Push([]byte{i})
	}
	h.Undo()
	h.Undo()
	h.Push([]byte{9})

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 2, h.Step())
	_, ok := h.Redo()
	assert.False(t, ok)
	snap, _ := h.Undo()
	assert.Equal(t, []byte{1}, snap)
}

func TestHistoryEviction(t *testing.T) {
	h := NewHistory(3)
	for i := byte(0); i < 10; i++ {
		h.Push([]byte{i})
		assert.True(t, h.Step() >= 0 && h.Step() < h.Len())
	}
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 2, h.Step())

	snap, _ := h.Undo()
	assert.Equal(t, []byte{8}, snap)
	snap, _ = h.Undo()
	assert.Equal(t, []byte{7}, snap)
}

func TestHistoryCopiesSnapshots(t *testing.T) {
	h := NewHistory(2)
	pix := []byte{1, 2, 3}
	h.Push(pix)
	pix[0] = 42
	h.Push(pix)

	snap, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, snap)
}

func TestHistoryMinimumLimit(t *testing.T) {
	h := NewHistory(0)
	assert.Equal(t, 1, h.Limit())
	h.Push([]byte{1})
	h.Push([]byte{2})
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 0, h.Step())
}
