package main

import (
	"image"
	"os"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/retrodesk/mines"
	"github.com/zucenko/retrodesk/model"
	"github.com/zucenko/retrodesk/paint"
)

func TestCounter(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "000"},
		{7, "007"},
		{42, "042"},
		{999, "999"},
		{1500, "999"},
		{-3, "-03"},
		{-500, "-99"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, counter(tt.in), "counter(%d)", tt.in)
	}
}

func TestMineWindowCellAt(t *testing.T) {
	w := &MineWindow{origin: image.Pt(10, 10), rows: 9, cols: 9}
	g := w.gridOrigin()

	row, col, ok := w.CellAt(g)
	assert.True(t, ok)
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)

	row, col, ok = w.CellAt(g.Add(image.Pt(2*cellSize+3, 5*cellSize+1)))
	assert.True(t, ok)
	assert.Equal(t, 5, row)
	assert.Equal(t, 2, col)

	_, _, ok = w.CellAt(g.Add(image.Pt(9*cellSize, 0)))
	assert.False(t, ok)
	_, _, ok = w.CellAt(g.Sub(image.Pt(1, 0)))
	assert.False(t, ok)

	assert.False(t, w.FaceRect().Overlaps(image.Rectangle{Min: g, Max: g.Add(image.Pt(9*cellSize, 9*cellSize))}))
}

func TestPaintWindowHitTests(t *testing.T) {
	w := &PaintWindow{origin: image.Pt(100, 20), canvas: image.Rect(0, 0, 400, 300)}

	for i, want := range tools {
		got, ok := w.ToolAt(w.toolRect(i).Min)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := w.ToolAt(w.CanvasRect().Min)
	assert.False(t, ok)

	i, ok := w.SwatchAt(w.swatchRect(17).Min.Add(image.Pt(2, 2)))
	assert.True(t, ok)
	assert.Equal(t, 17, i)

	cr := w.CanvasRect()
	assert.Equal(t, 400, cr.Dx())
	assert.Equal(t, 300, cr.Dy())
	assert.Equal(t, image.Pt(0, 0), w.ToCanvas(cr.Min))
	assert.Equal(t, image.Pt(-1, 5), w.ToCanvas(cr.Min.Add(image.Pt(-1, 5))))
	assert.True(t, cr.In(w.Bounds()))
}

func TestAnimatorChain(t *testing.T) {
	an := NewAnimator()
	var value float32
	finished := 0
	an.Start(gween.New(0, 1, 1, ease.Linear)).
		OnChange(func(v float32) { value = v }).
		OnFinish(func() { finished++ }).
		Then(gween.New(1, 0.5, 1, ease.Linear)).
		OnChange(func(v float32) { value = v })

	an.Update(0.5)
	assert.InDelta(t, 0.5, value, 1e-3)
	an.Update(0.5)
	assert.InDelta(t, 1, value, 1e-3)
	assert.Equal(t, 1, finished)
	an.Update(1)
	assert.InDelta(t, 0.5, value, 1e-3)
	assert.Len(t, an.tweens, 0)

	an.Start(gween.New(0, 1, 1, ease.Linear))
	an.Stop()
	assert.Len(t, an.tweens, 0)
}

func TestLoadConfig(t *testing.T) {
	keys := []string{"RETRODESK_ROWS", "RETRODESK_MINES", "RETRODESK_EXPORT", "RETRODESK_LOG_LEVEL", "RETRODESK_HISTORY"}
	for _, k := range keys {
		defer os.Unsetenv(k)
	}

	cfg := LoadConfig()
	assert.Equal(t, mines.DefaultRows, cfg.Rows)
	assert.Equal(t, paint.DefaultFillLimit, cfg.FillLimit)
	assert.Equal(t, paint.PNG, cfg.Export)
	assert.Equal(t, log.InfoLevel, cfg.LogLevel)

	os.Setenv("RETRODESK_ROWS", "16")
	os.Setenv("RETRODESK_MINES", "many")
	os.Setenv("RETRODESK_EXPORT", "bmp")
	os.Setenv("RETRODESK_LOG_LEVEL", "debug")
	os.Setenv("RETRODESK_HISTORY", "5")
	cfg = LoadConfig()
	assert.Equal(t, 16, cfg.Rows)
	assert.Equal(t, mines.DefaultMines, cfg.Mines)
	assert.Equal(t, paint.BMP, cfg.Export)
	assert.Equal(t, log.DebugLevel, cfg.LogLevel)
	assert.Equal(t, 5, cfg.HistoryLimit)
}

func TestFaceGlyphs(t *testing.T) {
	for _, f := range []model.Face{model.Smile, model.Dead, model.Cool} {
		assert.NotEmpty(t, faces[f])
	}
}
