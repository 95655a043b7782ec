package main

import (
	"image"
	"image/color"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/retrodesk/hotkey"
	"github.com/zucenko/retrodesk/mines"
	"github.com/zucenko/retrodesk/model"
	"github.com/zucenko/retrodesk/paint"
	"golang.org/x/image/font"
)

const (
	gap     = 16
	tickDt  = float32(1) / 60
	maxTime = 999
)

var desktopColor = color.RGBA{0x3a, 0x6e, 0xa5, 0xff}

// Desktop is the presentation layer: it owns one mine field and one canvas
// and feeds them pointer and key events.
type Desktop struct {
	cfg Config

	field  *mines.Field
	state  *model.FieldState
	layout *mines.Layout

	canvas *paint.Canvas
	dirty  image.Rectangle

	mineWin  *MineWindow
	paintWin *PaintWindow
	frame    *Nine
	face     font.Face

	strokes      map[*Stroke]struct{}
	activation   *hotkey.Sequence
	animator     *Animator
	bannerAlpha  float64
	minesVisible bool
	confirmClear bool

	startedAt time.Time
	elapsed   int

	width, height int
}

func NewDesktop(cfg Config) (*Desktop, error) {
	d := &Desktop{
		cfg:        cfg,
		field:      mines.New(mines.WithRand(rand.New(rand.NewSource(time.Now().UnixNano())))),
		strokes:    map[*Stroke]struct{}{},
		activation: hotkey.NewSequence(hotkey.DefaultPresses, hotkey.DefaultWindow),
		animator:   NewAnimator(),
	}

	if cfg.LayoutPath != "" {
		layout, err := LoadLayout(cfg.LayoutPath)
		if err != nil {
			return nil, err
		}
		d.layout = layout
	}
	if err := d.resetField(); err != nil {
		return nil, err
	}

	canvas, err := paint.New(cfg.CanvasWidth, cfg.CanvasHeight,
		paint.WithHistoryLimit(cfg.HistoryLimit),
		paint.WithFillLimit(cfg.FillLimit))
	if err != nil {
		return nil, err
	}
	d.canvas = canvas

	d.mineWin = &MineWindow{origin: image.Pt(gap, gap), rows: d.state.Rows, cols: d.state.Cols}
	paintOrigin := image.Pt(d.mineWin.Bounds().Max.X+gap, gap)
	if d.paintWin, err = NewPaintWindow(paintOrigin, canvas.Bounds()); err != nil {
		return nil, err
	}
	if d.frame, err = NewWindowFrame(); err != nil {
		return nil, err
	}
	if d.face, err = newFace(14); err != nil {
		return nil, err
	}
	if err := d.paintWin.Refresh(canvas); err != nil {
		return nil, err
	}

	pb := d.paintWin.Bounds()
	mb := d.mineWin.Bounds()
	d.width = pb.Max.X + gap
	d.height = pb.Max.Y + gap
	if mb.Max.Y+gap > d.height {
		d.height = mb.Max.Y + gap
	}
	return d, nil
}

func (d *Desktop) resetField() error {
	var (
		state *model.FieldState
		err   error
	)
	if d.layout != nil {
		state, err = d.field.ResetLayout(d.layout)
	} else {
		state, err = d.field.Reset(d.cfg.Rows, d.cfg.Cols, d.cfg.Mines)
	}
	if err != nil {
		return err
	}
	d.state = state
	d.startedAt = time.Time{}
	d.elapsed = 0
	d.bannerAlpha = 0
	d.animator.Stop()
	return nil
}

// apply stores the field state returned by an engine call and reacts to
// phase changes.
func (d *Desktop) apply(state *model.FieldState, err error) {
	if err != nil {
		log.Warnf("mine field: %v", err)
		return
	}
	prev := d.state.Phase
	d.state = state
	if prev == state.Phase {
		return
	}
	log.WithFields(log.Fields{
		"from": prev.Name(),
		"to":   state.Phase.Name(),
	}).Info("minesweeper phase")

	switch state.Phase {
	case model.Playing:
		d.startedAt = time.Now()
	case model.Won, model.Lost:
		d.animator.Start(gween.New(0, 1, 0.4, ease.OutQuad)).
			OnChange(func(v float32) { d.bannerAlpha = float64(v) }).
			Then(gween.New(1, 0.6, 1.2, ease.InOutQuad)).
			OnChange(func(v float32) { d.bannerAlpha = float64(v) })
	}
}

func (d *Desktop) damage(r image.Rectangle) {
	d.dirty = d.dirty.Union(r)
}

func (d *Desktop) update(screen *ebiten.Image) error {
	d.animator.Update(tickDt)
	d.tick()
	d.handleKeys()
	d.handlePointer()

	if !d.dirty.Empty() {
		if err := d.paintWin.Refresh(d.canvas); err != nil {
			return err
		}
		d.dirty = image.ZR
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}

	if err := screen.Fill(desktopColor); err != nil {
		log.Printf("%v", err)
	}
	if d.minesVisible {
		d.mineWin.Draw(screen, d.frame, d.face, d.state, d.elapsed, d.bannerAlpha)
	} else {
		ebitenutil.DebugPrintAt(screen, "Ctrl+Shift+M x3", gap, gap)
	}
	d.paintWin.Draw(screen, d.frame, d.face, d.canvas, d.confirmClear)
	return nil
}

func (d *Desktop) tick() {
	if d.state.Phase != model.Playing || d.startedAt.IsZero() {
		return
	}
	d.elapsed = int(time.Since(d.startedAt) / time.Second)
	if d.elapsed > maxTime {
		d.elapsed = maxTime
	}
}

func (d *Desktop) handleKeys() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	if ctrl && shift && inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if d.activation.Press(time.Now()) {
			d.toggleMines()
		}
		return
	}

	if d.confirmClear {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
			d.damage(d.canvas.Clear())
			d.confirmClear = false
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			d.confirmClear = false
		}
		return
	}

	switch {
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyZ):
		r, _ := d.canvas.Undo()
		d.damage(r)
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyY):
		r, _ := d.canvas.Redo()
		d.damage(r)
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS):
		d.export()
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete):
		d.confirmClear = true
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		d.canvas.SwapColors()
	case inpututil.IsKeyJustPressed(ebiten.KeyLeftBracket):
		if err := d.canvas.SetSize(d.canvas.Size() - 1); err != nil {
			log.Debug(err)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyRightBracket):
		if err := d.canvas.SetSize(d.canvas.Size() + 1); err != nil {
			log.Debug(err)
		}
	}

	keys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}
	for i, k := range keys {
		if !ctrl && inpututil.IsKeyJustPressed(k) {
			d.selectTool(tools[i])
		}
	}
}

func (d *Desktop) toggleMines() {
	d.minesVisible = !d.minesVisible
	if d.minesVisible {
		if err := d.resetField(); err != nil {
			log.Warnf("mine field reset: %v", err)
		}
	}
	log.WithField("visible", d.minesVisible).Info("minesweeper toggled")
}

func (d *Desktop) selectTool(t model.Tool) {
	if err := d.canvas.SelectTool(t); err != nil {
		log.Warn(err)
	}
}

func (d *Desktop) export() {
	name := paint.ExportName(time.Now(), d.cfg.Export)
	file, err := os.Create(name)
	if err != nil {
		log.Warnf("export: %v", err)
		return
	}
	defer file.Close()
	if err := d.canvas.ExportImage(file, d.cfg.Export); err != nil {
		log.Warnf("export %s: %v", name, err)
		return
	}
	log.WithField("file", name).Info("drawing saved")
}

func (d *Desktop) handlePointer() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		d.press(image.Pt(x, y), false, &MouseStrokeSource{})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		d.press(image.Pt(x, y), true, nil)
	}
	for _, id := range inpututil.JustPressedTouchIDs() {
		x, y := ebiten.TouchPosition(id)
		d.press(image.Pt(x, y), false, &TouchStrokeSource{id})
	}

	for s := range d.strokes {
		s.Update()
		if s.Moved() {
			x, y := s.Position()
			p := d.paintWin.ToCanvas(image.Pt(x, y))
			d.damage(d.canvas.ContinueStroke(p.X, p.Y))
		}
		if s.IsReleased() {
			d.canvas.EndStroke()
			delete(d.strokes, s)
		}
	}
}

// press routes a pointer press to whatever is under it. Secondary presses
// flag cells and pick the secondary colour.
func (d *Desktop) press(p image.Point, secondary bool, source StrokeSource) {
	if d.minesVisible {
		if p.In(d.mineWin.FaceRect()) && !secondary {
			if err := d.resetField(); err != nil {
				log.Warnf("mine field reset: %v", err)
			}
			return
		}
		if row, col, ok := d.mineWin.CellAt(p); ok {
			if secondary {
				d.apply(d.field.ToggleFlag(row, col))
			} else {
				d.apply(d.field.Reveal(row, col))
			}
			return
		}
	}

	if t, ok := d.paintWin.ToolAt(p); ok && !secondary {
		d.selectTool(t)
		return
	}
	if i, ok := d.paintWin.SwatchAt(p); ok {
		if secondary {
			d.canvas.SetSecondaryColor(paint.Palette[i])
		} else {
			d.canvas.SetColor(paint.Palette[i])
		}
		return
	}
	if secondary || source == nil || !p.In(d.paintWin.CanvasRect()) {
		return
	}
	if d.confirmClear || len(d.strokes) > 0 {
		return
	}
	c := d.paintWin.ToCanvas(p)
	r, err := d.canvas.BeginStroke(c.X, c.Y)
	if err != nil {
		log.Debug(err)
		return
	}
	d.damage(r)
	if d.canvas.Drawing() {
		d.strokes[NewStroke(source)] = struct{}{}
	}
}

func main() {
	cfg := LoadConfig()
	log.SetLevel(cfg.LogLevel)
	log.WithFields(log.Fields{
		"rows":   cfg.Rows,
		"cols":   cfg.Cols,
		"mines":  cfg.Mines,
		"canvas": image.Pt(cfg.CanvasWidth, cfg.CanvasHeight),
		"layout": cfg.LayoutPath,
	}).Info("starting retrodesk")

	d, err := NewDesktop(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := ebiten.Run(d.update, d.width, d.height, 1, "RetroDesk"); err != nil {
		log.Fatal(err)
	}
}
