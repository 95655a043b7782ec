package main

import (
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/ebitenutil"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/retrodesk/mines"
	"github.com/zucenko/retrodesk/paint"
)

// Config holds the desktop settings read from the environment.
type Config struct {
	Rows, Cols, Mines int
	CanvasWidth       int
	CanvasHeight      int
	HistoryLimit      int
	FillLimit         int
	LayoutPath        string
	Export            paint.Format
	LogLevel          log.Level
}

func LoadConfig() Config {
	cfg := Config{
		Rows:         envInt("RETRODESK_ROWS", mines.DefaultRows),
		Cols:         envInt("RETRODESK_COLS", mines.DefaultCols),
		Mines:        envInt("RETRODESK_MINES", mines.DefaultMines),
		CanvasWidth:  envInt("RETRODESK_CANVAS_W", 400),
		CanvasHeight: envInt("RETRODESK_CANVAS_H", 300),
		HistoryLimit: envInt("RETRODESK_HISTORY", paint.DefaultHistoryLimit),
		FillLimit:    envInt("RETRODESK_FILL_LIMIT", paint.DefaultFillLimit),
		LayoutPath:   os.Getenv("RETRODESK_LAYOUT"),
		Export:       paint.PNG,
		LogLevel:     log.InfoLevel,
	}
	if s := os.Getenv("RETRODESK_EXPORT"); s != "" {
		f, err := paint.ParseFormat(s)
		if err != nil {
			log.Warnf("RETRODESK_EXPORT: %v, saving as png", err)
		} else {
			cfg.Export = f
		}
	}
	if s := os.Getenv("RETRODESK_LOG_LEVEL"); s != "" {
		level, err := log.ParseLevel(s)
		if err != nil {
			log.Warnf("RETRODESK_LOG_LEVEL: %v", err)
		} else {
			cfg.LogLevel = level
		}
	}
	return cfg
}

func envInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		log.Debugf("Defaulting %s to %d", key, def)
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		log.Warnf("%s=%q is not a number, defaulting to %d", key, s, def)
		return def
	}
	return v
}

// LoadLayout reads a fixed mine layout, e.g. "data/layout.txt".
func LoadLayout(path string) (*mines.Layout, error) {
	file, err := ebitenutil.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return mines.ReadLayout(file)
}
