package paint

import (
	log "github.com/sirupsen/logrus"
)

const DefaultHistoryLimit = 20

// History is a bounded linear undo list of pixel snapshots.
// Pushing after an undo drops everything past the cursor.
type History struct {
	limit     int
	snapshots [][]byte
	step      int
}

func NewHistory(limit int) *History {
	if limit < 1 {
		limit = 1
	}
	return &History{
		limit:     limit,
		snapshots: make([][]byte, 0, limit),
		step:      -1,
	}
}

// Push stores a private copy of pix as the newest snapshot.
func (h *History) Push(pix []byte) {
	h.step++
	if h.step < len(h.snapshots) {
		h.snapshots = h.snapshots[:h.step]
	}
	snap := make([]byte, len(pix))
	copy(snap, pix)
	h.snapshots = append(h.snapshots, snap)

	if len(h.snapshots) > h.limit {
		copy(h.snapshots, h.snapshots[1:])
		h.snapshots[len(h.snapshots)-1] = nil
		h.snapshots = h.snapshots[:len(h.snapshots)-1]
		h.step--
		log.WithField("limit", h.limit).Debug("oldest snapshot evicted")
	}
}

// Undo moves the cursor back and returns the snapshot to restore.
// The returned slice must not be modified.
func (h *History) Undo() ([]byte, bool) {
	if h.step <= 0 {
		return nil, false
	}
	h.step--
	return h.snapshots[h.step], true
}

// Redo moves the cursor forward over a snapshot left behind by Undo.
func (h *History) Redo() ([]byte, bool) {
	if h.step+1 >= len(h.snapshots) {
		return nil, false
	}
	h.step++
	return h.snapshots[h.step], true
}

func (h *History) Len() int {
	return len(h.snapshots)
}

// Step is the index of the snapshot currently shown.
func (h *History) Step() int {
	return h.step
}

func (h *History) Limit() int {
	return h.limit
}
