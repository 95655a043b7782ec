package hotkey_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	. "github.com/zucenko/retrodesk/hotkey"
)

func TestSequence(t *testing.T) {
	base := time.Date(2020, 5, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name   string
		offset []time.Duration
		want   []bool
	}{
		{
			name:   "three quick presses",
			offset: []time.Duration{0, 300 * time.Millisecond, 600 * time.Millisecond},
			want:   []bool{false, false, true},
		},
		{
			name:   "gap too long",
			offset: []time.Duration{0, 500 * time.Millisecond, 3 * time.Second, 3500 * time.Millisecond, 4 * time.Second},
			want:   []bool{false, false, false, false, true},
		},
		{
			name:   "window measured between presses",
			offset: []time.Duration{0, 1900 * time.Millisecond, 3800 * time.Millisecond},
			want:   []bool{false, false, true},
		},
		{
			name:   "restarts after firing",
			offset: []time.Duration{0, 100 * time.Millisecond, 200 * time.Millisecond, 300 * time.Millisecond},
			want:   []bool{false, false, true, false},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := NewSequence(DefaultPresses, DefaultWindow)
			for i, off := range test.offset {
				assert.Equal(t, test.want[i], s.Press(base.Add(off)), "press %d", i)
			}
		})
	}
}

func TestPending(t *testing.T) {
	s := NewSequence(3, time.Second)
	now := time.Now()
	s.Press(now)
	s.Press(now.Add(10 * time.Millisecond))
	assert.Equal(t, 2, s.Pending())
}
