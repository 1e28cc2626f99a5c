package pointer

import (
	"math"
	"time"
)

// Default click detection thresholds.
const (
	DefaultDoubleClickTime     = 400 * time.Millisecond
	DefaultDoubleClickDistance = 4
)

// ClickTracker counts consecutive clicks. It is not safe for concurrent use.
type ClickTracker struct {
	MaxTime     time.Duration
	MaxDistance float64

	lastX, lastY float64
	lastTime     time.Time
	count        int
}

// NewClickTracker creates a tracker with the default thresholds.
func NewClickTracker() *ClickTracker {
	return &ClickTracker{MaxTime: DefaultDoubleClickTime, MaxDistance: DefaultDoubleClickDistance}
}

// Record registers a primary press and returns the click count, 1 for a
// single click and 2 for a double click. Counting restarts after 2.
func (t *ClickTracker) Record(e Event) int {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	if t.inSequence(e.X, e.Y, ts) && t.count < 2 {
		t.count++
	} else {
		t.count = 1
	}
	t.lastX, t.lastY, t.lastTime = e.X, e.Y, ts
	return t.count
}

func (t *ClickTracker) inSequence(x, y float64, ts time.Time) bool {
	if t.count == 0 || t.lastTime.IsZero() {
		return false
	}
	elapsed := ts.Sub(t.lastTime)
	if elapsed < 0 || elapsed > t.MaxTime {
		return false
	}
	// Manhattan distance, as for text selection clicks.
	return math.Abs(x-t.lastX)+math.Abs(y-t.lastY) <= t.MaxDistance
}

// Reset forgets the previous clicks.
func (t *ClickTracker) Reset() {
	t.count = 0
	t.lastTime = time.Time{}
}
