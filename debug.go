package bounce

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and tree size. Only populated when
// Model.debug is true.
type debugStats struct {
	moveTime   time.Duration
	paintTime  time.Duration
	shapeCount int
}

// debugLog prints timing stats to stderr.
func (m *Model) debugLog(stats debugStats) {
	if !m.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[bounce] move: %v | paint: %v | total: %v | shapes: %d\n",
		stats.moveTime, stats.paintTime, stats.moveTime+stats.paintTime, stats.shapeCount)
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(s *Shape) {
	depth := 0
	for p := s; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[bounce] warning: tree depth %d exceeds %d (shape %v)\n",
			depth, debugMaxTreeDepth, s)
	}
}

// debugCheckChildCount warns on stderr if a nesting shape has more than 1000
// children.
const debugMaxChildCount = 1000

func debugCheckChildCount(s *Shape) {
	if len(s.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[bounce] warning: shape %v has %d children (threshold %d)\n",
			s, len(s.children), debugMaxChildCount)
	}
}

// countShapes returns the number of shapes in the subtree rooted at s,
// including s.
func countShapes(s *Shape) int {
	n := 1
	for _, c := range s.children {
		n += countShapes(c)
	}
	return n
}
