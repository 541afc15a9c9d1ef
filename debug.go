package easel

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and scene metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	drawTime   time.Duration
	layoutTime time.Duration
	emitTime   time.Duration

	objectCount      int
	segmentCount     int
	opCount          int
	labelsPlaced     int
	labelsSuppressed int
}

// debugLog prints timing and scene stats to stderr.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	total := stats.drawTime + stats.layoutTime + stats.emitTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[easel] draw: %v | layout: %v | emit: %v | total: %v\n",
		stats.drawTime, stats.layoutTime, stats.emitTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[easel] objects: %d | segments: %d | ops: %d | labels: %d placed, %d suppressed\n",
		stats.objectCount, stats.segmentCount, stats.opCount,
		stats.labelsPlaced, stats.labelsSuppressed)
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(o *Object) {
	depth := 0
	for p := o; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[easel] warning: tree depth %d exceeds %d (object %q)\n",
			depth, debugMaxTreeDepth, o.Name)
	}
}

// debugCheckChildCount warns on stderr if an object has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(o *Object) {
	if len(o.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[easel] warning: object %q has %d children (threshold %d)\n",
			o.Name, len(o.children), debugMaxChildCount)
	}
}
