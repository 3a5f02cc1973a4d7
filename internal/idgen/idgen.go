// Package idgen generates receipt numbers from a millisecond timestamp and a
// per-millisecond sequence. State is explicit and mutex-guarded so generators
// are safe for concurrent use and tests can inject a clock.
package idgen

import (
	"fmt"
	"sync"
	"time"
)

// Generator hands out strictly increasing receipt numbers.
type Generator struct {
	mu     sync.Mutex
	lastMs int64
	seq    int64
	now    func() time.Time
}

// New builds a generator backed by the wall clock.
func New() *Generator {
	return &Generator{now: time.Now}
}

// WithClock overrides the time source, for tests.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Next returns the next receipt number. Within one millisecond the sequence
// increments; a clock that stands still or runs backwards never produces a
// duplicate because the last observed timestamp is used as a floor.
func (g *Generator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms < g.lastMs {
		ms = g.lastMs
	}
	if ms == g.lastMs {
		g.seq++
		if g.seq > 9999 {
			// sequence space exhausted for this millisecond; move on
			g.lastMs++
			g.seq = 0
			ms = g.lastMs
		}
	} else {
		g.lastMs = ms
		g.seq = 0
	}

	return fmt.Sprintf("R%d-%04d", ms, g.seq)
}
