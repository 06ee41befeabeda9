package clock

import (
	"math"
	"sync/atomic"

	"github.com/zhulik/tally/internal/core"
)

// Manual is a clock moved explicitly by its owner.
type Manual struct {
	tick atomic.Uint64
}

func NewManual(start core.Tick) *Manual {
	m := &Manual{}
	m.tick.Store(uint64(start))

	return m
}

func (m *Manual) Now() core.Tick {
	return core.Tick(m.tick.Load())
}

// Set moves the clock to tick. Moving backwards is ignored.
func (m *Manual) Set(tick core.Tick) core.Tick {
	for {
		current := m.tick.Load()
		if uint64(tick) <= current {
			return core.Tick(current)
		}

		if m.tick.CompareAndSwap(current, uint64(tick)) {
			return tick
		}
	}
}

// Advance moves the clock forward by ticks, saturating at math.MaxUint64.
func (m *Manual) Advance(ticks uint64) core.Tick {
	for {
		current := m.tick.Load()

		next := current + ticks
		if next < current {
			next = math.MaxUint64
		}

		if m.tick.CompareAndSwap(current, next) {
			return core.Tick(next)
		}
	}
}
