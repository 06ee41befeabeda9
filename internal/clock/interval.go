package clock

import (
	"sync"
	"time"

	"github.com/zhulik/tally/internal/core"
)

// Interval counts ticks elapsed since Genesis, one tick per Every, like a block height.
type Interval struct {
	Genesis time.Time
	Every   time.Duration

	// Source returns the wall time, time.Now when nil.
	Source func() time.Time

	mu   sync.Mutex
	last core.Tick
}

func NewInterval(genesis time.Time, every time.Duration) *Interval {
	if every <= 0 {
		every = core.DefaultTickInterval
	}

	return &Interval{
		Genesis: genesis,
		Every:   every,
	}
}

// Now never returns a value lower than a previously returned one, even if the wall clock goes back.
func (i *Interval) Now() core.Tick {
	i.mu.Lock()
	defer i.mu.Unlock()

	source := i.Source
	if source == nil {
		source = time.Now
	}

	every := i.Every
	if every <= 0 {
		every = core.DefaultTickInterval
	}

	elapsed := source().Sub(i.Genesis)

	var tick core.Tick
	if elapsed > 0 {
		tick = core.Tick(elapsed / every)
	}

	if tick < i.last {
		return i.last
	}

	i.last = tick

	return tick
}
