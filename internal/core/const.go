package core

import (
	"time"
)

const (
	// ResetDelay is the number of ticks that must pass after completion before the owner may reset.
	ResetDelay Tick = 10

	DefaultIdentityHeader = "X-Voter-Id"
	DefaultTickInterval   = time.Second

	EventsStreamName  = "tally-events"
	BallotsStreamName = "tally-ballots"
	BallotsConsumer   = "tally-ballotbox"

	TickModeInterval = "interval"
	TickModeManual   = "manual"
)
