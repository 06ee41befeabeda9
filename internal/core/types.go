package core

import (
	"time"

	"github.com/google/uuid"
)

// Identity is a stable handle of a participant, an account or a public key.
type Identity string

// Tick is a monotonically non-decreasing host counter, like a block height.
type Tick uint64

type Tally struct {
	CandidateAName string `json:"candidateAName"`
	CandidateBName string `json:"candidateBName"`
	ExpectedVotes  uint64 `json:"expectedVotes"`
	ATotal         uint64 `json:"aTotal"`
	BTotal         uint64 `json:"bTotal"`
	TotalVotes     uint64 `json:"totalVotes"`
}

// Snapshot is a consistent copy of the whole election state.
type Snapshot struct {
	Tally

	Owner            Identity   `json:"owner"`
	Active           bool       `json:"active"`
	Completed        bool       `json:"completed"`
	Winner           Candidate  `json:"winner"`
	ResetBlockNumber Tick       `json:"resetBlockNumber"`
	Limbo            bool       `json:"limbo"`
	Voters           []Identity `json:"voters"`
}

type Event struct {
	ID        uuid.UUID `json:"id"`
	Kind      EventKind `json:"kind"`
	Tick      Tick      `json:"tick"`
	Timestamp time.Time `json:"timestamp"`

	Actor     Identity  `json:"actor,omitempty"`
	Candidate Candidate `json:"candidate,omitempty"`
	Winner    Candidate `json:"winner,omitempty"`

	Tally Tally `json:"tally"`
}

func NewEvent(kind EventKind, tick Tick, actor Identity, tally Tally) Event {
	return Event{
		ID:        uuid.New(),
		Kind:      kind,
		Tick:      tick,
		Timestamp: time.Now().UTC(),
		Actor:     actor,
		Tally:     tally,
	}
}

// Ballot is a vote submitted through the message bus.
type Ballot struct {
	ID        string    `json:"id"`
	Voter     Identity  `json:"voter"`
	Candidate Candidate `json:"candidate"`
}
