package election

import (
	"context"
	"fmt"
	"sync"

	"github.com/zhulik/tally/internal/core"
)

const (
	OperationVote             = "vote"
	OperationSetCandidateName = "set_candidate_name"
	OperationReset            = "reset"
	OperationReconfigure      = "reconfigure"
)

type Params struct {
	CandidateAName string
	CandidateBName string
	ExpectedVotes  uint64
	Owner          core.Identity
}

// Election is a two-candidate tally. All state is guarded by a single lock,
// every operation is applied atomically or not at all.
type Election struct {
	clock     core.Clock
	listeners []core.EventListener
	recorders []core.RejectionRecorder

	mu sync.RWMutex
	// dispatchMu is taken before mu is released, events reach listeners in commit order.
	dispatchMu sync.Mutex

	owner core.Identity

	candidateAName string
	candidateBName string
	expectedVotes  uint64

	aTotal     uint64
	bTotal     uint64
	totalVotes uint64

	// Presence of a key is the "has voted" membership.
	votedFor map[core.Identity]core.Candidate
	voters   []core.Identity

	active           bool
	completed        bool
	winner           core.Candidate
	resetBlockNumber core.Tick
	limbo            bool
}

func New(params Params, clock core.Clock, opts ...Option) (*Election, error) {
	if params.Owner == "" {
		return nil, core.ErrInvalidOwner
	}

	election := &Election{
		clock:          clock,
		owner:          params.Owner,
		candidateAName: params.CandidateAName,
		candidateBName: params.CandidateBName,
		expectedVotes:  params.ExpectedVotes,
		votedFor:       map[core.Identity]core.Candidate{},
		active:         true,
	}

	for _, opt := range opts {
		opt(election)
	}

	return election, nil
}

func (e *Election) VoteA(ctx context.Context, voter core.Identity) error {
	return e.Vote(ctx, core.CandidateA, voter)
}

func (e *Election) VoteB(ctx context.Context, voter core.Identity) error {
	return e.Vote(ctx, core.CandidateB, voter)
}

// Vote records a single vote. The vote that reaches the expected number of votes
// completes the election in the same step.
func (e *Election) Vote(ctx context.Context, candidate core.Candidate, voter core.Identity) error {
	events, err := e.vote(candidate, voter)

	return e.finish(ctx, OperationVote, events, err)
}

func (e *Election) vote(candidate core.Candidate, voter core.Identity) ([]core.Event, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.active || e.completed {
		return nil, core.ErrElectionCompleted
	}

	if !candidate.Valid() {
		return nil, fmt.Errorf("%w: %s", core.ErrInvalidCandidate, candidate)
	}

	if voter == "" {
		return nil, core.ErrIdentityMissing
	}

	if _, voted := e.votedFor[voter]; voted {
		return nil, fmt.Errorf("%w: %s", core.ErrAlreadyVoted, voter)
	}

	e.votedFor[voter] = candidate
	e.voters = append(e.voters, voter)

	if candidate == core.CandidateA {
		e.aTotal++
	} else {
		e.bTotal++
	}

	e.totalVotes++

	tick := e.clock.Now()

	cast := core.NewEvent(core.EventVoteCast, tick, voter, e.tally())
	cast.Candidate = candidate

	if e.expectedVotes == 0 || e.totalVotes != e.expectedVotes {
		return e.commit(cast), nil
	}

	e.complete(tick)

	completed := core.NewEvent(core.EventElectionCompleted, tick, voter, e.tally())
	completed.Winner = e.winner

	return e.commit(cast, completed), nil
}

// complete must be called with the lock held.
func (e *Election) complete(tick core.Tick) {
	e.completed = true
	e.active = false
	e.resetBlockNumber = tick

	switch {
	case e.aTotal > e.bTotal:
		e.winner = core.CandidateA
	case e.bTotal > e.aTotal:
		e.winner = core.CandidateB
	default:
		// A tie has no winner.
		e.winner = core.None
	}
}

func (e *Election) SetCandidateName(ctx context.Context, which core.Candidate, name string, caller core.Identity) error {
	events, err := e.setCandidateName(which, name, caller)

	return e.finish(ctx, OperationSetCandidateName, events, err)
}

func (e *Election) setCandidateName(which core.Candidate, name string, caller core.Identity) ([]core.Event, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != e.owner {
		return nil, core.ErrNotOwner
	}

	switch which {
	case core.CandidateA:
		e.candidateAName = name
	case core.CandidateB:
		e.candidateBName = name
	default:
		return nil, fmt.Errorf("%w: %s", core.ErrInvalidCandidate, which)
	}

	event := core.NewEvent(core.EventCandidateRenamed, e.clock.Now(), caller, e.tally())
	event.Candidate = which

	return e.commit(event), nil
}

// Reset wipes a completed election once ResetDelay ticks have passed since completion.
// Only the owner may reset, and only once per completion.
func (e *Election) Reset(ctx context.Context, caller core.Identity, currentTick core.Tick) error {
	events, err := e.reset(caller, currentTick)

	return e.finish(ctx, OperationReset, events, err)
}

func (e *Election) reset(caller core.Identity, currentTick core.Tick) ([]core.Event, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != e.owner {
		return nil, core.ErrNotOwner
	}

	if !e.completed {
		// A reset election is no longer completed, but the reset guard still holds.
		if e.limbo {
			return nil, core.ErrAlreadyReset
		}

		return nil, core.ErrElectionActive
	}

	if currentTick < e.resetBlockNumber || currentTick-e.resetBlockNumber < core.ResetDelay {
		return nil, fmt.Errorf("%w: until tick %d, current %d",
			core.ErrElectionLocked, e.resetBlockNumber+core.ResetDelay, currentTick)
	}

	e.candidateAName = ""
	e.candidateBName = ""
	e.expectedVotes = 0
	e.aTotal = 0
	e.bTotal = 0
	e.totalVotes = 0
	e.votedFor = map[core.Identity]core.Candidate{}
	e.voters = nil
	e.active = false
	e.completed = false
	e.winner = core.None
	e.resetBlockNumber = 0
	e.limbo = true

	return e.commit(core.NewEvent(core.EventElectionReset, currentTick, caller, e.tally())), nil
}

// Reconfigure reopens a reset election with new candidates and a new target.
func (e *Election) Reconfigure(ctx context.Context, caller core.Identity, candidateAName, candidateBName string, expectedVotes uint64) error { //nolint:lll
	events, err := e.reconfigure(caller, candidateAName, candidateBName, expectedVotes)

	return e.finish(ctx, OperationReconfigure, events, err)
}

func (e *Election) reconfigure(caller core.Identity, candidateAName, candidateBName string, expectedVotes uint64) ([]core.Event, error) { //nolint:lll
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != e.owner {
		return nil, core.ErrNotOwner
	}

	if !e.limbo {
		return nil, core.ErrNotInLimbo
	}

	e.candidateAName = candidateAName
	e.candidateBName = candidateBName
	e.expectedVotes = expectedVotes
	e.active = true
	e.limbo = false

	return e.commit(core.NewEvent(core.EventElectionReconfigured, e.clock.Now(), caller, e.tally())), nil
}

// commit must be called with mu held. It takes dispatchMu, finish releases it.
func (e *Election) commit(events ...core.Event) []core.Event {
	e.dispatchMu.Lock()

	return events
}

// finish notifies observers outside of mu. Listeners must not call back into the election.
func (e *Election) finish(ctx context.Context, operation string, events []core.Event, err error) error {
	if err != nil {
		for _, recorder := range e.recorders {
			recorder.OnRejected(operation, err)
		}

		return fmt.Errorf("%s rejected: %w", operation, err)
	}

	defer e.dispatchMu.Unlock()

	for _, event := range events {
		for _, listener := range e.listeners {
			listener.OnEvent(ctx, event)
		}
	}

	return nil
}

// tally must be called with the lock held.
func (e *Election) tally() core.Tally {
	return core.Tally{
		CandidateAName: e.candidateAName,
		CandidateBName: e.candidateBName,
		ExpectedVotes:  e.expectedVotes,
		ATotal:         e.aTotal,
		BTotal:         e.bTotal,
		TotalVotes:     e.totalVotes,
	}
}
