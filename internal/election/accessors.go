package election

import (
	"fmt"

	"github.com/zhulik/tally/internal/core"
)

func (e *Election) Owner() core.Identity {
	return e.owner
}

func (e *Election) CandidateAName() string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.candidateAName
}

func (e *Election) CandidateBName() string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.candidateBName
}

func (e *Election) ExpectedVotes() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.expectedVotes
}

func (e *Election) ATotal() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.aTotal
}

func (e *Election) BTotal() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.bTotal
}

func (e *Election) TotalVotes() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.totalVotes
}

func (e *Election) Active() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.active
}

func (e *Election) Completed() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.completed
}

func (e *Election) Winner() core.Candidate {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.winner
}

func (e *Election) Limbo() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.limbo
}

func (e *Election) ResetBlockNumber() core.Tick {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.resetBlockNumber
}

func (e *Election) HasVoted(id core.Identity) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	_, ok := e.votedFor[id]

	return ok
}

// VotedFor returns core.None for identities that did not vote.
func (e *Election) VotedFor(id core.Identity) core.Candidate {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.votedFor[id]
}

func (e *Election) GetVote(id core.Identity) core.Candidate {
	return e.VotedFor(id)
}

// Voter returns the identity that cast the vote number index, in cast order.
func (e *Election) Voter(index uint64) (core.Identity, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if index >= e.totalVotes {
		return "", fmt.Errorf("%w: %d >= %d", core.ErrIndexOutOfRange, index, e.totalVotes)
	}

	return e.voters[index], nil
}

func (e *Election) Snapshot() core.Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	voters := make([]core.Identity, len(e.voters))
	copy(voters, e.voters)

	return core.Snapshot{
		Tally:            e.tally(),
		Owner:            e.owner,
		Active:           e.active,
		Completed:        e.completed,
		Winner:           e.winner,
		ResetBlockNumber: e.resetBlockNumber,
		Limbo:            e.limbo,
		Voters:           voters,
	}
}
