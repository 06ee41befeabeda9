package core

import (
	"errors"
)

var (
	// Voting errors.
	ErrAlreadyVoted      = errors.New("already voted")
	ErrElectionCompleted = errors.New("election is completed")
	ErrInvalidCandidate  = errors.New("invalid candidate")

	// Ownership and lifecycle errors.
	ErrNotOwner       = errors.New("caller is not the owner")
	ErrInvalidOwner   = errors.New("owner must not be empty")
	ErrElectionActive = errors.New("election is active")
	ErrElectionLocked = errors.New("election is locked")
	ErrAlreadyReset   = errors.New("election already reset")
	ErrNotInLimbo     = errors.New("election is not in limbo")

	// Read errors.
	ErrIndexOutOfRange = errors.New("index out of range")

	// Transport errors.
	ErrIdentityMissing = errors.New("caller identity missing")
	ErrClockNotManual  = errors.New("clock is not manual")
)
