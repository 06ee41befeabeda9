package core

import (
	"fmt"
	"strings"
)

type SubjectName = string

const (
	DefaultEventsSubjectBase SubjectName = "tally.events"
	DefaultBallotSubjectBase SubjectName = "tally.ballots"
)

type Candidate int

const (
	None Candidate = iota
	CandidateA
	CandidateB
)

func ParseCandidate(s string) (Candidate, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return CandidateA, nil
	case "B":
		return CandidateB, nil
	default:
		return None, fmt.Errorf("%w: %q", ErrInvalidCandidate, s)
	}
}

func (c Candidate) Valid() bool {
	return c == CandidateA || c == CandidateB
}

func (c Candidate) String() string {
	switch c {
	case CandidateA:
		return "A"
	case CandidateB:
		return "B"
	case None:
		return "none"
	default:
		return fmt.Sprintf("Candidate(%d)", int(c))
	}
}

func (c Candidate) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Candidate) UnmarshalText(text []byte) error {
	if strings.EqualFold(string(text), "none") || len(text) == 0 {
		*c = None

		return nil
	}

	parsed, err := ParseCandidate(string(text))
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}

type EventKind string

const (
	EventVoteCast             EventKind = "vote_cast"
	EventElectionCompleted    EventKind = "election_completed"
	EventCandidateRenamed     EventKind = "candidate_renamed"
	EventElectionReset        EventKind = "election_reset"
	EventElectionReconfigured EventKind = "election_reconfigured"
)
