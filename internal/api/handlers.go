package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zhulik/tally/internal/clock"
	"github.com/zhulik/tally/internal/core"
	"github.com/zhulik/tally/internal/identity"
	"github.com/zhulik/tally/pkg/json"
)

type voteRequest struct {
	Candidate string `json:"candidate"`
}

type candidateNameRequest struct {
	Name string `json:"name"`
}

type reconfigureRequest struct {
	CandidateA    string `json:"candidateA"`
	CandidateB    string `json:"candidateB"`
	ExpectedVotes uint64 `json:"expectedVotes"`
}

type advanceRequest struct {
	Ticks uint64 `json:"ticks"`
}

func (s *Server) SnapshotHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.election.Snapshot())
}

func (s *Server) VoterHandler(c *gin.Context) {
	index, err := strconv.ParseUint(c.Param("index"), 10, 64)
	if err != nil {
		abortWithError(c, fmt.Errorf("%w: index %q", ErrBadRequest, c.Param("index")))

		return
	}

	voter, err := s.election.Voter(index)
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"index": index, "identity": voter})
}

func (s *Server) VoteLookupHandler(c *gin.Context) {
	id := identity.Normalize(c.Param("identity"))

	c.JSON(http.StatusOK, gin.H{
		"identity": id,
		"hasVoted": s.election.HasVoted(id),
		"votedFor": s.election.VotedFor(id),
	})
}

func (s *Server) VoteHandler(c *gin.Context) {
	req, err := decode[voteRequest](c)
	if err != nil {
		abortWithError(c, err)

		return
	}

	candidate, err := core.ParseCandidate(req.Candidate)
	if err != nil {
		abortWithError(c, err)

		return
	}

	s.vote(c, candidate)
}

func (s *Server) VoteForHandler(candidate core.Candidate) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.vote(c, candidate)
	}
}

func (s *Server) vote(c *gin.Context, candidate core.Candidate) {
	voter, _ := identity.FromContext(c)

	err := s.election.Vote(c.Request.Context(), candidate, voter)
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, s.election.Snapshot())
}

func (s *Server) CandidateNameHandler(c *gin.Context) {
	which, err := core.ParseCandidate(c.Param("which"))
	if err != nil {
		abortWithError(c, err)

		return
	}

	req, err := decode[candidateNameRequest](c)
	if err != nil {
		abortWithError(c, err)

		return
	}

	caller, _ := identity.FromContext(c)

	err = s.election.SetCandidateName(c.Request.Context(), which, req.Name, caller)
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, s.election.Snapshot())
}

func (s *Server) ResetHandler(c *gin.Context) {
	caller, _ := identity.FromContext(c)

	err := s.election.Reset(c.Request.Context(), caller, s.clock.Now())
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, s.election.Snapshot())
}

func (s *Server) ReconfigureHandler(c *gin.Context) {
	req, err := decode[reconfigureRequest](c)
	if err != nil {
		abortWithError(c, err)

		return
	}

	caller, _ := identity.FromContext(c)

	err = s.election.Reconfigure(c.Request.Context(), caller, req.CandidateA, req.CandidateB, req.ExpectedVotes)
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, s.election.Snapshot())
}

// AdvanceClockHandler moves a manual clock forward. Owner only.
func (s *Server) AdvanceClockHandler(c *gin.Context) {
	manual, ok := s.clock.(*clock.Manual)
	if !ok {
		abortWithError(c, core.ErrClockNotManual)

		return
	}

	caller, _ := identity.FromContext(c)
	if caller != s.election.Owner() {
		abortWithError(c, core.ErrNotOwner)

		return
	}

	req, err := decode[advanceRequest](c)
	if err != nil {
		abortWithError(c, err)

		return
	}

	if req.Ticks == 0 {
		req.Ticks = 1
	}

	c.JSON(http.StatusOK, gin.H{"tick": manual.Advance(req.Ticks)})
}

func decode[T any](c *gin.Context) (T, error) {
	var zero T

	body, err := c.GetRawData()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	if len(body) == 0 {
		return zero, nil
	}

	req, err := json.Unmarshal[T](body)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	return req, nil
}
