package api

import (
	"errors"
	"net/http"

	"github.com/zhulik/tally/internal/core"
)

var ErrBadRequest = errors.New("bad request")

var statuses = []struct {
	err    error
	status int
}{
	{core.ErrIdentityMissing, http.StatusUnauthorized},
	{core.ErrNotOwner, http.StatusForbidden},
	{core.ErrElectionLocked, http.StatusLocked},
	{core.ErrAlreadyVoted, http.StatusConflict},
	{core.ErrElectionCompleted, http.StatusConflict},
	{core.ErrAlreadyReset, http.StatusConflict},
	{core.ErrNotInLimbo, http.StatusConflict},
	{core.ErrElectionActive, http.StatusConflict},
	{core.ErrClockNotManual, http.StatusConflict},
	{core.ErrIndexOutOfRange, http.StatusNotFound},
	{core.ErrInvalidCandidate, http.StatusBadRequest},
	{ErrBadRequest, http.StatusBadRequest},
}

// StatusFor maps a domain error to an HTTP status. Zero means the error is not a domain error.
func StatusFor(err error) int {
	for _, s := range statuses {
		if errors.Is(err, s.err) {
			return s.status
		}
	}

	return 0
}
