package metrics

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/zhulik/tally/internal/core"
)

const namespace = "tally"

var reasons = map[error]string{ //nolint:gochecknoglobals
	core.ErrAlreadyVoted:      "already_voted",
	core.ErrElectionCompleted: "election_completed",
	core.ErrInvalidCandidate:  "invalid_candidate",
	core.ErrNotOwner:          "not_owner",
	core.ErrElectionActive:    "election_active",
	core.ErrElectionLocked:    "election_locked",
	core.ErrAlreadyReset:      "already_reset",
	core.ErrNotInLimbo:        "not_in_limbo",
	core.ErrIdentityMissing:   "identity_missing",
}

// Metrics tracks accepted votes, rejected operations and the election phase.
type Metrics struct {
	votes      *prometheus.CounterVec
	rejections *prometheus.CounterVec
	resets     prometheus.Counter
	active     prometheus.Gauge
	completed  prometheus.Gauge
}

func New(registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		votes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "votes_total",
			Help:      "Number of accepted votes per candidate",
		}, []string{"candidate"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejections_total",
			Help:      "Number of rejected operations per operation and reason",
		}, []string{"operation", "reason"}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resets_total",
			Help:      "Number of successful election resets",
		}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active",
			Help:      "1 while the election accepts votes",
		}),
		completed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "completed",
			Help:      "1 once the election is completed",
		}),
	}

	for _, collector := range []prometheus.Collector{m.votes, m.rejections, m.resets, m.active, m.completed} {
		if err := registerer.Register(collector); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}

	m.active.Set(1)

	return m, nil
}

func (m *Metrics) OnEvent(_ context.Context, event core.Event) {
	switch event.Kind {
	case core.EventVoteCast:
		m.votes.WithLabelValues(event.Candidate.String()).Inc()
	case core.EventElectionCompleted:
		m.active.Set(0)
		m.completed.Set(1)
	case core.EventElectionReset:
		m.resets.Inc()
		m.completed.Set(0)
	case core.EventElectionReconfigured:
		m.active.Set(1)
	case core.EventCandidateRenamed:
	}
}

func (m *Metrics) OnRejected(operation string, err error) {
	m.rejections.WithLabelValues(operation, Reason(err)).Inc()
}

// Reason maps an error to a low-cardinality label value.
func Reason(err error) string {
	for target, reason := range reasons {
		if errors.Is(err, target) {
			return reason
		}
	}

	return "other"
}
