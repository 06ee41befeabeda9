package ballotbox

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/samber/do"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/tally/internal/core"
	"github.com/zhulik/tally/internal/election"
	"github.com/zhulik/tally/internal/identity"
	"github.com/zhulik/tally/internal/pubsub/nats"
	"github.com/zhulik/tally/pkg/json"
)

var ErrStopped = errors.New("stopped")

// Rejections are final: redelivering them would be refused again.
var rejections = []error{
	core.ErrAlreadyVoted,
	core.ErrElectionCompleted,
	core.ErrInvalidCandidate,
	core.ErrIdentityMissing,
}

type Voter interface {
	Vote(ctx context.Context, candidate core.Candidate, voter core.Identity) error
}

// Worker applies ballots received from the message bus to the election.
type Worker struct {
	voter      Voter
	subscriber core.Subscriber
	subjects   []string
	logger     logrus.FieldLogger

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewWorker(injector *do.Injector) (*Worker, error) {
	config, err := do.Invoke[core.Config](injector)
	if err != nil {
		return nil, err
	}

	logger, err := do.Invoke[logrus.FieldLogger](injector)
	if err != nil {
		return nil, err
	}

	elect, err := do.Invoke[*election.Election](injector)
	if err != nil {
		return nil, err
	}

	subscriber, err := do.Invoke[core.Subscriber](injector)
	if err != nil {
		return nil, err
	}

	return New(elect, subscriber, config.BallotSubject(), logger), nil
}

func New(voter Voter, subscriber core.Subscriber, subjectBase core.SubjectName, logger logrus.FieldLogger) *Worker {
	return &Worker{
		voter:      voter,
		subscriber: subscriber,
		subjects:   []string{nats.BallotSubjectName(subjectBase)},
		logger:     logger.WithField("component", "ballotbox.Worker"),
	}
}

// Run consumes ballots until ctx is cancelled or Shutdown is called. Always returns a non-nil error.
func (w *Worker) Run(ctx context.Context) error {
	w.mu.Lock()
	ctx, w.cancel = context.WithCancel(ctx)
	w.mu.Unlock()

	sub, err := w.subscriber.Subscribe(ctx, core.BallotsStreamName, w.subjects, core.BallotsConsumer)
	if err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}
	defer sub.Stop()

	w.logger.Info("Ballot box started.")
	defer w.logger.Info("Ballot box stopped.")

	for {
		select {
		case <-ctx.Done():
			return ErrStopped
		case msg, ok := <-sub.C():
			if !ok {
				return ErrStopped
			}

			w.Handle(ctx, msg)
		}
	}
}

// Handle applies a single ballot message and settles it.
func (w *Worker) Handle(ctx context.Context, msg core.Message) {
	logger := w.logger.WithField("subject", msg.Subject())

	ballot, err := json.Unmarshal[core.Ballot](msg.Data())
	if err != nil {
		logger.WithError(err).Warn("Dropping malformed ballot")
		w.ack(logger, msg)

		return
	}

	ballot.Voter = identity.Normalize(string(ballot.Voter))

	logger = logger.WithFields(logrus.Fields{
		"ballotID": ballot.ID,
		"voter":    ballot.Voter,
	})

	err = w.voter.Vote(ctx, ballot.Candidate, ballot.Voter)

	switch {
	case err == nil:
		logger.WithField("candidate", ballot.Candidate).Debug("Ballot counted")
		w.ack(logger, msg)
	case IsRejection(err):
		logger.WithError(err).Info("Ballot rejected")
		w.ack(logger, msg)
	default:
		logger.WithError(err).Error("Failed to apply ballot")

		err = msg.Nak()
		if err != nil {
			logger.WithError(err).Error("Failed to nak ballot")
		}
	}
}

func (w *Worker) ack(logger logrus.FieldLogger, msg core.Message) {
	err := msg.Ack()
	if err != nil {
		logger.WithError(err).Error("Failed to ack ballot")
	}
}

func (w *Worker) HealthCheck() error {
	return nil
}

func (w *Worker) Shutdown() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cancel != nil {
		w.cancel()
	}

	return nil
}

func IsRejection(err error) bool {
	return lo.ContainsBy(rejections, func(target error) bool {
		return errors.Is(err, target)
	})
}
