package election

import (
	"github.com/samber/do"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/tally/internal/core"
	"github.com/zhulik/tally/internal/metrics"
	"github.com/zhulik/tally/internal/pubsub/nats"
)

func Register(injector *do.Injector) {
	do.Provide(injector, NewFromInjector)
}

func NewFromInjector(injector *do.Injector) (*Election, error) {
	config, err := do.Invoke[core.Config](injector)
	if err != nil {
		return nil, err
	}

	logger, err := do.Invoke[logrus.FieldLogger](injector)
	if err != nil {
		return nil, err
	}

	logger = logger.WithField("component", "election.Election")

	clock, err := do.Invoke[core.Clock](injector)
	if err != nil {
		return nil, err
	}

	m, err := do.Invoke[*metrics.Metrics](injector)
	if err != nil {
		return nil, err
	}

	logListener := LogListener{Logger: logger}

	opts := []Option{
		WithListener(logListener),
		WithRejectionRecorder(logListener),
		WithListener(m),
		WithRejectionRecorder(m),
	}

	if config.NATSEnabled() {
		publisher, err := do.Invoke[*nats.Publisher](injector)
		if err != nil {
			return nil, err
		}

		opts = append(opts, WithListener(publisher))
	}

	elect, err := New(Params{
		CandidateAName: config.CandidateAName(),
		CandidateBName: config.CandidateBName(),
		ExpectedVotes:  config.ExpectedVotes(),
		Owner:          config.Owner(),
	}, clock, opts...)
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"owner":         config.Owner(),
		"expectedVotes": config.ExpectedVotes(),
	}).Info("Election created")

	return elect, nil
}
