package testhelpers

import (
	"io"

	"github.com/samber/do"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/tally/internal/config"
	"github.com/zhulik/tally/internal/core"
	"github.com/zhulik/tally/internal/di"
)

const Owner core.Identity = "owner"

func NewConfig() config.Config {
	return config.Config{
		Loglevel:        "warn",
		CandidateA:      "Alice",
		CandidateB:      "Bob",
		ExpectedVotes_:  2,
		Owner_:          string(Owner),
		IdentityHeader_: core.DefaultIdentityHeader,
		TickMode_:       core.TickModeManual,
		EventsSubject_:  core.DefaultEventsSubjectBase,
		BallotSubject_:  core.DefaultBallotSubjectBase,
	}
}

// NewInjector builds an injector with a silent logger and a static config. NATS is disabled unless cfg sets NatsURL.
func NewInjector(cfgs ...config.Config) *do.Injector {
	cfg := NewConfig()
	if len(cfgs) > 0 {
		cfg = cfgs[0]
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	injector := do.New()
	do.ProvideValue[core.Config](injector, cfg)
	do.ProvideValue[logrus.FieldLogger](injector, logger)

	di.RegisterServices(injector)

	return injector
}
