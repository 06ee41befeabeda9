package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/zhulik/tally/internal/core"
)

type Config struct {
	HttpPort int    `env:"HTTP_PORT" envDefault:"8080"` //nolint:stylecheck
	Loglevel string `env:"LOG_LEVEL" envDefault:"info"`

	NatsURL string `env:"NATS_URL"`

	CandidateA      string `env:"CANDIDATE_A"`
	CandidateB      string `env:"CANDIDATE_B"`
	ExpectedVotes_  uint64 `env:"EXPECTED_VOTES"`
	Owner_          string `env:"OWNER,required,notEmpty"`
	IdentityHeader_ string `env:"IDENTITY_HEADER" envDefault:"X-Voter-Id"`

	TickMode_     string        `env:"TICK_MODE" envDefault:"interval"`
	TickInterval_ time.Duration `env:"TICK_INTERVAL" envDefault:"1s"`

	EventsSubject_ string `env:"EVENTS_SUBJECT" envDefault:"tally.events"`
	BallotSubject_ string `env:"BALLOT_SUBJECT" envDefault:"tally.ballots"`
}

func Parse() (Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

func (c Config) HTTPPort() int {
	return c.HttpPort
}

func (c Config) LogLevel() string {
	return c.Loglevel
}

func (c Config) NATSURL() string {
	return c.NatsURL
}

// NATSEnabled is false when no NATS URL is configured, the service then runs HTTP only.
func (c Config) NATSEnabled() bool {
	return c.NatsURL != ""
}

func (c Config) CandidateAName() string {
	return c.CandidateA
}

func (c Config) CandidateBName() string {
	return c.CandidateB
}

func (c Config) ExpectedVotes() uint64 {
	return c.ExpectedVotes_
}

func (c Config) Owner() core.Identity {
	return core.Identity(c.Owner_)
}

func (c Config) IdentityHeader() string {
	if c.IdentityHeader_ == "" {
		return core.DefaultIdentityHeader
	}

	return c.IdentityHeader_
}

func (c Config) TickMode() string {
	return c.TickMode_
}

func (c Config) TickInterval() time.Duration {
	if c.TickInterval_ <= 0 {
		return core.DefaultTickInterval
	}

	return c.TickInterval_
}

func (c Config) EventsSubject() core.SubjectName {
	if c.EventsSubject_ == "" {
		return core.DefaultEventsSubjectBase
	}

	return c.EventsSubject_
}

func (c Config) BallotSubject() core.SubjectName {
	if c.BallotSubject_ == "" {
		return core.DefaultBallotSubjectBase
	}

	return c.BallotSubject_
}
