package core

import (
	"context"
	"net/http"
	"time"

	"github.com/samber/do"
)

type ServiceDependency interface {
	do.Healthcheckable
	do.Shutdownable
}

type Config interface {
	HTTPPort() int
	LogLevel() string

	NATSURL() string
	NATSEnabled() bool

	CandidateAName() string
	CandidateBName() string
	ExpectedVotes() uint64
	Owner() Identity

	IdentityHeader() string

	TickMode() string
	TickInterval() time.Duration

	EventsSubject() SubjectName
	BallotSubject() SubjectName
}

type Clock interface {
	Now() Tick
}

type IdentitySource interface {
	Resolve(r *http.Request) (Identity, error)
}

type EventListener interface {
	OnEvent(ctx context.Context, event Event)
}

// RejectionRecorder is notified about every operation the election refused.
type RejectionRecorder interface {
	OnRejected(operation string, err error)
}

// Message is a message received from a pubsub system.
type Message interface {
	Subject() string
	Data() []byte
	Headers() map[string][]string
	Ack() error
	Nak() error
}

type Subscription interface {
	C() <-chan Message
	Stop()
}

type Subscriber interface {
	ServiceDependency

	Subscribe(ctx context.Context, streamName string, subjects []string, durableName string) (Subscription, error)
}
