package ballotbox_test

import (
	"context"
	"sync"

	"github.com/zhulik/tally/internal/core"
)

type fakeMessage struct {
	data []byte

	mu    sync.Mutex
	acked bool
	naked bool
}

func (m *fakeMessage) Subject() string              { return "tally.ballots.cast" }
func (m *fakeMessage) Data() []byte                 { return m.data }
func (m *fakeMessage) Headers() map[string][]string { return nil }

func (m *fakeMessage) Ack() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.acked = true

	return nil
}

func (m *fakeMessage) Nak() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.naked = true

	return nil
}

func (m *fakeMessage) Acked() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.acked
}

func (m *fakeMessage) Naked() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.naked
}

type fakeSubscription struct {
	ch   chan core.Message
	once sync.Once
}

func (s *fakeSubscription) C() <-chan core.Message { return s.ch }
func (s *fakeSubscription) Stop()                  { s.once.Do(func() {}) }

type fakeSubscriber struct {
	sub *fakeSubscription

	mu       sync.Mutex

	stream   string
	subjects []string
	durable  string
}

func (s *fakeSubscriber) HealthCheck() error { return nil }
func (s *fakeSubscriber) Shutdown() error    { return nil }

func (s *fakeSubscriber) Subscribe(_ context.Context, stream string, subjects []string, durable string) (core.Subscription, error) { //nolint:lll
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stream = stream
	s.subjects = subjects
	s.durable = durable

	return s.sub, nil
}

type failingVoter struct {
	err error
}

func (f failingVoter) Vote(context.Context, core.Candidate, core.Identity) error {
	return f.err
}

func (s *fakeSubscriber) Durable() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.durable
}
