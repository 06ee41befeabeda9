package nats

import (
	"fmt"
	"sync"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/tally/internal/core"
)

type subscriptionWrapper struct {
	consumerCtx jetstream.ConsumeContext
	ch          chan core.Message
	done        chan struct{}
	stopOnce    *sync.Once
	logger      logrus.FieldLogger
}

func newSubscriptionWrapper(cons jetstream.Consumer, logger logrus.FieldLogger) (subscriptionWrapper, error) {
	msgChan := make(chan core.Message)
	done := make(chan struct{})

	consumerCtx, err := cons.Consume(func(msg jetstream.Msg) {
		select {
		case msgChan <- messageWrapper{msg}:
		case <-done:
			// Not acked, redelivered to the next consumer.
		}
	})
	if err != nil {
		return subscriptionWrapper{}, fmt.Errorf("failed to consume: %w", err)
	}

	return subscriptionWrapper{
		consumerCtx: consumerCtx,
		ch:          msgChan,
		done:        done,
		stopOnce:    &sync.Once{},
		logger:      logger,
	}, nil
}

func (s subscriptionWrapper) C() <-chan core.Message {
	return s.ch
}

func (s subscriptionWrapper) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
		s.consumerCtx.Stop()
		s.logger.Info("Subscription stopped")
	})
}
