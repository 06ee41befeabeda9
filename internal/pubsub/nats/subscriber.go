package nats

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/samber/do"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/tally/internal/core"
)

type Subscriber struct {
	nats *Client

	logger logrus.FieldLogger
}

func NewSubscriber(injector *do.Injector) (*Subscriber, error) {
	logger, err := do.Invoke[logrus.FieldLogger](injector)
	if err != nil {
		return nil, err
	}

	logger = logger.WithField("component", "pubsub.nats.Subscriber")

	config, err := do.Invoke[core.Config](injector)
	if err != nil {
		return nil, err
	}

	natsClient, err := do.Invoke[*Client](injector)
	if err != nil {
		return nil, err
	}

	err = natsClient.CreateOrUpdateStream(context.Background(), BallotsStreamConfig(config.BallotSubject()))
	if err != nil {
		return nil, err
	}

	logger.WithField("streamName", core.BallotsStreamName).Info("Stream created or updated")

	return &Subscriber{
		nats:   natsClient,
		logger: logger,
	}, nil
}

func (s Subscriber) HealthCheck() error {
	s.logger.Debug("Subscriber health check...")

	err := s.nats.HealthCheck()
	if err != nil {
		return fmt.Errorf("healthcheck failed: %w", err)
	}

	return nil
}

func (s Subscriber) Shutdown() error {
	return nil
}

func (s Subscriber) Subscribe(ctx context.Context, streamName string, subjects []string, durableName string) (core.Subscription, error) { //nolint:ireturn,lll
	cons, err := s.nats.JetStream.CreateOrUpdateConsumer(ctx, streamName, jetstream.ConsumerConfig{
		Durable:        durableName,
		FilterSubjects: subjects,
		AckPolicy:      jetstream.AckExplicitPolicy,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer: %w", err)
	}

	logger := s.logger.WithFields(logrus.Fields{
		"stream":   streamName,
		"consumer": durableName,
		"subjects": subjects,
	})

	logger.Debug("NATS Consumer created")

	sub, err := newSubscriptionWrapper(cons, logger)
	if err != nil {
		return nil, err
	}

	return sub, nil
}
