package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/samber/do"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/tally/internal/core"
	"github.com/zhulik/tally/pkg/json"
)

const publishTimeout = 5 * time.Second

// Publisher forwards election events to JetStream.
type Publisher struct {
	nats *Client

	logger      logrus.FieldLogger
	subjectBase core.SubjectName
}

func NewPublisher(injector *do.Injector) (*Publisher, error) {
	logger, err := do.Invoke[logrus.FieldLogger](injector)
	if err != nil {
		return nil, err
	}

	logger = logger.WithField("component", "pubsub.nats.Publisher")

	config, err := do.Invoke[core.Config](injector)
	if err != nil {
		return nil, err
	}

	natsClient, err := do.Invoke[*Client](injector)
	if err != nil {
		return nil, err
	}

	publisher := &Publisher{
		nats:        natsClient,
		logger:      logger,
		subjectBase: config.EventsSubject(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err = natsClient.CreateOrUpdateStream(ctx, EventsStreamConfig(publisher.subjectBase))
	if err != nil {
		return nil, err
	}

	logger.WithField("streamName", core.EventsStreamName).Info("Stream created or updated")

	return publisher, nil
}

func (p Publisher) HealthCheck() error {
	p.logger.Debug("Publisher health check...")

	err := p.nats.HealthCheck()
	if err != nil {
		return fmt.Errorf("healthcheck failed: %w", err)
	}

	return nil
}

func (p Publisher) Shutdown() error {
	return nil
}

// OnEvent publishes the event. Failures are logged, the election state is already committed.
func (p Publisher) OnEvent(ctx context.Context, event core.Event) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	err := p.Publish(ctx, event)
	if err != nil {
		p.logger.WithError(err).WithFields(logrus.Fields{
			"eventID": event.ID,
			"kind":    event.Kind,
		}).Error("Failed to publish event")
	}
}

func (p Publisher) Publish(ctx context.Context, event core.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := EventSubjectName(p.subjectBase, event.Kind)

	_, err = p.nats.JetStream.Publish(ctx, subject, payload, jetstream.WithMsgID(event.ID.String()))
	if err != nil {
		return fmt.Errorf("failed to publish: %w", err)
	}

	p.logger.WithField("subject", subject).Debug("Event published")

	return nil
}
