package pubsub

import (
	"github.com/samber/do"
	"github.com/zhulik/tally/internal/core"
	"github.com/zhulik/tally/internal/pubsub/nats"
)

func Register(injector *do.Injector) {
	do.Provide(injector, nats.NewClient)
	do.Provide(injector, nats.NewPublisher)
	do.Provide(injector, func(injector *do.Injector) (core.Subscriber, error) {
		subscriber, err := nats.NewSubscriber(injector)
		if err != nil {
			return nil, err
		}

		return subscriber, nil
	})
}
