package clock

import (
	"fmt"
	"time"

	"github.com/samber/do"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/tally/internal/core"
)

func Register(injector *do.Injector) {
	do.Provide(injector, func(injector *do.Injector) (core.Clock, error) {
		config, err := do.Invoke[core.Config](injector)
		if err != nil {
			return nil, err
		}

		logger, err := do.Invoke[logrus.FieldLogger](injector)
		if err != nil {
			return nil, err
		}

		logger = logger.WithField("component", "clock")

		switch config.TickMode() {
		case core.TickModeManual:
			logger.Warn("Using manual clock, ticks only move on request")

			return NewManual(0), nil
		case core.TickModeInterval, "":
			logger.WithField("interval", config.TickInterval()).Info("Using interval clock")

			return NewInterval(time.Now(), config.TickInterval()), nil
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownTickMode, config.TickMode())
		}
	})
}
