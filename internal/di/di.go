package di

import (
	"github.com/samber/do"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/tally/internal/api"
	"github.com/zhulik/tally/internal/ballotbox"
	"github.com/zhulik/tally/internal/clock"
	"github.com/zhulik/tally/internal/config"
	"github.com/zhulik/tally/internal/election"
	"github.com/zhulik/tally/internal/identity"
	"github.com/zhulik/tally/internal/logging"
	"github.com/zhulik/tally/internal/metrics"
	"github.com/zhulik/tally/internal/pubsub"
)

// New registers every service lazily, nothing is built until invoked.
func New() *do.Injector {
	injector := do.New()

	Register(injector)

	return injector
}

func Register(injector *do.Injector) {
	config.Register(injector)
	logging.Register(injector)

	RegisterServices(injector)
}

// RegisterServices registers everything except config and logger.
func RegisterServices(injector *do.Injector) {
	clock.Register(injector)
	identity.Register(injector)
	metrics.Register(injector)
	pubsub.Register(injector)
	election.Register(injector)
	api.Register(injector)
	ballotbox.Register(injector)
}

func Logger(injector *do.Injector) logrus.FieldLogger {
	return do.MustInvoke[logrus.FieldLogger](injector)
}
