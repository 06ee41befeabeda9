package main

import (
	"context"
	"errors"
	"syscall"

	"github.com/samber/do"
	"github.com/zhulik/tally/internal/api"
	"github.com/zhulik/tally/internal/ballotbox"
	"github.com/zhulik/tally/internal/core"
	"github.com/zhulik/tally/internal/di"
)

func main() {
	injector := di.New()

	logger := di.Logger(injector).WithField("component", "main")

	logger.Info("Starting...")

	config := do.MustInvoke[core.Config](injector)
	server := do.MustInvoke[*api.Server](injector)

	go func() {
		err := server.Run()
		if err != nil {
			logger.WithError(err).Fatal("Failed to run server")
		}
	}()

	if config.NATSEnabled() {
		worker := do.MustInvoke[*ballotbox.Worker](injector)

		go func() {
			err := worker.Run(context.Background())
			if !errors.Is(err, ballotbox.ErrStopped) {
				logger.WithError(err).Fatal("Failed to run ballot box")
			}
		}()
	} else {
		logger.Warn("NATS_URL is not set, events are not published and ballots are only accepted over HTTP")
	}

	logger.Info("Running...")

	err := injector.ShutdownOnSignals(syscall.SIGINT, syscall.SIGTERM)
	if err != nil {
		logger.WithError(err).Fatal("Failed to shutdown")
	}
}
