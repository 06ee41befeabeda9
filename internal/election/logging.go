package election

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/zhulik/tally/internal/core"
)

// LogListener writes every event and rejection to the log.
type LogListener struct {
	Logger logrus.FieldLogger
}

func (l LogListener) OnEvent(_ context.Context, event core.Event) {
	l.Logger.WithFields(logrus.Fields{
		"eventID":    event.ID,
		"kind":       event.Kind,
		"tick":       event.Tick,
		"actor":      event.Actor,
		"totalVotes": event.Tally.TotalVotes,
	}).Info("Election event")
}

func (l LogListener) OnRejected(operation string, err error) {
	l.Logger.WithError(err).WithField("operation", operation).Debug("Operation rejected")
}
