package election

import "github.com/zhulik/tally/internal/core"

type Option func(*Election)

func WithListener(listener core.EventListener) Option {
	return func(e *Election) {
		e.listeners = append(e.listeners, listener)
	}
}

func WithRejectionRecorder(recorder core.RejectionRecorder) Option {
	return func(e *Election) {
		e.recorders = append(e.recorders, recorder)
	}
}
