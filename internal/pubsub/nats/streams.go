package nats

import (
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/zhulik/tally/internal/core"
)

const (
	maxBytes = 10 * 1024 * 1024 // 10MB
	maxMsgs  = 100000
	maxAge   = 72 * time.Hour
)

func EventsStreamConfig(subjectBase core.SubjectName) jetstream.StreamConfig {
	return jetstream.StreamConfig{
		Name:      core.EventsStreamName,
		Subjects:  []string{subjectBase + ".>"},
		Storage:   jetstream.FileStorage,
		Retention: jetstream.LimitsPolicy,
		MaxAge:    maxAge,
		MaxMsgs:   maxMsgs,
		MaxBytes:  maxBytes,
		Replicas:  1,
	}
}

func BallotsStreamConfig(subjectBase core.SubjectName) jetstream.StreamConfig {
	return jetstream.StreamConfig{
		Name:      core.BallotsStreamName,
		Subjects:  []string{subjectBase + ".>"},
		Storage:   jetstream.FileStorage,
		Retention: jetstream.WorkQueuePolicy,
		MaxAge:    maxAge,
		MaxMsgs:   maxMsgs,
		MaxBytes:  maxBytes,
		Replicas:  1,
	}
}

func EventSubjectName(base core.SubjectName, kind core.EventKind) string {
	return base + "." + string(kind)
}

func BallotSubjectName(base core.SubjectName) string {
	return base + ".cast"
}
