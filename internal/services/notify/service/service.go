// Package service fans submission outcomes out to the log and a bounded in-memory feed
package service

import (
	"context"
	"sync"
	"time"

	"dataproc/internal/platform/logger"
)

// Level is the severity of a notification
type Level string

// Levels
const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is one toast-style message
type Notification struct {
	Seq          uint64    `json:"seq"`
	Level        Level     `json:"level"`
	Message      string    `json:"message"`
	SubmissionID string    `json:"submission_id,omitempty"`
	At           time.Time `json:"at"`
}

// Sink receives every notification after it is recorded
type Sink func(Notification)

// Service records notifications, newest last, keeping at most keep entries
type Service struct {
	mu    sync.Mutex
	keep  int
	seq   uint64
	feed  []Notification
	sinks []Sink
	now   func() time.Time
	log   logger.Logger
}

// New builds a Service holding up to keep notifications; keep <= 0 means 50
func New(keep int, sinks ...Sink) *Service {
	if keep <= 0 {
		keep = 50
	}
	return &Service{keep: keep, sinks: sinks, now: time.Now, log: *logger.Named("notify")}
}

// Success records a success message
func (s *Service) Success(ctx context.Context, msg string) {
	s.record(ctx, LevelSuccess, msg)
	s.log.Info().Str("submission_id", logger.SubmissionID(ctx)).Msg(msg)
}

// Failure records an error message; err is logged, never shown
func (s *Service) Failure(ctx context.Context, msg string, err error) {
	s.record(ctx, LevelError, msg)
	s.log.Warn().Err(err).Str("submission_id", logger.SubmissionID(ctx)).Msg(msg)
}

func (s *Service) record(ctx context.Context, lvl Level, msg string) {
	s.mu.Lock()
	s.seq++
	n := Notification{Seq: s.seq, Level: lvl, Message: msg, SubmissionID: logger.SubmissionID(ctx), At: s.now().UTC()}
	s.feed = append(s.feed, n)
	if over := len(s.feed) - s.keep; over > 0 {
		s.feed = append(s.feed[:0:0], s.feed[over:]...)
	}
	sinks := s.sinks
	s.mu.Unlock()

	for _, sink := range sinks {
		sink(n)
	}
}

// Since returns notifications with Seq greater than after, oldest first
func (s *Service) Since(after uint64) []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, 0, len(s.feed))
	for _, n := range s.feed {
		if n.Seq > after {
			out = append(out, n)
		}
	}
	return out
}

// Latest returns the newest notification, ok=false when none
func (s *Service) Latest() (Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.feed) == 0 {
		return Notification{}, false
	}
	return s.feed[len(s.feed)-1], true
}
