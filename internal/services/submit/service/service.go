// Package service runs the submission pipeline: validate, encode, dispatch, reconcile
package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"dataproc/internal/core/encoder"
	"dataproc/internal/platform/logger"
	str "dataproc/internal/platform/strings"
	"dataproc/internal/services/submit/domain"

	"github.com/google/uuid"
)

// Options configures a Service
type Options struct {
	Policy domain.DisplayPolicy
	// OnTransition sees every state change, called synchronously
	OnTransition func(domain.Transition)
	Now          func() time.Time
	NewID        func() string
}

// Service owns the display state for one user and admits one submission at a time
type Service struct {
	dispatch domain.Dispatcher
	notify   domain.Notifier
	opts     Options
	log      logger.Logger

	inFlight atomic.Bool

	mu      sync.RWMutex
	state   domain.State
	result  *domain.ProcessedResult
	outcome *domain.Outcome
}

// New builds a Service. notify may be nil.
func New(d domain.Dispatcher, n domain.Notifier, opts Options) *Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	return &Service{
		dispatch: d,
		notify:   n,
		opts:     opts,
		log:      *logger.Named("submit"),
	}
}

// Submitting reports whether a submission is outstanding
func (s *Service) Submitting() bool { return s.inFlight.Load() }

// State reports the current pipeline state
func (s *Service) State() domain.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Result returns a copy of the result on display, nil when none
func (s *Service) Result() *domain.ProcessedResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.result == nil {
		return nil
	}
	r := *s.result
	return &r
}

// Display snapshots what a front end should render
func (s *Service) Display() domain.Display {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d := domain.Display{State: s.state, Submitting: s.inFlight.Load()}
	if s.result != nil {
		r := *s.result
		d.Result = &r
	}
	if s.outcome != nil {
		o := *s.outcome
		d.Last = &o
	}
	return d
}

// Submit runs one submission to completion. token may be empty, in which case
// no Authorization header is sent. On failure the returned error is a
// *domain.SubmitError; a call made while another is outstanding returns
// domain.ErrInFlight and changes nothing.
func (s *Service) Submit(ctx context.Context, token string, req domain.Request) (domain.Outcome, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return domain.Outcome{State: s.State()}, domain.ErrInFlight
	}
	defer s.inFlight.Store(false)

	id := s.opts.NewID()
	ctx = logger.WithSubmission(ctx, id)
	log := logger.C(ctx)
	out := domain.Outcome{SubmissionID: id, FileAttached: req.File != nil, StartedAt: s.opts.Now()}

	result, serr := s.run(ctx, id, token, req)
	out.Elapsed = s.opts.Now().Sub(out.StartedAt)

	if serr != nil {
		out.State = domain.StateFailed
		out.Kind = serr.Kind
		out.Status = serr.Status
		out.Message = serr.Message
		s.finish(id, out, nil)
		log.Warn().Err(serr.Cause).Str("kind", serr.Kind.String()).Int("upstream_status", serr.Status).
			Dur("elapsed", out.Elapsed).Msg("submission failed")
		if s.notify != nil {
			s.notify.Failure(ctx, serr.Message, serr)
		}
		return out, serr
	}

	out.State = domain.StateSucceeded
	out.Message = domain.MsgSuccess
	out.Result = &result
	s.finish(id, out, &result)
	log.Info().Dur("elapsed", out.Elapsed).Bool("file", out.FileAttached).Msg("submission processed")
	if s.notify != nil {
		s.notify.Success(ctx, domain.MsgSuccess)
	}
	return out, nil
}

// run walks validating, encoding and dispatching; the first failure stops it
func (s *Service) run(ctx context.Context, id, token string, req domain.Request) (domain.ProcessedResult, *domain.SubmitError) {
	log := logger.C(ctx)

	s.transition(id, domain.StateValidating)
	payload, err := domain.ParseObject(req.JSON)
	if err != nil {
		return domain.ProcessedResult{}, domain.NewSubmitError(domain.KindInvalidInputFormat, "", 0, err)
	}
	log.Debug().Int("keys", payload.Len()).Msg("input validated")

	encoded := ""
	if req.File != nil {
		s.transition(id, domain.StateEncoding)
		encoded, err = encodeAttachment(req.File)
		if err != nil {
			return domain.ProcessedResult{}, domain.NewSubmitError(domain.KindFileProcessingError, "", 0, err)
		}
		log.Debug().Str("file", req.File.Name).Str("mime", req.File.MIMEType).
			Int64("bytes", encoder.DecodedLen(encoded)).Msg("file encoded")
	}

	s.transition(id, domain.StateDispatching)
	body, err := s.dispatch.Process(ctx, token, payload.WithFile(encoded))
	if err != nil {
		return domain.ProcessedResult{}, classify(err)
	}
	result, err := domain.DecodeResult(body)
	if err != nil {
		return domain.ProcessedResult{}, domain.NewSubmitError(domain.KindServiceError, "", 0, err)
	}
	return result, nil
}

func encodeAttachment(f *domain.Attachment) (string, error) {
	if f.DataURL != "" {
		return encoder.FromDataURL(f.DataURL)
	}
	if f.Reader == nil {
		return "", encoder.ErrFileRead
	}
	size := f.Size
	if size <= 0 {
		size = -1
	}
	return encoder.Encode(f.Reader, size)
}

// classify turns a dispatcher error into NetworkError or ServiceError
func classify(err error) *domain.SubmitError {
	var up domain.UpstreamStatus
	if errors.As(err, &up) {
		msg := str.FirstNonEmpty(up.ServerMessage(), domain.MsgProcessingFailed)
		return domain.NewSubmitError(domain.KindServiceError, msg, up.HTTPStatus(), err)
	}
	return domain.NewSubmitError(domain.KindNetworkError, "", 0, err)
}

func (s *Service) transition(id string, to domain.State) {
	s.mu.Lock()
	from := s.state
	s.state = to
	s.mu.Unlock()
	s.emit(id, from, to)
}

// finish installs the terminal outcome then returns to idle
func (s *Service) finish(id string, out domain.Outcome, result *domain.ProcessedResult) {
	s.mu.Lock()
	from := s.state
	s.state = out.State
	switch {
	case result != nil:
		s.result = result
	case s.opts.Policy == domain.ClearOnFailure:
		s.result = nil
	}
	s.outcome = &out
	s.mu.Unlock()
	s.emit(id, from, out.State)

	s.mu.Lock()
	s.state = domain.StateIdle
	s.mu.Unlock()
	s.emit(id, out.State, domain.StateIdle)
}

func (s *Service) emit(id string, from, to domain.State) {
	if s.opts.OnTransition != nil {
		s.opts.OnTransition(domain.Transition{SubmissionID: id, From: from, To: to, At: s.opts.Now()})
	}
}
