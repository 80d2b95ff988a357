package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"heater_notifier/internal/logger"
	"heater_notifier/internal/models"
)

const (
	defaultTick          = 1 * time.Second
	defaultKeepAlive     = 900 * time.Second
	defaultDegradedAfter = 3
)

// Sink is the transport side of one stream.
type Sink interface {
	Send(d models.HeaterDecision) error
	Ping() error
	Degraded(n models.DegradedNotice) error
}

// NotifierService runs one check-evaluate-emit loop per connection.
// Loops share nothing but the read-only evaluator.
type NotifierService struct {
	evaluator     Evaluator
	tick          time.Duration
	keepAlive     time.Duration
	degradedAfter int
	now           func() time.Time
	log           *logger.Logger
}

type NotifierOption func(*NotifierService)

func WithTick(d time.Duration) NotifierOption {
	return func(s *NotifierService) {
		if d > 0 {
			s.tick = d
		}
	}
}

func WithKeepAlive(d time.Duration) NotifierOption {
	return func(s *NotifierService) {
		if d > 0 {
			s.keepAlive = d
		}
	}
}

// WithDegradedAfter sets how many consecutive store failures produce a
// degraded notice; 0 disables the notice.
func WithDegradedAfter(n int) NotifierOption {
	return func(s *NotifierService) {
		if n >= 0 {
			s.degradedAfter = n
		}
	}
}

func WithClock(now func() time.Time) NotifierOption {
	return func(s *NotifierService) {
		if now != nil {
			s.now = now
		}
	}
}

func NewNotifierService(evaluator Evaluator, log *logger.Logger, opts ...NotifierOption) *NotifierService {
	if log == nil {
		log = logger.Nop()
	}
	s := &NotifierService{
		evaluator:     evaluator,
		tick:          defaultTick,
		keepAlive:     defaultKeepAlive,
		degradedAfter: defaultDegradedAfter,
		now:           time.Now,
		log:           log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tick is the configured data interval.
func (s *NotifierService) Tick() time.Duration { return s.tick }

// Stream emits a decision immediately and then on every tick until ctx is
// cancelled, which is a normal end and returns nil. A sink error ends the
// stream with that error. Store failures skip the tick.
func (s *NotifierService) Stream(ctx context.Context, req StreamRequest, sink Sink) error {
	if err := ValidateLocation(req.Building, req.Room); err != nil {
		return err
	}
	interval := req.Interval
	if interval <= 0 {
		interval = s.tick
	}

	ticker := time.NewTicker(interval)
	ping := time.NewTicker(s.keepAlive)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	var failures int
	if err := s.emit(ctx, req, sink, &failures); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ping.C:
			if ctx.Err() != nil {
				return nil
			}
			if err := sink.Ping(); err != nil {
				return fmt.Errorf("keepalive: %w", err)
			}
		case <-ticker.C:
			if ctx.Err() != nil {
				return nil
			}
			if err := s.emit(ctx, req, sink, &failures); err != nil {
				return err
			}
		}
	}
}

// emit runs one tick.
func (s *NotifierService) emit(ctx context.Context, req StreamRequest, sink Sink, failures *int) error {
	d, err := s.evaluator.Evaluate(ctx, req.Building, req.Room, s.now())
	if ctx.Err() != nil {
		return nil
	}
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return err
		}
		*failures++
		s.log.Warnw("decision_tick_skipped", "building", req.Building, "room", req.Room, "failures", *failures, "err", err)
		if s.degradedAfter > 0 && *failures == s.degradedAfter {
			if serr := sink.Degraded(models.DegradedNotice{
				Building: req.Building,
				Room:     req.Room,
				Failures: *failures,
				Error:    ErrStoreUnavailable.Error(),
			}); serr != nil {
				return fmt.Errorf("send degraded notice: %w", serr)
			}
		}
		return nil
	}

	if *failures > 0 {
		s.log.Infow("decision_stream_recovered", "building", req.Building, "room", req.Room, "after_failures", *failures)
	}
	*failures = 0
	if err := sink.Send(d); err != nil {
		return fmt.Errorf("send decision: %w", err)
	}
	return nil
}
