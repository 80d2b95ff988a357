package service

import (
	"context"
	"time"

	"heater_notifier/internal/config"
	"heater_notifier/internal/logger"
	"heater_notifier/internal/models"
	"heater_notifier/internal/repository"
)

// Evaluator maps (building, room, time) to a heater decision.
type Evaluator interface {
	Evaluate(ctx context.Context, building, room string, now time.Time) (models.HeaterDecision, error)
}

// Notifier streams decisions for one connection until ctx ends.
type Notifier interface {
	Stream(ctx context.Context, req StreamRequest, sink Sink) error
}

// Schedules exposes read-only access to the class schedule.
type Schedules interface {
	ListSchedules(ctx context.Context, f ScheduleFilter) ([]models.ScheduleEntry, error)
}

// Service aggregates all sub-services.
type Service struct {
	Evaluator
	Notifier
	Schedules
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, cfg config.Config, log *logger.Logger) (*Service, error) {
	loc, err := cfg.Evaluator.Location()
	if err != nil {
		return nil, err
	}
	evaluator := NewEvaluatorService(repos.Schedules,
		WithLookahead(cfg.Evaluator.Lookahead),
		WithQueryTimeout(cfg.Evaluator.QueryTimeout),
		WithLocation(loc),
	)
	return &Service{
		Evaluator: evaluator,
		Notifier: NewNotifierService(evaluator, log,
			WithTick(cfg.Stream.Tick),
			WithKeepAlive(cfg.Stream.KeepAlive),
			WithDegradedAfter(cfg.Stream.DegradedAfter),
		),
		Schedules: NewSchedulesService(repos.Schedules),
	}, nil
}
