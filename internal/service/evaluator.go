package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"heater_notifier/internal/models"
	"heater_notifier/internal/repository"
)

const (
	// DefaultLookahead switches the heater on before class starts.
	DefaultLookahead    = 10 * time.Minute
	defaultQueryTimeout = 2 * time.Second

	maxIdentifierLen = 64
)

// DayCode maps a weekday to its schedule token.
//
// Saturday and Sunday intentionally share "S": schedules do not tell the two
// weekend days apart, so an "S" entry heats on both.
func DayCode(d time.Weekday) string {
	switch d {
	case time.Monday:
		return "M"
	case time.Tuesday:
		return "T"
	case time.Wednesday:
		return "W"
	case time.Thursday:
		return "R"
	case time.Friday:
		return "F"
	default:
		return "S"
	}
}

// ParseDay accepts a day code or an English weekday name.
func ParseDay(s string) (string, error) {
	s = strings.TrimSpace(s)
	switch strings.ToUpper(s) {
	case "M", "T", "W", "R", "F", "S":
		return strings.ToUpper(s), nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(s, d.String()) {
			return DayCode(d), nil
		}
	}
	return "", fmt.Errorf("%w: unknown day %q", ErrInvalidInput, s)
}

// EvaluatorService decides the heater state from the class schedule.
type EvaluatorService struct {
	repo         repository.ScheduleRepo
	lookahead    time.Duration
	queryTimeout time.Duration
	loc          *time.Location
}

// EvaluatorOption customizes an EvaluatorService.
type EvaluatorOption func(*EvaluatorService)

func WithLookahead(d time.Duration) EvaluatorOption {
	return func(s *EvaluatorService) { s.lookahead = d }
}

func WithQueryTimeout(d time.Duration) EvaluatorOption {
	return func(s *EvaluatorService) {
		if d > 0 {
			s.queryTimeout = d
		}
	}
}

// WithLocation sets the zone schedules are written in.
func WithLocation(loc *time.Location) EvaluatorOption {
	return func(s *EvaluatorService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func NewEvaluatorService(repo repository.ScheduleRepo, opts ...EvaluatorOption) *EvaluatorService {
	s := &EvaluatorService{
		repo:         repo,
		lookahead:    DefaultLookahead,
		queryTimeout: defaultQueryTimeout,
		loc:          time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Evaluate returns ON when at least one schedule entry for building/room
// covers now+lookahead on now's weekday, OFF otherwise. It never mutates
// the store.
func (s *EvaluatorService) Evaluate(ctx context.Context, building, room string, now time.Time) (models.HeaterDecision, error) {
	if err := ValidateLocation(building, room); err != nil {
		return models.HeaterDecision{}, err
	}

	now = now.In(s.loc)
	q := repository.ScheduleQuery{
		Building: building,
		Room:     room,
		DayCode:  DayCode(now.Weekday()),
		// the day code stays that of now; the clock wraps past midnight
		At: models.TimeOfDayOf(now).Add(s.lookahead),
	}

	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	entries, err := s.repo.FindActive(qctx, q)
	if err != nil {
		return models.HeaterDecision{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	d := models.HeaterDecision{Building: building, Room: room, TargetState: models.StateOff}
	if len(entries) > 0 {
		d.TargetState = models.StateOn
	}
	return d, nil
}

// ValidateLocation rejects identifiers that are empty, too long or carry
// control characters.
func ValidateLocation(building, room string) error {
	if err := validateIdentifier("building", building); err != nil {
		return err
	}
	return validateIdentifier("room", room)
}

func validateIdentifier(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	if !utf8.ValidString(v) {
		return fmt.Errorf("%w: %s is not valid UTF-8", ErrInvalidInput, field)
	}
	if utf8.RuneCountInString(v) > maxIdentifierLen {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrInvalidInput, field, maxIdentifierLen)
	}
	if strings.IndexFunc(v, unicode.IsControl) >= 0 {
		return fmt.Errorf("%w: %s contains control characters", ErrInvalidInput, field)
	}
	return nil
}
