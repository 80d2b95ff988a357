package service

import (
	"context"
	"fmt"
	"strings"

	"heater_notifier/internal/models"
	"heater_notifier/internal/repository"
)

type SchedulesService struct {
	repo repository.ScheduleRepo
}

func NewSchedulesService(repo repository.ScheduleRepo) *SchedulesService {
	return &SchedulesService{repo: repo}
}

// normalizeFilter trims fields and resolves Day to a day code.
func normalizeFilter(f ScheduleFilter) (repository.ScheduleFilter, error) {
	out := repository.ScheduleFilter{
		Building: strings.TrimSpace(f.Building),
		Room:     strings.TrimSpace(f.Room),
	}
	if strings.TrimSpace(f.Day) != "" {
		code, err := ParseDay(f.Day)
		if err != nil {
			return repository.ScheduleFilter{}, err
		}
		out.DayCode = code
	}
	return out, nil
}

// ListSchedules returns the stored entries matching f.
func (s *SchedulesService) ListSchedules(ctx context.Context, f ScheduleFilter) ([]models.ScheduleEntry, error) {
	rf, err := normalizeFilter(f)
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.List(ctx, rf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return entries, nil
}
