package service

import (
	"context"
	"sync"

	"heater_notifier/internal/models"
	"heater_notifier/internal/repository"
)

// memScheduleRepo satisfies repository.ScheduleRepo with the same matching
// rules as the SQL query.
type memScheduleRepo struct {
	mu      sync.Mutex
	entries []models.ScheduleEntry
	err     error
	queries []repository.ScheduleQuery
}

func (m *memScheduleRepo) FindActive(ctx context.Context, q repository.ScheduleQuery) ([]models.ScheduleEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, q)
	if m.err != nil {
		return nil, m.err
	}
	var out []models.ScheduleEntry
	for _, e := range m.entries {
		if e.Building == q.Building && e.Room == q.Room && e.Covers(q.DayCode, q.At) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memScheduleRepo) List(ctx context.Context, f repository.ScheduleFilter) ([]models.ScheduleEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []models.ScheduleEntry
	for _, e := range m.entries {
		if f.Building != "" && e.Building != f.Building {
			continue
		}
		if f.Room != "" && e.Room != f.Room {
			continue
		}
		if f.DayCode != "" && !e.ActiveOn(f.DayCode) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *memScheduleRepo) setErr(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
}

func entry(building, room, begin, end, days string) models.ScheduleEntry {
	return models.ScheduleEntry{
		Building:  building,
		Room:      room,
		BeginTime: models.MustTimeOfDay(begin),
		EndTime:   models.MustTimeOfDay(end),
		Days:      days,
	}
}

type deadlineRepo struct {
	memScheduleRepo
	hadDeadline bool
}

func (d *deadlineRepo) FindActive(ctx context.Context, q repository.ScheduleQuery) ([]models.ScheduleEntry, error) {
	_, d.hadDeadline = ctx.Deadline()
	return nil, nil
}
