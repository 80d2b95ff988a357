package repository

import (
	"context"
	"database/sql"

	"heater_notifier/internal/models"
)

// ScheduleQuery selects entries active on DayCode at At.
type ScheduleQuery struct {
	Building string
	Room     string
	DayCode  string
	At       models.TimeOfDay
}

// ScheduleFilter narrows a listing; empty fields match everything.
type ScheduleFilter struct {
	Building string
	Room     string
	DayCode  string
}

// ScheduleRepo is the read-only view of the class_schedules table.
type ScheduleRepo interface {
	FindActive(ctx context.Context, q ScheduleQuery) ([]models.ScheduleEntry, error)
	List(ctx context.Context, f ScheduleFilter) ([]models.ScheduleEntry, error)
}

type Repository struct {
	Schedules ScheduleRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Schedules: NewScheduleSQLite(db),
	}
}
