package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"heater_notifier/internal/models"
)

type ScheduleSQLite struct {
	db *sql.DB
}

func NewScheduleSQLite(db *sql.DB) *ScheduleSQLite { return &ScheduleSQLite{db: db} }

var _ ScheduleRepo = (*ScheduleSQLite)(nil)

const (
	selectScheduleColumns = `SELECT building, room, begin_time, end_time, days FROM class_schedules`

	// time() normalizes HH:MM and HH:MM:SS so the text comparison is chronological.
	selectActiveSchedulesSQL = selectScheduleColumns + `
		WHERE building = ?
			AND room = ?
			AND instr(days, ?) > 0
			AND ? BETWEEN time(begin_time) AND time(end_time)
	`
)

// FindActive returns entries matching building and room exactly whose days
// contain q.DayCode and whose [begin_time, end_time] window contains q.At.
func (r *ScheduleSQLite) FindActive(ctx context.Context, q ScheduleQuery) ([]models.ScheduleEntry, error) {
	rows, err := r.db.QueryContext(ctx, selectActiveSchedulesSQL,
		q.Building,
		q.Room,
		q.DayCode,
		q.At.SQLText(),
	)
	if err != nil {
		return nil, fmt.Errorf("query active schedules: %w", err)
	}
	return scanSchedules(rows)
}

// List returns entries filtered by building, room and day code, ordered by
// building, room and begin time.
func (r *ScheduleSQLite) List(ctx context.Context, f ScheduleFilter) ([]models.ScheduleEntry, error) {
	var (
		conds []string
		args  []any
	)

	if b := strings.TrimSpace(f.Building); b != "" {
		conds = append(conds, "building = ?")
		args = append(args, b)
	}
	if rm := strings.TrimSpace(f.Room); rm != "" {
		conds = append(conds, "room = ?")
		args = append(args, rm)
	}
	if d := strings.TrimSpace(f.DayCode); d != "" {
		conds = append(conds, "instr(days, ?) > 0")
		args = append(args, d)
	}

	q := selectScheduleColumns
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY building, room, time(begin_time)"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return scanSchedules(rows)
}

func scanSchedules(rows *sql.Rows) ([]models.ScheduleEntry, error) {
	defer rows.Close()

	out := make([]models.ScheduleEntry, 0, 8)
	for rows.Next() {
		var (
			e          models.ScheduleEntry
			begin, end string
		)
		if err := rows.Scan(&e.Building, &e.Room, &begin, &end, &e.Days); err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		var err error
		if e.BeginTime, err = models.ParseTimeOfDay(begin); err != nil {
			return nil, fmt.Errorf("schedule %s/%s begin_time: %w", e.Building, e.Room, err)
		}
		if e.EndTime, err = models.ParseTimeOfDay(end); err != nil {
			return nil, fmt.Errorf("schedule %s/%s end_time: %w", e.Building, e.Room, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
