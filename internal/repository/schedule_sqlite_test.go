package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"heater_notifier/internal/models"
	"heater_notifier/internal/repository"
	"heater_notifier/internal/repository/db"
)

func openSeeded(t *testing.T) *repository.ScheduleSQLite {
	t.Helper()
	conn, err := db.InitDB(filepath.Join(t.TempDir(), "schedules.db"))
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	seed := [][5]string{
		{"ENG", "101", "09:00", "10:00", "MWF"},
		{"ENG", "101", "13:00:00", "14:15:00", "TR"},
		{"ENG", "202", "09:00:00", "10:00:00", "MTWRF"},
		{"SCI", "101", "10:00", "11:00", "S"},
	}
	for _, r := range seed {
		if _, err := conn.Exec(
			`INSERT INTO class_schedules (building, room, begin_time, end_time, days) VALUES (?, ?, ?, ?, ?)`,
			r[0], r[1], r[2], r[3], r[4],
		); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return repository.NewScheduleSQLite(conn)
}

func TestScheduleSQLite_FindActive(t *testing.T) {
	repo := openSeeded(t)

	cases := []struct {
		name     string
		q        repository.ScheduleQuery
		wantRows int
	}{
		{"inside window", repository.ScheduleQuery{Building: "ENG", Room: "101", DayCode: "W", At: models.MustTimeOfDay("09:01")}, 1},
		{"exactly begin", repository.ScheduleQuery{Building: "ENG", Room: "101", DayCode: "M", At: models.MustTimeOfDay("09:00")}, 1},
		{"exactly end", repository.ScheduleQuery{Building: "ENG", Room: "101", DayCode: "F", At: models.MustTimeOfDay("10:00")}, 1},
		{"before begin", repository.ScheduleQuery{Building: "ENG", Room: "101", DayCode: "W", At: models.MustTimeOfDay("08:59")}, 0},
		{"after end", repository.ScheduleQuery{Building: "ENG", Room: "101", DayCode: "W", At: models.MustTimeOfDay("10:00:01")}, 0},
		{"past end by a fraction", repository.ScheduleQuery{Building: "ENG", Room: "101", DayCode: "W", At: models.MustTimeOfDay("10:00:00.5")}, 0},
		{"after begin by a fraction", repository.ScheduleQuery{Building: "ENG", Room: "101", DayCode: "W", At: models.MustTimeOfDay("09:00:00.25")}, 1},
		{"wrong day", repository.ScheduleQuery{Building: "ENG", Room: "101", DayCode: "T", At: models.MustTimeOfDay("09:15")}, 0},
		{"other row same room", repository.ScheduleQuery{Building: "ENG", Room: "101", DayCode: "R", At: models.MustTimeOfDay("14:15")}, 1},
		{"room is case sensitive", repository.ScheduleQuery{Building: "eng", Room: "101", DayCode: "W", At: models.MustTimeOfDay("09:30")}, 0},
		{"day token is case sensitive", repository.ScheduleQuery{Building: "ENG", Room: "101", DayCode: "w", At: models.MustTimeOfDay("09:30")}, 0},
		{"weekend token", repository.ScheduleQuery{Building: "SCI", Room: "101", DayCode: "S", At: models.MustTimeOfDay("10:30")}, 1},
		{"unknown room", repository.ScheduleQuery{Building: "ENG", Room: "999", DayCode: "W", At: models.MustTimeOfDay("09:30")}, 0},
		{"injection attempt", repository.ScheduleQuery{Building: "ENG' OR '1'='1", Room: "101", DayCode: "W", At: models.MustTimeOfDay("09:30")}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.FindActive(context.Background(), tc.q)
			if err != nil {
				t.Fatalf("FindActive: %v", err)
			}
			if len(got) != tc.wantRows {
				t.Fatalf("rows = %d, want %d (%+v)", len(got), tc.wantRows, got)
			}
		})
	}
}

func TestScheduleSQLite_List(t *testing.T) {
	repo := openSeeded(t)

	all, err := repo.List(context.Background(), repository.ScheduleFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("want 4 rows, got %d", len(all))
	}

	eng101, err := repo.List(context.Background(), repository.ScheduleFilter{Building: "ENG", Room: "101"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(eng101) != 2 {
		t.Fatalf("want 2 rows, got %d", len(eng101))
	}
	// ordered by begin time
	if eng101[0].BeginTime != models.MustTimeOfDay("09:00") || eng101[1].BeginTime != models.MustTimeOfDay("13:00") {
		t.Fatalf("unexpected order: %+v", eng101)
	}

	tr, err := repo.List(context.Background(), repository.ScheduleFilter{DayCode: "T"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tr) != 2 { // ENG/101 TR and ENG/202 MTWRF
		t.Fatalf("want 2 rows for day T, got %d", len(tr))
	}
}

// A row time SQLite's time() cannot read never matches FindActive, so List
// must not present it as a valid entry either.
func TestScheduleSQLite_UnreadableTimeRejected(t *testing.T) {
	conn, err := db.InitDB(filepath.Join(t.TempDir(), "schedules.db"))
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	if _, err := conn.Exec(
		`INSERT INTO class_schedules (building, room, begin_time, end_time, days) VALUES ('ENG', '303', '9:00', '10:00', 'MWF')`,
	); err != nil {
		t.Fatalf("seed: %v", err)
	}
	repo := repository.NewScheduleSQLite(conn)

	active, err := repo.FindActive(context.Background(), repository.ScheduleQuery{
		Building: "ENG", Room: "303", DayCode: "W", At: models.MustTimeOfDay("09:30"),
	})
	if err != nil {
		t.Fatalf("FindActive: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("single-digit hour matched in SQL: %+v", active)
	}

	if _, err := repo.List(context.Background(), repository.ScheduleFilter{Room: "303"}); err == nil {
		t.Fatalf("List accepted a row FindActive can never match")
	}
}
