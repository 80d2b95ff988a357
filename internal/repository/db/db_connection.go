package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// InitDB opens/creates a SQLite DB file and ensures the schedule table exists.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// Every stream polls the table once per tick, so allow concurrent readers.
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxOpenConns)

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Fail fast if the DB cannot be reached
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

// dsn attaches per-connection pragmas; modernc applies _pragma on every new connection.
func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
}

const (
	sqliteDriverName = "sqlite"
	maxOpenConns     = 8
)

// begin_time/end_time hold 'HH:MM' or 'HH:MM:SS' text; days holds weekday
// tokens such as 'MWF' (Saturday and Sunday share 'S').
const schemaClassSchedules = `
CREATE TABLE IF NOT EXISTS class_schedules (
    building TEXT NOT NULL,
    room TEXT NOT NULL,
    begin_time TEXT NOT NULL,
    end_time TEXT NOT NULL,
    days TEXT NOT NULL
);
`

const schemaClassSchedulesIndex = `
CREATE INDEX IF NOT EXISTS idx_class_schedules_building_room
    ON class_schedules (building, room);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaClassSchedules,
		schemaClassSchedulesIndex,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
