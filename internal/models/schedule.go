package models

import (
	"fmt"
	"strings"
	"time"
)

// ScheduleEntry is one row of the class_schedules table.
type ScheduleEntry struct {
	Building  string    `json:"building"`
	Room      string    `json:"room"`
	BeginTime TimeOfDay `json:"begin_time"`
	EndTime   TimeOfDay `json:"end_time"`
	Days      string    `json:"days"` // e.g. "MWF", one token per weekday
}

// Covers reports whether the entry is active on dayCode at the given time.
// Both window ends are inclusive.
func (e ScheduleEntry) Covers(dayCode string, at TimeOfDay) bool {
	return e.ActiveOn(dayCode) && e.BeginTime <= at && at <= e.EndTime
}

// ActiveOn reports whether Days carries the dayCode token.
func (e ScheduleEntry) ActiveOn(dayCode string) bool {
	return dayCode != "" && strings.Contains(e.Days, dayCode)
}

// TimeOfDay is a wall-clock time without a date, stored as the offset from midnight.
type TimeOfDay time.Duration

const day = 24 * time.Hour

// TimeOfDayOf returns the clock part of t in t's location, kept to the
// microsecond.
func TimeOfDayOf(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	frac := time.Duration(t.Nanosecond()).Truncate(time.Microsecond)
	return TimeOfDay(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second + frac)
}

// ParseTimeOfDay accepts "HH:MM", "HH:MM:SS" and "HH:MM:SS.fff", with
// two-digit fields. These are the forms SQLite's time() understands, so a
// value accepted here also matches in SQL.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	if !sqliteTimeShape(s) {
		return 0, fmt.Errorf("invalid time of day %q, expected HH:MM or HH:MM:SS", s)
	}
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDayOf(t), nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q, expected HH:MM or HH:MM:SS", s)
}

func sqliteTimeShape(s string) bool {
	switch {
	case len(s) == 5:
	case len(s) == 8:
		if s[5] != ':' {
			return false
		}
	case len(s) > 9 && s[8] == '.':
		if s[5] != ':' {
			return false
		}
	default:
		return false
	}
	return isDigit(s[0]) && isDigit(s[1]) && s[2] == ':' && isDigit(s[3]) && isDigit(s[4])
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// MustTimeOfDay is ParseTimeOfDay for literals; it panics on bad input.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Add shifts the clock by d, wrapping around midnight.
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	v := (time.Duration(t) + d) % day
	if v < 0 {
		v += day
	}
	return TimeOfDay(v)
}

// Hours returns the time as decimal hours, 09:30 -> 9.5.
func (t TimeOfDay) Hours() float64 {
	return time.Duration(t).Hours()
}

// String formats as HH:MM:SS, the layout SQLite's time() produces.
func (t TimeOfDay) String() string {
	d := time.Duration(t)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	return fmt.Sprintf("%02d:%02d:%02d", h, m, d/time.Second)
}

// SQLText formats as HH:MM:SS, adding .ffffff when there is a sub-second
// part. Text comparison against time() values stays chronological.
func (t TimeOfDay) SQLText() string {
	frac := (time.Duration(t) % time.Second) / time.Microsecond
	if frac == 0 {
		return t.String()
	}
	return fmt.Sprintf("%s.%06d", t.String(), frac)
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(b []byte) error {
	v, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
