package service

import "time"

// StreamRequest identifies one notifier loop.
type StreamRequest struct {
	Building string
	Room     string
	Interval time.Duration // 0 means the configured tick
}

// ScheduleFilter supports listing by location and weekday.
type ScheduleFilter struct {
	Building string // exact match; "" means any
	Room     string // exact match; "" means any
	Day      string // day code (M,T,W,R,F,S) or weekday name; "" means any
}
