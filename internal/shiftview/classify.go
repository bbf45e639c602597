package shiftview

import (
	"strings"
)

// Status is the coarse lifecycle classification of a shift
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusMissed    Status = "missed"
)

// ShiftType is the temporal classification of a shift
type ShiftType string

const (
	ShiftTypeDay   ShiftType = "day"
	ShiftTypeNight ShiftType = "night"
)

// Raw status tokens marking a shift that has not started yet. Such a shift
// has no session history, so its detail view is not interactive.
var inactiveRawStatuses = map[string]struct{}{
	"SCHEDULED": {},
	"PLANNED":   {},
	"PENDING":   {},
	"ASSIGNED":  {},
	"CREATED":   {},
}

// ClassifyStatus maps a free-form registry status to the closed Status set.
// Unrecognized or absent values classify as scheduled.
func ClassifyStatus(rawStatus string) Status {
	switch strings.ToUpper(strings.TrimSpace(rawStatus)) {
	case "COMPLETED", "FINISHED":
		return StatusCompleted
	case "CANCELLED", "CANCELED", "MISSED":
		return StatusMissed
	default:
		return StatusScheduled
	}
}

// ClassifyShiftType decides day vs night. An explicit kind wins; otherwise
// the start hour decides (18:00–05:59 is night); with no usable signal the
// shift counts as a day shift.
func ClassifyShiftType(kind, startAt string) ShiftType {
	switch strings.ToUpper(strings.TrimSpace(kind)) {
	case "DAY":
		return ShiftTypeDay
	case "NIGHT":
		return ShiftTypeNight
	}

	if start, ok := parseInstant(startAt); ok {
		hour := start.Hour()
		if hour >= 18 || hour < 6 {
			return ShiftTypeNight
		}
		return ShiftTypeDay
	}

	return ShiftTypeDay
}

// IsInteractive reports whether a shift's detail view (session history) is
// meaningful to open. When a raw status is present its membership in the
// inactive set is the sole determinant; only an absent raw status falls back
// to the coarse classification.
func IsInteractive(rawStatus string, classified Status) bool {
	if raw := strings.ToUpper(strings.TrimSpace(rawStatus)); raw != "" {
		_, inactive := inactiveRawStatuses[raw]
		return !inactive
	}
	return classified != StatusScheduled
}
