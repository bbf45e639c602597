package shiftview

import (
	"time"
)

// ISODate renders a date as its canonical "YYYY-MM-DD" key. The same form is
// used for registry query parameters and bucket keys, so the two never
// disagree on time-of-day components.
func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}

// GroupByDate buckets view models by their date key, preserving insertion
// order within each bucket. A shift with an empty date key falls back to its
// date label as the key, so no shift is ever dropped.
func GroupByDate(shifts []ShiftViewModel) map[string][]ShiftViewModel {
	buckets := make(map[string][]ShiftViewModel, len(shifts))
	for _, shift := range shifts {
		key := shift.DateKey
		if key == "" {
			key = shift.DateLabel
		}
		buckets[key] = append(buckets[key], shift)
	}
	return buckets
}

// WeekDates returns the 7 consecutive dates of the Monday-start week
// containing anchor, at local midnight. The Monday is found in closed form
// from the anchor's weekday; a DST transition exactly at local midnight is
// not accounted for.
func WeekDates(anchor time.Time) []time.Time {
	day := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())

	// Days since the preceding Monday: Sunday=0..Saturday=6 shifted so that
	// Monday maps to 0.
	offset := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -offset)

	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}
	return dates
}

// DeriveDayCounters computes the day's summary counters from its view models.
// Used when the registry's counters endpoint does not supply them.
func DeriveDayCounters(shifts []ShiftViewModel) DayCounters {
	counters := DayCounters{TotalToday: len(shifts)}
	for _, shift := range shifts {
		switch shift.ShiftType {
		case ShiftTypeDay:
			counters.DayShifts++
		case ShiftTypeNight:
			counters.NightShifts++
		}
		if shift.Status == StatusCompleted {
			counters.Completed++
		}
	}
	return counters
}
