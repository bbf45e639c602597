package shiftview

import (
	"time"
)

// Placeholder is the display fallback for any label that cannot be resolved
// from the raw registry record.
const Placeholder = "—"

// timestampLayouts are the wire formats the registry has been observed to
// emit. Layouts without a zone are interpreted in local time.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// RawShiftRecord is a shift item as returned by the remote registry.
// Every field except ID may be absent; an empty string means absent.
type RawShiftRecord struct {
	ID             string `json:"id"`
	GuardID        string `json:"guardId,omitempty"`
	GuardName      string `json:"guardName,omitempty"`
	BranchID       string `json:"branchId,omitempty"`
	BranchName     string `json:"branchName,omitempty"`
	CheckpointID   string `json:"checkpointId,omitempty"`
	CheckpointName string `json:"checkpointName,omitempty"`
	AgencyID       string `json:"agencyId,omitempty"`
	AgencyName     string `json:"agencyName,omitempty"`
	StartAt        string `json:"startAt,omitempty"`
	EndAt          string `json:"endAt,omitempty"`
	Status         string `json:"status,omitempty"`
	Kind           string `json:"kind,omitempty"`
}

// ShiftViewModel is the canonical, presentation-ready form of one shift.
// It is immutable once produced.
type ShiftViewModel struct {
	ID             string    `json:"id"`
	GuardID        string    `json:"guard_id"`
	GuardName      string    `json:"guard_name"`
	BranchName     string    `json:"branch_name"`
	CheckpointName string    `json:"checkpoint_name"`
	AgencyName     string    `json:"agency_name"`
	DateLabel      string    `json:"date_label"`
	TimeRangeLabel string    `json:"time_range_label"`
	ShiftType      ShiftType `json:"shift_type"`
	Status         Status    `json:"status"`
	RawStatus      string    `json:"raw_status"`
	DateKey        string    `json:"date_key"`
	Interactive    bool      `json:"interactive"`
}

// DayCounters summarizes the selected day's shifts. Either supplied by the
// registry's counters endpoint or derived locally from the day's view models.
type DayCounters struct {
	TotalToday  int `json:"total_today"`
	DayShifts   int `json:"day_shifts"`
	NightShifts int `json:"night_shifts"`
	Completed   int `json:"completed"`
}

// parseInstant parses a registry timestamp. An unparsable or empty value is
// reported as absent, never as an error.
func parseInstant(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// resolveLabel picks a display label: human-readable name, else the raw
// identifier, else the placeholder.
func resolveLabel(name, id string) string {
	if name != "" {
		return name
	}
	if id != "" {
		return id
	}
	return Placeholder
}

// Normalize converts one raw registry record into a ShiftViewModel.
// It is total: missing or invalid fields degrade to placeholders.
func Normalize(record RawShiftRecord) ShiftViewModel {
	vm := ShiftViewModel{
		ID:             record.ID,
		GuardID:        record.GuardID,
		GuardName:      record.GuardName,
		BranchName:     resolveLabel(record.BranchName, record.BranchID),
		CheckpointName: resolveLabel(record.CheckpointName, record.CheckpointID),
		AgencyName:     resolveLabel(record.AgencyName, record.AgencyID),
		DateLabel:      Placeholder,
		TimeRangeLabel: Placeholder,
		RawStatus:      record.Status,
	}
	if vm.GuardName == "" {
		vm.GuardName = Placeholder
	}

	start, startOK := parseInstant(record.StartAt)
	end, endOK := parseInstant(record.EndAt)

	if startOK {
		vm.DateLabel = start.Format("02 Jan 2006")
		vm.DateKey = ISODate(start)
	}
	if startOK && endOK {
		vm.TimeRangeLabel = start.Format("15:04") + "–" + end.Format("15:04")
	}

	vm.Status = ClassifyStatus(record.Status)
	vm.ShiftType = ClassifyShiftType(record.Kind, record.StartAt)
	vm.Interactive = IsInteractive(record.Status, vm.Status)

	return vm
}

// NormalizeAll maps a registry page onto view models, preserving order.
func NormalizeAll(records []RawShiftRecord) []ShiftViewModel {
	shifts := make([]ShiftViewModel, 0, len(records))
	for _, record := range records {
		shifts = append(shifts, Normalize(record))
	}
	return shifts
}
