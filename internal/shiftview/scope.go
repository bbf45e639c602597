package shiftview

// Scope is one of the three calendar granularities the registry is fetched
// and rendered at. Each scope is tracked independently.
type Scope string

const (
	ScopeDay   Scope = "day"
	ScopeWeek  Scope = "week"
	ScopeMonth Scope = "month"
)

// IsValid checks if the Scope is valid
func (s Scope) IsValid() bool {
	switch s {
	case ScopeDay, ScopeWeek, ScopeMonth:
		return true
	}
	return false
}

// FetchStatus is the lifecycle state of one scope's fetch cycle
type FetchStatus string

const (
	FetchIdle    FetchStatus = "idle"
	FetchLoading FetchStatus = "loading"
	FetchReady   FetchStatus = "ready"
	FetchError   FetchStatus = "error"
)

// ScopeState is the read-only snapshot of one scope handed to consumers.
// A new snapshot replaces the old one atomically; nothing is mutated in
// place.
type ScopeState struct {
	Status   FetchStatus                 `json:"status"`
	Shifts   []ShiftViewModel            `json:"shifts"`
	Buckets  map[string][]ShiftViewModel `json:"buckets,omitempty"`
	Counters *DayCounters                `json:"counters,omitempty"`
	Error    string                      `json:"error,omitempty"`
}
