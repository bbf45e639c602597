package service

import (
	"context"
	"errors"
	"sync"

	apperrors "guard-console-backend/internal/errors"
	"guard-console-backend/internal/logger"
	"guard-console-backend/internal/registry"
	"guard-console-backend/internal/shiftview"
)

// ShiftRegistryClient is the transport dependency of the shift registry
// orchestrator.
type ShiftRegistryClient interface {
	ListShifts(ctx context.Context, cred registry.Credential, q registry.ShiftQuery) ([]shiftview.RawShiftRecord, error)
	FetchDayCounters(ctx context.Context, cred registry.Credential, q registry.ShiftQuery) (*shiftview.DayCounters, error)
}

// BranchAll is the sentinel branch filter value meaning "no branch filter"
const BranchAll = "all"

// ShiftFilter carries one refresh cycle's filter parameters. They are passed
// through to the registry verbatim.
type ShiftFilter struct {
	Date        string `json:"date"`  // ISO date, day and week scopes
	Year        int    `json:"year"`  // month scope
	Month       int    `json:"month"` // month scope
	BranchID    string `json:"branch_id"`    // empty or "all" means unset
	AgencyID    string `json:"agency_id"`    // set only for agency-scoped sessions
	AgencyScope string `json:"agency_scope"` // scope tag accompanying AgencyID
}

// scopeSlot is one scope's result slot. The generation counter tags each
// fetch cycle; a response is applied only while its generation is still the
// slot's current one, so a superseded response can never overwrite newer
// state.
type scopeSlot struct {
	generation uint64
	state      shiftview.ScopeState
}

// ShiftRegistryService orchestrates registry fetches per calendar scope.
// The three scopes are independent: each owns its result slot and its
// generation counter, and a failure in one never touches the others.
type ShiftRegistryService struct {
	client ShiftRegistryClient

	mu    sync.Mutex
	slots map[shiftview.Scope]*scopeSlot
}

// Ensure ShiftRegistryService implements ShiftRegistryServiceInterface
var _ ShiftRegistryServiceInterface = (*ShiftRegistryService)(nil)

// NewShiftRegistryService creates a new shift registry orchestrator
func NewShiftRegistryService(client ShiftRegistryClient) *ShiftRegistryService {
	return &ShiftRegistryService{
		client: client,
		slots: map[shiftview.Scope]*scopeSlot{
			shiftview.ScopeDay:   {state: shiftview.ScopeState{Status: shiftview.FetchIdle}},
			shiftview.ScopeWeek:  {state: shiftview.ScopeState{Status: shiftview.FetchIdle}},
			shiftview.ScopeMonth: {state: shiftview.ScopeState{Status: shiftview.FetchIdle}},
		},
	}
}

// Refresh runs one fetch cycle for a scope and returns the scope's state
// afterwards. If a newer refresh for the same scope was started while this
// one was in flight, this cycle's result is discarded and the newer state is
// returned.
func (s *ShiftRegistryService) Refresh(ctx context.Context, scope shiftview.Scope, filter ShiftFilter, cred registry.Credential) (shiftview.ScopeState, error) {
	if !scope.IsValid() {
		return shiftview.ScopeState{}, &apperrors.ValidationError{Field: "scope", Message: "must be day, week or month"}
	}
	if !cred.Valid() {
		// Unauthenticated is a precondition failure: no fetch is attempted
		// and no scope state changes.
		return shiftview.ScopeState{}, apperrors.ErrUnauthenticated
	}

	generation := s.begin(scope)

	state, err := s.fetch(ctx, scope, filter, cred)
	if err != nil {
		var authErr *apperrors.AuthenticationError
		if errors.As(err, &authErr) {
			return shiftview.ScopeState{}, err
		}
		s.fail(scope, generation, err)
		return s.Snapshot(scope), nil
	}

	s.complete(scope, generation, state)
	return s.Snapshot(scope), nil
}

// Snapshot returns a copy of the scope's current state
func (s *ShiftRegistryService) Snapshot(scope shiftview.Scope) shiftview.ScopeState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slots[scope].state
}

// begin starts a new fetch cycle: bumps the scope's generation and moves the
// slot to loading. Loading keeps the previous data visible but clears any
// previous error.
func (s *ShiftRegistryService) begin(scope shiftview.Scope) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot := s.slots[scope]
	slot.generation++
	slot.state = shiftview.ScopeState{
		Status:   shiftview.FetchLoading,
		Shifts:   slot.state.Shifts,
		Buckets:  slot.state.Buckets,
		Counters: slot.state.Counters,
	}
	return slot.generation
}

// complete applies a successful result, unless the cycle was superseded.
func (s *ShiftRegistryService) complete(scope shiftview.Scope, generation uint64, state shiftview.ScopeState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot := s.slots[scope]
	if slot.generation != generation {
		logger.New().Debugf("Discarding stale %s registry response (generation %d, current %d)", scope, generation, slot.generation)
		return
	}
	slot.state = state
}

// fail applies a failed result, unless the cycle was superseded. Failure
// resets the scope's data to empty.
func (s *ShiftRegistryService) fail(scope shiftview.Scope, generation uint64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot := s.slots[scope]
	if slot.generation != generation {
		return
	}

	logger.New().WithField("scope", string(scope)).Errorf("Shift registry fetch failed: %v", err)
	slot.state = shiftview.ScopeState{
		Status: shiftview.FetchError,
		Error:  userMessage(err, scope),
	}
}

// fetch performs the scope's network round trips and builds the resulting
// ready state. For the day scope the shift list and the counters are fetched
// concurrently and joined; either failure fails the cycle.
func (s *ShiftRegistryService) fetch(ctx context.Context, scope shiftview.Scope, filter ShiftFilter, cred registry.Credential) (shiftview.ScopeState, error) {
	query := registry.ShiftQuery{
		Scope:       scope,
		Date:        filter.Date,
		Year:        filter.Year,
		Month:       filter.Month,
		BranchID:    filter.BranchID,
		AgencyID:    filter.AgencyID,
		AgencyScope: filter.AgencyScope,
	}
	if query.BranchID == BranchAll {
		query.BranchID = ""
	}

	if scope != shiftview.ScopeDay {
		records, err := s.client.ListShifts(ctx, cred, query)
		if err != nil {
			return shiftview.ScopeState{}, err
		}
		shifts := shiftview.NormalizeAll(records)
		return shiftview.ScopeState{
			Status:  shiftview.FetchReady,
			Shifts:  shifts,
			Buckets: shiftview.GroupByDate(shifts),
		}, nil
	}

	// Day scope: join the list and counters requests.
	var records []shiftview.RawShiftRecord
	var counters *shiftview.DayCounters
	var wg sync.WaitGroup
	var firstErr error
	var mu sync.Mutex

	wg.Add(2)
	go func() {
		defer wg.Done()
		result, err := s.client.ListShifts(ctx, cred, query)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		records = result
	}()
	go func() {
		defer wg.Done()
		result, err := s.client.FetchDayCounters(ctx, cred, query)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		counters = result
	}()
	wg.Wait()

	if firstErr != nil {
		return shiftview.ScopeState{}, firstErr
	}

	shifts := shiftview.NormalizeAll(records)
	if counters == nil {
		derived := shiftview.DeriveDayCounters(shifts)
		counters = &derived
	}

	return shiftview.ScopeState{
		Status:   shiftview.FetchReady,
		Shifts:   shifts,
		Counters: counters,
	}, nil
}

// userMessage resolves the short human-readable message surfaced for a
// failed fetch.
func userMessage(err error, scope shiftview.Scope) string {
	var regErr *apperrors.RegistryError
	if errors.As(err, &regErr) {
		return regErr.Message
	}
	return "failed to load " + string(scope) + " shift registry"
}
