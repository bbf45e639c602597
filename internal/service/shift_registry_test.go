package service_test

import (
	"context"
	"testing"
	"time"

	apperrors "guard-console-backend/internal/errors"
	"guard-console-backend/internal/registry"
	"guard-console-backend/internal/service"
	"guard-console-backend/internal/shiftview"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// fakeRegistryClient is a configurable in-memory stand-in for the registry
// transport
type fakeRegistryClient struct {
	listShifts       func(ctx context.Context, cred registry.Credential, q registry.ShiftQuery) ([]shiftview.RawShiftRecord, error)
	fetchDayCounters func(ctx context.Context, cred registry.Credential, q registry.ShiftQuery) (*shiftview.DayCounters, error)
}

func (f *fakeRegistryClient) ListShifts(ctx context.Context, cred registry.Credential, q registry.ShiftQuery) ([]shiftview.RawShiftRecord, error) {
	return f.listShifts(ctx, cred, q)
}

func (f *fakeRegistryClient) FetchDayCounters(ctx context.Context, cred registry.Credential, q registry.ShiftQuery) (*shiftview.DayCounters, error) {
	if f.fetchDayCounters == nil {
		return nil, nil
	}
	return f.fetchDayCounters(ctx, cred, q)
}

// ShiftRegistryServiceTestSuite defines the test suite for the shift
// registry orchestrator
type ShiftRegistryServiceTestSuite struct {
	suite.Suite
	cred registry.Credential
}

// SetupTest sets up the test suite
func (suite *ShiftRegistryServiceTestSuite) SetupTest() {
	suite.cred = registry.Credential{AccessToken: "test-token", TokenType: "Bearer"}
}

// TestRefresh_WeekScopeBucketsShifts tests a successful non-day refresh
func (suite *ShiftRegistryServiceTestSuite) TestRefresh_WeekScopeBucketsShifts() {
	client := &fakeRegistryClient{
		listShifts: func(ctx context.Context, cred registry.Credential, q registry.ShiftQuery) ([]shiftview.RawShiftRecord, error) {
			assert.Equal(suite.T(), shiftview.ScopeWeek, q.Scope)
			assert.Equal(suite.T(), "2024-03-04", q.Date)
			return []shiftview.RawShiftRecord{
				{ID: "a", StartAt: "2024-03-04T08:00:00", EndAt: "2024-03-04T16:00:00"},
				{ID: "b", StartAt: "2024-03-05T08:00:00", EndAt: "2024-03-05T16:00:00"},
				{ID: "c", StartAt: "2024-03-04T16:00:00", EndAt: "2024-03-05T00:00:00"},
			}, nil
		},
	}
	registrySvc := service.NewShiftRegistryService(client)

	state, err := registrySvc.Refresh(context.Background(), shiftview.ScopeWeek,
		service.ShiftFilter{Date: "2024-03-04"}, suite.cred)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), shiftview.FetchReady, state.Status)
	assert.Len(suite.T(), state.Shifts, 3)
	assert.Len(suite.T(), state.Buckets, 2)
	assert.Len(suite.T(), state.Buckets["2024-03-04"], 2)
	assert.Len(suite.T(), state.Buckets["2024-03-05"], 1)
	assert.Nil(suite.T(), state.Counters)
	assert.Empty(suite.T(), state.Error)
}

// TestRefresh_DayScopeJoinsCounters tests that the day scope carries the
// registry's counters alongside the shift list
func (suite *ShiftRegistryServiceTestSuite) TestRefresh_DayScopeJoinsCounters() {
	client := &fakeRegistryClient{
		listShifts: func(ctx context.Context, cred registry.Credential, q registry.ShiftQuery) ([]shiftview.RawShiftRecord, error) {
			return []shiftview.RawShiftRecord{{ID: "a", StartAt: "2024-03-04T08:00:00"}}, nil
		},
		fetchDayCounters: func(ctx context.Context, cred registry.Credential, q registry.ShiftQuery) (*shiftview.DayCounters, error) {
			return &shiftview.DayCounters{TotalToday: 5, DayShifts: 3, NightShifts: 2, Completed: 1}, nil
		},
	}
	registrySvc := service.NewShiftRegistryService(client)

	state, err := registrySvc.Refresh(context.Background(), shiftview.ScopeDay,
		service.ShiftFilter{Date: "2024-03-04"}, suite.cred)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), shiftview.FetchReady, state.Status)
	assert.Len(suite.T(), state.Shifts, 1)
	require.NotNil(suite.T(), state.Counters)
	assert.Equal(suite.T(), 5, state.Counters.TotalToday)
	assert.Nil(suite.T(), state.Buckets)
}

// TestRefresh_DayScopeDerivesCountersWhenAbsent tests local derivation when
// the counters endpoint has nothing to offer
func (suite *ShiftRegistryServiceTestSuite) TestRefresh_DayScopeDerivesCountersWhenAbsent() {
	client := &fakeRegistryClient{
		listShifts: func(ctx context.Context, cred registry.Credential, q registry.ShiftQuery) ([]shiftview.RawShiftRecord, error) {
			return []shiftview.RawShiftRecord{
				{ID: "a", StartAt: "2024-03-04T08:00:00", Status: "COMPLETED"},
				{ID: "b", StartAt: "2024-03-04T20:00:00"},
			}, nil
		},
		fetchDayCounters: func(ctx context.Context, cred registry.Credential, q registry.ShiftQuery) (*shiftview.DayCounters, error) {
			return nil, nil
		},
	}
	registrySvc := service.NewShiftRegistryService(client)

	state, err := registrySvc.Refresh(context.Background(), shiftview.ScopeDay,
		service.ShiftFilter{Date: "2024-03-04"}, suite.cred)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), state.Counters)
	assert.Equal(suite.T(), 2, state.Counters.TotalToday)
	assert.Equal(suite.T(), 1, state.Counters.DayShifts)
	assert.Equal(suite.T(), 1, state.Counters.NightShifts)
	assert.Equal(suite.T(), 1, state.Counters.Completed)
}

// TestRefresh_DayScopeCountersFailureFailsCycle tests that a counters
// failure fails the whole day refresh even when the list succeeded
func (suite *ShiftRegistryServiceTestSuite) TestRefresh_DayScopeCountersFailureFailsCycle() {
	client := &fakeRegistryClient{
		listShifts: func(ctx context.Context, cred registry.Credential, q registry.ShiftQuery) ([]shiftview.RawShiftRecord, error) {
			return []shiftview.RawShiftRecord{{ID: "a"}}, nil
		},
		fetchDayCounters: func(ctx context.Context, cred registry.Credential, q registry.ShiftQuery) (*shiftview.DayCounters, error) {
			return nil, &apperrors.RegistryError{Scope: "day", Message: "failed to load day counters"}
		},
	}
	registrySvc := service.NewShiftRegistryService(client)

	state, err := registrySvc.Refresh(context.Background(), shiftview.ScopeDay,
		service.ShiftFilter{Date: "2024-03-04"}, suite.cred)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), shiftview.FetchError, state.Status)
	assert.Equal(suite.T(), "failed to load day counters", state.Error)
	assert.Empty(suite.T(), state.Shifts)
	assert.Nil(suite.T(), state.Counters)
}

// TestRefresh_FailureResetsDataAndIsScopeLocal tests that a failed cycle
// empties its own scope and leaves the others untouched
func (suite *ShiftRegistryServiceTestSuite) TestRefresh_FailureResetsDataAndIsScopeLocal() {
	failing := false
	client := &fakeRegistryClient{
		listShifts: func(ctx context.Context, cred registry.Credential, q registry.ShiftQuery) ([]shiftview.RawShiftRecord, error) {
			if failing {
				return nil, &apperrors.RegistryError{Scope: string(q.Scope), Message: "failed to load week shift registry"}
			}
			return []shiftview.RawShiftRecord{{ID: "a", StartAt: "2024-03-04T08:00:00"}}, nil
		},
	}
	registrySvc := service.NewShiftRegistryService(client)

	// Populate both week and month
	_, err := registrySvc.Refresh(context.Background(), shiftview.ScopeWeek,
		service.ShiftFilter{Date: "2024-03-04"}, suite.cred)
	require.NoError(suite.T(), err)
	_, err = registrySvc.Refresh(context.Background(), shiftview.ScopeMonth,
		service.ShiftFilter{Year: 2024, Month: 3}, suite.cred)
	require.NoError(suite.T(), err)

	// Fail a week refresh
	failing = true
	state, err := registrySvc.Refresh(context.Background(), shiftview.ScopeWeek,
		service.ShiftFilter{Date: "2024-03-11"}, suite.cred)
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), shiftview.FetchError, state.Status)
	assert.Empty(suite.T(), state.Shifts)
	assert.Empty(suite.T(), state.Buckets)
	assert.Equal(suite.T(), "failed to load week shift registry", state.Error)

	// Month scope is unaffected
	month := registrySvc.Snapshot(shiftview.ScopeMonth)
	assert.Equal(suite.T(), shiftview.FetchReady, month.Status)
	assert.Len(suite.T(), month.Shifts, 1)
}

// TestRefresh_MissingCredential tests that an empty credential aborts before
// any fetch and changes no state
func (suite *ShiftRegistryServiceTestSuite) TestRefresh_MissingCredential() {
	client := &fakeRegistryClient{
		listShifts: func(ctx context.Context, cred registry.Credential, q registry.ShiftQuery) ([]shiftview.RawShiftRecord, error) {
			suite.FailNow("no request should be made without a credential")
			return nil, nil
		},
	}
	registrySvc := service.NewShiftRegistryService(client)

	_, err := registrySvc.Refresh(context.Background(), shiftview.ScopeDay,
		service.ShiftFilter{Date: "2024-03-04"}, registry.Credential{})

	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthenticated)
	assert.Equal(suite.T(), shiftview.FetchIdle, registrySvc.Snapshot(shiftview.ScopeDay).Status)
}

// TestRefresh_InvalidScope tests scope validation
func (suite *ShiftRegistryServiceTestSuite) TestRefresh_InvalidScope() {
	registrySvc := service.NewShiftRegistryService(&fakeRegistryClient{})

	_, err := registrySvc.Refresh(context.Background(), shiftview.Scope("quarter"),
		service.ShiftFilter{}, suite.cred)

	var validationErr *apperrors.ValidationError
	assert.ErrorAs(suite.T(), err, &validationErr)
}

// TestRefresh_BranchAllClearsFilter tests that the "all" sentinel is not
// forwarded to the registry
func (suite *ShiftRegistryServiceTestSuite) TestRefresh_BranchAllClearsFilter() {
	var seen registry.ShiftQuery
	client := &fakeRegistryClient{
		listShifts: func(ctx context.Context, cred registry.Credential, q registry.ShiftQuery) ([]shiftview.RawShiftRecord, error) {
			seen = q
			return nil, nil
		},
	}
	registrySvc := service.NewShiftRegistryService(client)

	_, err := registrySvc.Refresh(context.Background(), shiftview.ScopeWeek,
		service.ShiftFilter{Date: "2024-03-04", BranchID: service.BranchAll}, suite.cred)

	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), seen.BranchID)
}

// TestRefresh_StaleResponseDiscarded tests last-write-wins: a response from
// a superseded cycle never overwrites the newer cycle's result
func (suite *ShiftRegistryServiceTestSuite) TestRefresh_StaleResponseDiscarded() {
	started := make(chan struct{})
	release := make(chan struct{})
	client := &fakeRegistryClient{
		listShifts: func(ctx context.Context, cred registry.Credential, q registry.ShiftQuery) ([]shiftview.RawShiftRecord, error) {
			if q.BranchID == "branch-slow" {
				close(started)
				<-release
				return []shiftview.RawShiftRecord{{ID: "stale"}}, nil
			}
			return []shiftview.RawShiftRecord{{ID: "fresh"}}, nil
		},
	}
	registrySvc := service.NewShiftRegistryService(client)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := registrySvc.Refresh(context.Background(), shiftview.ScopeWeek,
			service.ShiftFilter{Date: "2024-03-04", BranchID: "branch-slow"}, suite.cred)
		assert.NoError(suite.T(), err)
	}()

	// Wait until the slow cycle is in flight, then run a newer one to
	// completion before releasing it.
	<-started
	state, err := registrySvc.Refresh(context.Background(), shiftview.ScopeWeek,
		service.ShiftFilter{Date: "2024-03-04", BranchID: "branch-fast"}, suite.cred)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "fresh", state.Shifts[0].ID)

	close(release)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		suite.FailNow("slow refresh did not finish")
	}

	final := registrySvc.Snapshot(shiftview.ScopeWeek)
	assert.Equal(suite.T(), shiftview.FetchReady, final.Status)
	require.Len(suite.T(), final.Shifts, 1)
	assert.Equal(suite.T(), "fresh", final.Shifts[0].ID)
}

// TestShiftRegistryServiceTestSuite runs the test suite
func TestShiftRegistryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftRegistryServiceTestSuite))
}
