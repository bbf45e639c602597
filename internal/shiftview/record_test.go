package shiftview_test

import (
	"testing"

	"guard-console-backend/internal/shiftview"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// NormalizeTestSuite defines the test suite for raw record normalization
type NormalizeTestSuite struct {
	suite.Suite
}

// TestNormalize_FullRecord tests normalizing a record with every field present
func (suite *NormalizeTestSuite) TestNormalize_FullRecord() {
	record := shiftview.RawShiftRecord{
		ID:             "shift-1",
		GuardID:        "guard-9",
		GuardName:      "Dana Reyes",
		BranchID:       "branch-2",
		BranchName:     "Harbor Gate",
		CheckpointID:   "cp-5",
		CheckpointName: "North Entrance",
		AgencyID:       "agency-3",
		AgencyName:     "Sentinel Staffing",
		StartAt:        "2024-03-04T08:00:00",
		EndAt:          "2024-03-04T16:00:00",
		Status:         "COMPLETED",
		Kind:           "DAY",
	}

	vm := shiftview.Normalize(record)

	assert.Equal(suite.T(), "shift-1", vm.ID)
	assert.Equal(suite.T(), "Dana Reyes", vm.GuardName)
	assert.Equal(suite.T(), "Harbor Gate", vm.BranchName)
	assert.Equal(suite.T(), "North Entrance", vm.CheckpointName)
	assert.Equal(suite.T(), "Sentinel Staffing", vm.AgencyName)
	assert.Equal(suite.T(), "04 Mar 2024", vm.DateLabel)
	assert.Equal(suite.T(), "08:00–16:00", vm.TimeRangeLabel)
	assert.Equal(suite.T(), "2024-03-04", vm.DateKey)
	assert.Equal(suite.T(), shiftview.ShiftTypeDay, vm.ShiftType)
	assert.Equal(suite.T(), shiftview.StatusCompleted, vm.Status)
	assert.Equal(suite.T(), "COMPLETED", vm.RawStatus)
	assert.True(suite.T(), vm.Interactive)
}

// TestNormalize_AllFieldsAbsent tests that normalization is total: a record
// with nothing but an ID still yields a well-formed view model
func (suite *NormalizeTestSuite) TestNormalize_AllFieldsAbsent() {
	vm := shiftview.Normalize(shiftview.RawShiftRecord{ID: "shift-2"})

	assert.Equal(suite.T(), "shift-2", vm.ID)
	assert.Equal(suite.T(), shiftview.Placeholder, vm.GuardName)
	assert.Equal(suite.T(), shiftview.Placeholder, vm.BranchName)
	assert.Equal(suite.T(), shiftview.Placeholder, vm.CheckpointName)
	assert.Equal(suite.T(), shiftview.Placeholder, vm.AgencyName)
	assert.Equal(suite.T(), shiftview.Placeholder, vm.DateLabel)
	assert.Equal(suite.T(), shiftview.Placeholder, vm.TimeRangeLabel)
	assert.Empty(suite.T(), vm.DateKey)
	assert.Equal(suite.T(), shiftview.ShiftTypeDay, vm.ShiftType)
	assert.Equal(suite.T(), shiftview.StatusScheduled, vm.Status)
	assert.False(suite.T(), vm.Interactive)
}

// TestNormalize_LabelFallsBackToID tests that a missing display name falls
// back to the raw identifier before the placeholder
func (suite *NormalizeTestSuite) TestNormalize_LabelFallsBackToID() {
	vm := shiftview.Normalize(shiftview.RawShiftRecord{
		ID:           "shift-3",
		BranchID:     "branch-7",
		CheckpointID: "cp-1",
	})

	assert.Equal(suite.T(), "branch-7", vm.BranchName)
	assert.Equal(suite.T(), "cp-1", vm.CheckpointName)
	assert.Equal(suite.T(), shiftview.Placeholder, vm.AgencyName)
}

// TestNormalize_MissingEndKeepsTimeRangePlaceholder tests that the time range
// needs both endpoints while the date label needs only the start
func (suite *NormalizeTestSuite) TestNormalize_MissingEndKeepsTimeRangePlaceholder() {
	vm := shiftview.Normalize(shiftview.RawShiftRecord{
		ID:      "shift-4",
		StartAt: "2024-03-04T08:00:00",
	})

	assert.Equal(suite.T(), "04 Mar 2024", vm.DateLabel)
	assert.Equal(suite.T(), "2024-03-04", vm.DateKey)
	assert.Equal(suite.T(), shiftview.Placeholder, vm.TimeRangeLabel)
}

// TestNormalize_UnparsableTimestamp tests that a garbage timestamp degrades
// to placeholders instead of failing
func (suite *NormalizeTestSuite) TestNormalize_UnparsableTimestamp() {
	vm := shiftview.Normalize(shiftview.RawShiftRecord{
		ID:      "shift-5",
		StartAt: "not-a-time",
		EndAt:   "2024-03-04T16:00:00",
	})

	assert.Equal(suite.T(), shiftview.Placeholder, vm.DateLabel)
	assert.Equal(suite.T(), shiftview.Placeholder, vm.TimeRangeLabel)
	assert.Empty(suite.T(), vm.DateKey)
}

// TestNormalize_DateOnlyTimestamp tests the registry's bare date layout
func (suite *NormalizeTestSuite) TestNormalize_DateOnlyTimestamp() {
	vm := shiftview.Normalize(shiftview.RawShiftRecord{
		ID:      "shift-6",
		StartAt: "2024-03-04",
		EndAt:   "2024-03-04",
	})

	assert.Equal(suite.T(), "04 Mar 2024", vm.DateLabel)
	assert.Equal(suite.T(), "2024-03-04", vm.DateKey)
	assert.Equal(suite.T(), "00:00–00:00", vm.TimeRangeLabel)
}

// TestNormalize_EveningScheduledShift walks one record through the whole
// pipeline: a 19:00 SCHEDULED shift is a non-interactive night shift
func (suite *NormalizeTestSuite) TestNormalize_EveningScheduledShift() {
	vm := shiftview.Normalize(shiftview.RawShiftRecord{
		ID:      "shift-7",
		StartAt: "2024-03-04T19:00:00",
		EndAt:   "2024-03-05T03:00:00",
		Status:  "SCHEDULED",
	})

	assert.Equal(suite.T(), shiftview.ShiftTypeNight, vm.ShiftType)
	assert.Equal(suite.T(), shiftview.StatusScheduled, vm.Status)
	assert.Equal(suite.T(), "2024-03-04", vm.DateKey)
	assert.False(suite.T(), vm.Interactive)
}

// TestNormalizeAll_PreservesOrder tests that batch normalization keeps the
// registry's ordering
func (suite *NormalizeTestSuite) TestNormalizeAll_PreservesOrder() {
	records := []shiftview.RawShiftRecord{
		{ID: "a"},
		{ID: "b"},
		{ID: "c"},
	}

	shifts := shiftview.NormalizeAll(records)

	assert.Len(suite.T(), shifts, 3)
	assert.Equal(suite.T(), "a", shifts[0].ID)
	assert.Equal(suite.T(), "b", shifts[1].ID)
	assert.Equal(suite.T(), "c", shifts[2].ID)
}

// TestNormalizeAll_EmptyInput tests that an empty page yields an empty,
// non-nil slice
func (suite *NormalizeTestSuite) TestNormalizeAll_EmptyInput() {
	shifts := shiftview.NormalizeAll(nil)

	assert.NotNil(suite.T(), shifts)
	assert.Empty(suite.T(), shifts)
}

// TestNormalizeTestSuite runs the test suite
func TestNormalizeTestSuite(t *testing.T) {
	suite.Run(t, new(NormalizeTestSuite))
}
