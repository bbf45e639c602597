package shiftview_test

import (
	"testing"

	"guard-console-backend/internal/shiftview"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// ClassifyTestSuite defines the test suite for shift classification
type ClassifyTestSuite struct {
	suite.Suite
}

// TestClassifyStatus tests the raw status to lifecycle status table
func (suite *ClassifyTestSuite) TestClassifyStatus() {
	testCases := []struct {
		name      string
		rawStatus string
		expected  shiftview.Status
	}{
		{"completed", "COMPLETED", shiftview.StatusCompleted},
		{"finished", "FINISHED", shiftview.StatusCompleted},
		{"cancelled", "CANCELLED", shiftview.StatusMissed},
		{"canceled single L", "CANCELED", shiftview.StatusMissed},
		{"missed", "MISSED", shiftview.StatusMissed},
		{"scheduled", "SCHEDULED", shiftview.StatusScheduled},
		{"unknown token", "ON_BREAK", shiftview.StatusScheduled},
		{"absent", "", shiftview.StatusScheduled},
		{"lowercase", "completed", shiftview.StatusCompleted},
		{"surrounding whitespace", "  finished  ", shiftview.StatusCompleted},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			assert.Equal(suite.T(), tc.expected, shiftview.ClassifyStatus(tc.rawStatus))
		})
	}
}

// TestClassifyShiftType_ExplicitKindWins tests that a declared kind overrides
// the start hour
func (suite *ClassifyTestSuite) TestClassifyShiftType_ExplicitKindWins() {
	// Declared NIGHT at a morning hour stays night
	assert.Equal(suite.T(), shiftview.ShiftTypeNight,
		shiftview.ClassifyShiftType("NIGHT", "2024-03-04T09:00:00"))

	// Declared DAY at a late hour stays day
	assert.Equal(suite.T(), shiftview.ShiftTypeDay,
		shiftview.ClassifyShiftType("day", "2024-03-04T22:00:00"))
}

// TestClassifyShiftType_HourFallback tests the start-hour rule when no kind
// is declared
func (suite *ClassifyTestSuite) TestClassifyShiftType_HourFallback() {
	testCases := []struct {
		name     string
		startAt  string
		expected shiftview.ShiftType
	}{
		{"early morning is night", "2024-03-04T05:59:00", shiftview.ShiftTypeNight},
		{"six sharp is day", "2024-03-04T06:00:00", shiftview.ShiftTypeDay},
		{"afternoon is day", "2024-03-04T17:59:00", shiftview.ShiftTypeDay},
		{"eighteen sharp is night", "2024-03-04T18:00:00", shiftview.ShiftTypeNight},
		{"midnight is night", "2024-03-04T00:00:00", shiftview.ShiftTypeNight},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			assert.Equal(suite.T(), tc.expected, shiftview.ClassifyShiftType("", tc.startAt))
		})
	}
}

// TestClassifyShiftType_NoSignal tests the day default with neither kind nor
// a parsable start
func (suite *ClassifyTestSuite) TestClassifyShiftType_NoSignal() {
	assert.Equal(suite.T(), shiftview.ShiftTypeDay, shiftview.ClassifyShiftType("", ""))
	assert.Equal(suite.T(), shiftview.ShiftTypeDay, shiftview.ClassifyShiftType("SWING", "garbage"))
}

// TestIsInteractive_RawStatusPresent tests that a present raw status is the
// sole determinant of interactivity
func (suite *ClassifyTestSuite) TestIsInteractive_RawStatusPresent() {
	inactive := []string{"SCHEDULED", "PLANNED", "PENDING", "ASSIGNED", "CREATED", "  planned  "}
	for _, raw := range inactive {
		assert.False(suite.T(), shiftview.IsInteractive(raw, shiftview.ClassifyStatus(raw)),
			"raw status %q should not be interactive", raw)
	}

	active := []string{"COMPLETED", "CANCELLED", "IN_PROGRESS", "ON_BREAK"}
	for _, raw := range active {
		assert.True(suite.T(), shiftview.IsInteractive(raw, shiftview.ClassifyStatus(raw)),
			"raw status %q should be interactive", raw)
	}
}

// TestIsInteractive_UnknownRawStatusIsInteractive pins the asymmetry: an
// unrecognized raw status classifies as scheduled yet is still interactive,
// because the raw token is not in the not-started set
func (suite *ClassifyTestSuite) TestIsInteractive_UnknownRawStatusIsInteractive() {
	raw := "ON_SITE"
	classified := shiftview.ClassifyStatus(raw)

	assert.Equal(suite.T(), shiftview.StatusScheduled, classified)
	assert.True(suite.T(), shiftview.IsInteractive(raw, classified))
}

// TestIsInteractive_AbsentRawStatus tests the fallback on the coarse
// classification when no raw status exists
func (suite *ClassifyTestSuite) TestIsInteractive_AbsentRawStatus() {
	assert.False(suite.T(), shiftview.IsInteractive("", shiftview.StatusScheduled))
	assert.True(suite.T(), shiftview.IsInteractive("", shiftview.StatusCompleted))
	assert.True(suite.T(), shiftview.IsInteractive("", shiftview.StatusMissed))
}

// TestClassifyTestSuite runs the test suite
func TestClassifyTestSuite(t *testing.T) {
	suite.Run(t, new(ClassifyTestSuite))
}
