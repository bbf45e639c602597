package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	apperrors "guard-console-backend/internal/errors"
	"guard-console-backend/internal/registry"
	"guard-console-backend/internal/service"
	"guard-console-backend/internal/shiftview"

	"github.com/gin-gonic/gin"
)

// ShiftRegistryHandler handles HTTP requests for the shift registry views
type ShiftRegistryHandler struct {
	service service.ShiftRegistryServiceInterface
}

// NewShiftRegistryHandler creates a new shift registry handler
func NewShiftRegistryHandler(service service.ShiftRegistryServiceInterface) *ShiftRegistryHandler {
	return &ShiftRegistryHandler{service: service}
}

// WeekDatesResponse is the payload for the week-dates helper endpoint
type WeekDatesResponse struct {
	Anchor string   `json:"anchor"`
	Dates  []string `json:"dates"`
}

// GetShiftRegistry handles GET /api/v1/shift-registry
// @Summary Get shift registry view for a scope
// @Description Refreshes the requested calendar scope from the upstream shift registry using the caller's credential and returns the scope snapshot
// @Tags shift-registry
// @Accept json
// @Produce json
// @Param scope query string true "Calendar scope" Enums(day, week, month)
// @Param date query string false "ISO date (day and week scopes), defaults to today"
// @Param year query int false "Year (month scope)"
// @Param month query int false "Month 1-12 (month scope)"
// @Param branch_id query string false "Branch filter, 'all' or empty for no filter"
// @Success 200 {object} shiftview.ScopeState "Scope snapshot after the refresh"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 401 {object} map[string]interface{} "Missing or invalid credential"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /shift-registry [get]
func (h *ShiftRegistryHandler) GetShiftRegistry(c *gin.Context) {
	scope := shiftview.Scope(c.DefaultQuery("scope", string(shiftview.ScopeDay)))
	if !scope.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scope: must be day, week or month"})
		return
	}

	now := time.Now()
	filter := service.ShiftFilter{
		Date:     c.DefaultQuery("date", shiftview.ISODate(now)),
		BranchID: c.Query("branch_id"),
	}

	if scope == shiftview.ScopeMonth {
		year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
			return
		}
		month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
		if err != nil || month < 1 || month > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month: must be 1-12"})
			return
		}
		filter.Year = year
		filter.Month = month
		filter.Date = ""
	}

	// Agency-scoped sessions see only their agency's registry.
	filter.AgencyID = c.GetString("agency_id")
	filter.AgencyScope = c.GetString("agency_scope")

	cred := registry.Credential{
		AccessToken: c.GetString("access_token"),
		TokenType:   "Bearer",
	}

	state, err := h.service.Refresh(c.Request.Context(), scope, filter, cred)
	if err != nil {
		var validationErr *apperrors.ValidationError
		switch {
		case errors.Is(err, apperrors.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh shift registry", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, state)
}

// GetWeekDates handles GET /api/v1/shift-registry/week-dates
// @Summary Get the week containing a date
// @Description Returns the seven ISO dates of the Monday-start week containing the anchor date
// @Tags shift-registry
// @Accept json
// @Produce json
// @Param date query string false "Anchor ISO date, defaults to today"
// @Success 200 {object} WeekDatesResponse "Week dates"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Security BearerAuth
// @Router /shift-registry/week-dates [get]
func (h *ShiftRegistryHandler) GetWeekDates(c *gin.Context) {
	anchor := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date: expected YYYY-MM-DD"})
			return
		}
		anchor = parsed
	}

	week := shiftview.WeekDates(anchor)
	dates := make([]string, 0, len(week))
	for _, day := range week {
		dates = append(dates, shiftview.ISODate(day))
	}

	c.JSON(http.StatusOK, WeekDatesResponse{
		Anchor: shiftview.ISODate(anchor),
		Dates:  dates,
	})
}
