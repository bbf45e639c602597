package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"guard-console-backend/internal/config"
	apperrors "guard-console-backend/internal/errors"
	"guard-console-backend/internal/logger"
	"guard-console-backend/internal/shiftview"
)

// Credential is the opaque bearer credential attached to every registry
// call. The console never issues tokens itself.
type Credential struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
}

// Valid reports whether the credential can be attached to a request.
func (c Credential) Valid() bool {
	return c.AccessToken != ""
}

func (c Credential) header() string {
	tokenType := c.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return tokenType + " " + c.AccessToken
}

// ShiftQuery carries the filter parameters for one registry fetch. They are
// passed through verbatim; the client does no filtering of its own.
type ShiftQuery struct {
	Scope shiftview.Scope
	Date  string // ISO date, day and week scopes
	Year  int    // month scope
	Month int    // month scope

	BranchID    string // empty means unset
	AgencyID    string // set only for agency-scoped sessions
	AgencyScope string // scope tag accompanying AgencyID
}

// shiftPageResponse is the registry's paginated list envelope.
type shiftPageResponse struct {
	Items []shiftview.RawShiftRecord `json:"items"`
	Page  int                        `json:"page"`
	Size  int                        `json:"size"`
	Total int                        `json:"total"`
}

// dayCountersResponse is the registry's counters envelope.
type dayCountersResponse struct {
	TotalToday  int `json:"totalToday"`
	DayShifts   int `json:"dayShifts"`
	NightShifts int `json:"nightShifts"`
	Completed   int `json:"completed"`
}

// fallbackMessages are the fixed scope-specific messages used when an error
// body carries no usable message.
var fallbackMessages = map[shiftview.Scope]string{
	shiftview.ScopeDay:   "failed to load day shift registry",
	shiftview.ScopeWeek:  "failed to load week shift registry",
	shiftview.ScopeMonth: "failed to load month shift registry",
}

const countersFallbackMessage = "failed to load day counters"

// Client talks to the remote shift registry service
type Client struct {
	baseURL    string
	pageSize   int
	httpClient *http.Client
}

// NewClient creates a new shift registry client
func NewClient(cfg *config.Config) *Client {
	timeout := time.Duration(cfg.RegistryTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	pageSize := cfg.RegistryPageSize
	if pageSize <= 0 {
		pageSize = 100
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.RegistryBaseURL, "/"),
		pageSize:   pageSize,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListShifts fetches the full shift list for a scope, following the
// registry's pagination until every item is collected.
func (c *Client) ListShifts(ctx context.Context, cred Credential, q ShiftQuery) ([]shiftview.RawShiftRecord, error) {
	if !cred.Valid() {
		return nil, apperrors.ErrUnauthenticated
	}

	log := logger.WithContext(ctx).WithField("scope", string(q.Scope))

	var records []shiftview.RawShiftRecord
	page := 1
	for {
		values := c.queryValues(q)
		values.Set("page", strconv.Itoa(page))
		values.Set("size", strconv.Itoa(c.pageSize))
		fullURL := fmt.Sprintf("%s/api/v1/shifts/%s?%s", c.baseURL, q.Scope, values.Encode())

		log.Debugf("Registry GET shifts request: url=%s", fullURL)

		var pageResp shiftPageResponse
		if err := c.getJSON(ctx, cred, fullURL, fallbackMessages[q.Scope], string(q.Scope), &pageResp); err != nil {
			return nil, err
		}

		records = append(records, pageResp.Items...)

		if len(pageResp.Items) == 0 || len(records) >= pageResp.Total {
			break
		}
		page++
	}

	log.Infof("Registry shifts fetched: count=%d", len(records))
	return records, nil
}

// FetchDayCounters fetches the registry's summary counters for the selected
// day.
func (c *Client) FetchDayCounters(ctx context.Context, cred Credential, q ShiftQuery) (*shiftview.DayCounters, error) {
	if !cred.Valid() {
		return nil, apperrors.ErrUnauthenticated
	}

	values := c.queryValues(q)
	fullURL := fmt.Sprintf("%s/api/v1/shifts/day/counters?%s", c.baseURL, values.Encode())

	logger.WithContext(ctx).Debugf("Registry GET counters request: url=%s", fullURL)

	var countersResp dayCountersResponse
	found, err := c.getJSONOptional(ctx, cred, fullURL, countersFallbackMessage, string(shiftview.ScopeDay), &countersResp)
	if err != nil {
		return nil, err
	}
	if !found {
		// Registry has no counters for this day; the caller derives them.
		return nil, nil
	}

	return &shiftview.DayCounters{
		TotalToday:  countersResp.TotalToday,
		DayShifts:   countersResp.DayShifts,
		NightShifts: countersResp.NightShifts,
		Completed:   countersResp.Completed,
	}, nil
}

// queryValues builds the verbatim filter parameters common to both
// endpoints.
func (c *Client) queryValues(q ShiftQuery) url.Values {
	values := url.Values{}
	if q.Date != "" {
		values.Set("date", q.Date)
	}
	if q.Year != 0 {
		values.Set("year", strconv.Itoa(q.Year))
		values.Set("month", strconv.Itoa(q.Month))
	}
	if q.BranchID != "" {
		values.Set("branchId", q.BranchID)
	}
	if q.AgencyID != "" {
		values.Set("agencyId", q.AgencyID)
		values.Set("agencyScope", q.AgencyScope)
	}
	return values
}

// getJSON performs an authenticated GET request and decodes JSON into out.
func (c *Client) getJSON(ctx context.Context, cred Credential, fullURL, fallbackMessage, scope string, out interface{}) error {
	_, err := c.getJSONOptional(ctx, cred, fullURL, fallbackMessage, scope, out)
	return err
}

// getJSONOptional is getJSON that reports a 204 No Content as absent rather
// than decoding it.
func (c *Client) getJSONOptional(ctx context.Context, cred Credential, fullURL, fallbackMessage, scope string, out interface{}) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Authorization", cred.header())
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.New().Errorf("Registry request failed: %v", err)
		return false, &apperrors.RegistryError{Scope: scope, Message: fallbackMessage}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, &apperrors.RegistryError{Scope: scope, Message: errorMessage(resp.Body, fallbackMessage)}
	}

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(out); err != nil {
		logger.New().Errorf("Failed to decode registry response: %v", err)
		return false, &apperrors.RegistryError{Scope: scope, Message: fallbackMessage}
	}
	return true, nil
}

// errorMessage extracts the registry's best-effort JSON error message,
// falling back to the fixed scope-specific message.
func errorMessage(body io.Reader, fallback string) string {
	raw, err := io.ReadAll(body)
	if err != nil {
		return fallback
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil || payload.Message == "" {
		return fallback
	}
	return payload.Message
}
