// Package planclient calls the remote trip-planning endpoint.
// Each call is a single attempt: no retry, and nothing stops a caller from
// issuing a second plan while the first is still in flight.
package planclient

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

	"github.com/pkordes/smart-travel-planner/internal/domain"
	"github.com/pkordes/smart-travel-planner/internal/tripwindow"
)

// PlanPath is the endpoint path appended to the base URL.
const PlanPath = "/api/plan_trip"

// DefaultTimeout bounds a single planning call when the caller supplies no
// *http.Client of its own. Itinerary generation upstream is slow.
const DefaultTimeout = 60 * time.Second

// maxErrorBody caps how much of a failed response is read looking for "detail".
const maxErrorBody = 64 << 10

// Client sends plan requests to the planning endpoint at BaseURL.
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

// New constructs a Client. httpClient may be nil, in which case a client
// with DefaultTimeout is used.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("planclient.New: parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("planclient.New: base url %q must include scheme and host", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{baseURL: u, http: httpClient}, nil
}

// Plan requests an itinerary for req.
// Input that the endpoint would reject (empty destination, days outside
// [1,30]) returns domain.ErrValidation without any network I/O.
// Any failure to obtain a successful, decodable response is a
// *domain.TransportError.
func (c *Client) Plan(ctx context.Context, req domain.PlanRequest) (domain.PlanResult, error) {
	if strings.TrimSpace(req.Destination) == "" {
		return domain.PlanResult{}, fmt.Errorf("planclient.Client.Plan: %w: destination is required", domain.ErrValidation)
	}
	if req.Days < domain.MinTripDays || req.Days > domain.MaxTripDays {
		return domain.PlanResult{}, fmt.Errorf("planclient.Client.Plan: %w: days must be between %d and %d",
			domain.ErrValidation, domain.MinTripDays, domain.MaxTripDays)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.planURL(req), nil)
	if err != nil {
		return domain.PlanResult{}, fmt.Errorf("planclient.Client.Plan: build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", req.ID.String())

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return domain.PlanResult{}, &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.PlanResult{}, &domain.TransportError{
			StatusCode: resp.StatusCode,
			Detail:     readDetail(resp.Body),
		}
	}

	var result domain.PlanResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return domain.PlanResult{}, &domain.TransportError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("decode response: %w", err),
		}
	}
	return result, nil
}

// planURL builds the GET URL with the query parameters the endpoint expects.
func (c *Client) planURL(req domain.PlanRequest) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + PlanPath

	q := url.Values{}
	q.Set("destination", req.Destination)
	q.Set("days", strconv.Itoa(req.Days))
	q.Set("preferences", req.Preferences)
	if !req.StartDate.IsZero() {
		q.Set("start_date", tripwindow.FormatDate(req.StartDate))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// errorBody is the failure document the endpoint sends. Detail is usually a
// string; validation failures from the framework send a list instead.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// readDetail extracts a string "detail" from an error response, or "".
func readDetail(r io.Reader) string {
	var body errorBody
	if err := json.NewDecoder(io.LimitReader(r, maxErrorBody)).Decode(&body); err != nil {
		return ""
	}
	var detail string
	if err := json.Unmarshal(body.Detail, &detail); err != nil {
		return ""
	}
	return strings.TrimSpace(detail)
}
