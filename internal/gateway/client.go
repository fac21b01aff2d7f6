package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/jengzang/vacances-backend-go/internal/metrics"
	"github.com/jengzang/vacances-backend-go/internal/models"
	"github.com/jengzang/vacances-backend-go/internal/vacation"
)

var (
	// ErrTimeout means the API did not answer within the fetch timeout
	ErrTimeout = errors.New("request timeout: the API took too long to respond")
	// ErrUnavailable means the API could not be reached
	ErrUnavailable = errors.New("network error: unable to reach the API server")
	// ErrBadStatus means the API answered with a non-2xx status
	ErrBadStatus = errors.New("API error")
)

// pageLimit is the record limit of one query; a zone has far fewer records per school year
const pageLimit = 100

// Client fetches vacation periods from the open-data calendar API
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	loc     *time.Location
	metrics *metrics.Collector
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// WithLocation sets the location used to validate period dates
func WithLocation(loc *time.Location) ClientOption {
	return func(c *Client) { c.loc = loc }
}

// WithMetrics records fetch metrics on m
func WithMetrics(m *metrics.Collector) ClientOption {
	return func(c *Client) { c.metrics = m }
}

// NewClient creates a new open-data client
func NewClient(baseURL string, timeout time.Duration, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    http.DefaultClient,
		timeout: timeout,
		loc:     time.Local,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch returns the vacation periods of one zone for one school year
// ("2024-2025"), ordered by start date. Malformed periods are kept and
// logged; the status resolver's policy decides whether to skip them.
func (c *Client) Fetch(ctx context.Context, zone models.Zone, schoolYear string) ([]models.VacationPeriod, error) {
	start := time.Now()
	periods, result, err := c.fetch(ctx, zone, schoolYear)
	c.metrics.ObserveFetch(string(zone), result, time.Since(start).Seconds())
	if err != nil {
		log.Printf("Fetch vacations zone=%s year=%s failed: %v", zone, schoolYear, err)
		return nil, err
	}
	return periods, nil
}

func (c *Client) fetch(ctx context.Context, zone models.Zone, schoolYear string) ([]models.VacationPeriod, string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	params := url.Values{}
	params.Set("where", fmt.Sprintf(`zones="%s" AND annee_scolaire="%s"`, zone.Label(), schoolYear))
	params.Set("limit", fmt.Sprint(pageLimit))
	params.Set("order_by", "start_date")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, "unavailable", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, "timeout", fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, "unavailable", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "bad_status", fmt.Errorf("%w: %d %s", ErrBadStatus, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var body models.VacationsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, "timeout", fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, "decode", fmt.Errorf("failed to decode response: %w", err)
	}

	for _, p := range body.Results {
		if err := vacation.Validate(p, c.loc); err != nil {
			log.Printf("Warning: malformed vacation record zone=%s year=%s: %v", zone, schoolYear, err)
		}
	}
	if body.Results == nil {
		body.Results = []models.VacationPeriod{}
	}

	return body.Results, "ok", nil
}
