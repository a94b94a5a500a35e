// Package data is the typed client for the MGNREGA backend. Every call
// unwraps the common success/message/data/timestamp envelope and
// classifies failures: no response at all becomes a connectivity error,
// a failure response becomes a remote error carrying the backend message.
package data

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/thanseerjelani/mgnrega-dashboard/internal/apperr"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/types"
)

const (
	requestTimeout = 30 * time.Second
	healthTimeout  = 5 * time.Second

	// DefaultComparisonYear is used when the caller passes no financial year.
	DefaultComparisonYear = "2024-2025"

	connectivityMessage = "Unable to connect to server. Please try again later."
)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL: baseURL,
	}
}

// States lists all regions.
func (c *Client) States(ctx context.Context) ([]types.State, error) {
	return get[[]types.State](ctx, c, "/states", nil)
}

// Districts lists the districts of one state.
func (c *Client) Districts(ctx context.Context, stateID int64) ([]types.District, error) {
	return get[[]types.District](ctx, c, "/districts/"+strconv.FormatInt(stateID, 10), nil)
}

// SearchDistrict looks a district up by name, optionally scoped to a
// state. Unlike every other operation, a not-found result is degraded to
// (nil, nil): during location detection a miss is an expected outcome,
// not a failure.
func (c *Client) SearchDistrict(ctx context.Context, name string, stateID *int64) (*types.District, error) {
	q := url.Values{"name": {name}}
	if stateID != nil {
		q.Set("stateId", strconv.FormatInt(*stateID, 10))
	}
	d, err := get[*types.District](ctx, c, "/districts/search", q)
	if err != nil {
		if apperr.Is(err, apperr.KindConnectivity) {
			return nil, err
		}
		return nil, nil
	}
	return d, nil
}

// Performance fetches the latest metrics for a district.
func (c *Client) Performance(ctx context.Context, districtID int64) (*types.Performance, error) {
	return get[*types.Performance](ctx, c, "/performance/"+strconv.FormatInt(districtID, 10), nil)
}

// Comparison fetches the current-vs-previous period metrics. An empty
// year falls back to DefaultComparisonYear.
func (c *Client) Comparison(ctx context.Context, districtID int64, year string) (*types.Comparison, error) {
	if year == "" {
		year = DefaultComparisonYear
	}
	q := url.Values{"year": {year}}
	return get[*types.Comparison](ctx, c, "/compare/"+strconv.FormatInt(districtID, 10), q)
}

// CheckHealth probes backend liveness. It never returns an error: any
// failure, transport or otherwise, reads as "not alive". It uses a
// shorter budget than data calls so the poller stays cheap.
func (c *Client) CheckHealth(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// get issues a GET and unwraps the envelope into T.
func get[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	var zero T

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return zero, apperr.Wrap(apperr.KindRemote, "building request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, apperr.Wrap(apperr.KindConnectivity, connectivityMessage, err)
	}
	defer resp.Body.Close()

	var env types.Envelope[T]
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode != http.StatusOK {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("backend returned status %d", resp.StatusCode)
		}
		return zero, apperr.New(apperr.KindRemote, msg)
	}
	if decodeErr != nil {
		return zero, apperr.Wrap(apperr.KindRemote, "decoding response", decodeErr)
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "request failed"
		}
		return zero, apperr.New(apperr.KindRemote, msg)
	}
	return env.Data, nil
}
