// Package geocode resolves coordinates to a district/state name pair via
// the backend's geocoding proxy. It is kept apart from the data client
// because the response shape and failure modes differ: free-text address
// components with fallback fields instead of typed reference data.
package geocode

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/thanseerjelani/mgnrega-dashboard/internal/apperr"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/types"
)

const (
	requestTimeout = 30 * time.Second

	busyMessage         = "Service temporarily busy. Please try again in a moment."
	connectivityMessage = "Unable to connect to server. Please check your internet connection."
	unavailableMessage  = "Data not available. Please try again later."
)

// Geocoder is the contract the location detector depends on.
type Geocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (*types.GeocodeResult, error)
}

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

// Reverse resolves coordinates to a district and state name. When the
// provider's top-level fields are empty it falls back to the raw address
// components, in the order county, state_district, city, town, village.
// No usable district after fallback is a geocode failure.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (*types.GeocodeResult, error) {
	q := url.Values{
		"lat": {strconv.FormatFloat(lat, 'f', 6, 64)},
		"lon": {strconv.FormatFloat(lon, 'f', 6, 64)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/geocode?"+q.Encode(), nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindRemote, "building request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindConnectivity, connectivityMessage, err)
	}
	defer resp.Body.Close()

	var env types.Envelope[*types.GeocodeResult]
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, apperr.New(apperr.KindRemote, busyMessage)
	}
	if resp.StatusCode != http.StatusOK {
		msg := env.Message
		if msg == "" {
			msg = unavailableMessage
		}
		return nil, apperr.New(apperr.KindRemote, msg)
	}
	if decodeErr != nil {
		return nil, apperr.Wrap(apperr.KindRemote, unavailableMessage, decodeErr)
	}
	if !env.Success || env.Data == nil {
		msg := env.Message
		if msg == "" {
			msg = "Geocoding failed"
		}
		return nil, apperr.New(apperr.KindGeocode, msg)
	}

	result := normalize(env.Data)
	if result.District == "" || result.State == "" {
		// Coordinates rounded: raw positions stay out of the logs.
		slog.Debug("geocode yielded no district",
			"lat", roundCoord(lat), "lon", roundCoord(lon))
		return nil, apperr.New(apperr.KindGeocode, "")
	}
	return result, nil
}

// normalize fills empty top-level fields from the address components.
func normalize(r *types.GeocodeResult) *types.GeocodeResult {
	out := *r
	if out.District == "" {
		out.District = firstNonEmpty(
			r.Address.County,
			r.Address.StateDistrict,
			r.Address.City,
			r.Address.Town,
			r.Address.Village,
		)
	}
	if out.State == "" {
		out.State = r.Address.State
	}
	return &out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func roundCoord(v float64) float64 {
	return float64(int(v*100)) / 100
}
