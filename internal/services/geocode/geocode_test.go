package geocode

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/apperr"
)

type mockTransport struct {
	status  int
	body    string
	err     error
	lastURL string
}

func (m *mockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	m.lastURL = req.URL.String()
	if m.err != nil {
		return nil, m.err
	}
	return &http.Response{
		StatusCode: m.status,
		Body:       io.NopCloser(strings.NewReader(m.body)),
		Header:     make(http.Header),
	}, nil
}

func newTestClient(transport *mockTransport) *Client {
	c := NewClient("http://backend/api")
	c.httpClient = &http.Client{Transport: transport}
	return c
}

func TestReverseUsesTopLevelFields(t *testing.T) {
	transport := &mockTransport{
		status: http.StatusOK,
		body: `{"success":true,"message":"","data":{"district":"Bengaluru Urban","state":"Karnataka","lat":12.97,"lon":77.59,"address":{}},"timestamp":""}`,
	}
	c := newTestClient(transport)

	result, err := c.Reverse(context.Background(), 12.97, 77.59)

	require.NoError(t, err)
	assert.Equal(t, "Bengaluru Urban", result.District)
	assert.Equal(t, "Karnataka", result.State)
	assert.Contains(t, transport.lastURL, "lat=12.970000")
	assert.Contains(t, transport.lastURL, "lon=77.590000")
}

func TestReverseFallbackOrder(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		expected string
	}{
		{"county wins", `{"county":"Mysuru","state_district":"X","city":"Y","state":"Karnataka"}`, "Mysuru"},
		{"state_district next", `{"state_district":"Mandya","town":"Z","state":"Karnataka"}`, "Mandya"},
		{"city next", `{"city":"Hubballi","village":"V","state":"Karnataka"}`, "Hubballi"},
		{"town next", `{"town":"Udupi","state":"Karnataka"}`, "Udupi"},
		{"village last", `{"village":"Agumbe","state":"Karnataka"}`, "Agumbe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(&mockTransport{
				status: http.StatusOK,
				body:   `{"success":true,"message":"","data":{"district":"","state":"","lat":0,"lon":0,"address":` + tt.address + `},"timestamp":""}`,
			})

			result, err := c.Reverse(context.Background(), 12.3, 76.6)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.District)
			assert.Equal(t, "Karnataka", result.State, "state falls back to the address component")
		})
	}
}

func TestReverseNoUsableDistrict(t *testing.T) {
	c := newTestClient(&mockTransport{
		status: http.StatusOK,
		body:   `{"success":true,"message":"","data":{"district":"","state":"","lat":0,"lon":0,"address":{"state":"Karnataka"}},"timestamp":""}`,
	})

	_, err := c.Reverse(context.Background(), 12.3, 76.6)

	require.Error(t, err)
	assert.Equal(t, apperr.KindGeocode, apperr.KindOf(err))
}

func TestReverseFailureEnvelope(t *testing.T) {
	c := newTestClient(&mockTransport{
		status: http.StatusOK,
		body:   `{"success":false,"message":"Geocoding failed","data":null,"timestamp":""}`,
	})

	_, err := c.Reverse(context.Background(), 12.3, 76.6)

	assert.Equal(t, apperr.KindGeocode, apperr.KindOf(err))
	assert.Equal(t, "Geocoding failed", err.Error())
}

func TestReverseRateLimited(t *testing.T) {
	c := newTestClient(&mockTransport{status: http.StatusTooManyRequests, body: `{}`})

	_, err := c.Reverse(context.Background(), 12.3, 76.6)

	require.Error(t, err)
	assert.Equal(t, apperr.KindRemote, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "busy")
}

func TestReverseConnectivityFailure(t *testing.T) {
	c := newTestClient(&mockTransport{err: errors.New("dns failure")})

	_, err := c.Reverse(context.Background(), 12.3, 76.6)

	assert.Equal(t, apperr.KindConnectivity, apperr.KindOf(err))
}
