// Package geoloc abstracts the device geolocation capability. In the
// browser deployment the coordinates (or the numeric failure code) arrive
// with the detection request; the Provider interface keeps the detector
// testable and independent of where a fix comes from.
package geoloc

import (
	"context"
	"time"

	"github.com/thanseerjelani/mgnrega-dashboard/internal/apperr"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/types"
)

// Options mirror the browser geolocation request parameters.
type Options struct {
	Timeout      time.Duration
	HighAccuracy bool
	// MaximumAge is the oldest acceptable cached fix. Zero disallows
	// cached positions entirely.
	MaximumAge time.Duration
}

// DefaultOptions matches the dashboard's detection request: a bounded
// wait, high accuracy, no stale fixes.
func DefaultOptions() Options {
	return Options{Timeout: 10 * time.Second, HighAccuracy: true}
}

// Browser geolocation API error codes.
const (
	CodePermissionDenied    = 1
	CodePositionUnavailable = 2
	CodeTimeout             = 3
)

// Provider yields the current device position.
type Provider interface {
	CurrentPosition(ctx context.Context, opts Options) (types.Coordinates, error)
}

// Static returns a fixed position, typically the one the browser already
// acquired and sent along with the request.
type Static struct {
	Position types.Coordinates
}

func (s Static) CurrentPosition(_ context.Context, _ Options) (types.Coordinates, error) {
	return s.Position, nil
}

// Failed reports a device-level acquisition failure by browser code.
type Failed struct {
	Code int
}

func (f Failed) CurrentPosition(_ context.Context, _ Options) (types.Coordinates, error) {
	return types.Coordinates{}, ErrorForCode(f.Code)
}

// Unsupported represents a device without a geolocation capability.
type Unsupported struct{}

func (Unsupported) CurrentPosition(_ context.Context, _ Options) (types.Coordinates, error) {
	return types.Coordinates{}, apperr.New(apperr.KindUnsupported, "")
}

// ErrorForCode maps a browser geolocation error code to the taxonomy.
// Unknown codes degrade to PositionUnavailable.
func ErrorForCode(code int) *apperr.Error {
	switch code {
	case CodePermissionDenied:
		return apperr.New(apperr.KindPermissionDenied, "")
	case CodeTimeout:
		return apperr.New(apperr.KindTimeout, "")
	default:
		return apperr.New(apperr.KindPositionUnavailable, "")
	}
}
