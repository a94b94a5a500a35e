// Package apperr defines the error taxonomy shared by the data client,
// the geocoding client and the location detector. Every boundary failure
// is classified into one of these kinds before it leaves its package, so
// callers branch on a machine-readable reason code instead of matching
// message text.
package apperr

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable reason code. The UI picks severity (error
// toast vs informational banner) from the kind, never from the message.
type Kind string

const (
	// KindConnectivity: no response reached the server (network, DNS, timeout).
	KindConnectivity Kind = "connectivity"
	// KindRemote: the server responded with a failure status or envelope.
	KindRemote Kind = "remote"
	// KindGeocode: coordinates could not be resolved to a usable address.
	KindGeocode Kind = "geocode"
	// KindRegionUnsupported: resolved region is outside the allowlist.
	// Informational, not an error.
	KindRegionUnsupported Kind = "region_unsupported"
	// KindRegionNotConfigured: the allowlisted region is missing from the
	// backend reference data.
	KindRegionNotConfigured Kind = "region_not_configured"
	// KindDistrictNotFound: the geocoded district has no canonical record.
	KindDistrictNotFound Kind = "district_not_found"

	// Device geolocation failures.
	KindPermissionDenied    Kind = "permission_denied"
	KindPositionUnavailable Kind = "position_unavailable"
	KindTimeout             Kind = "timeout"
	KindUnsupported         Kind = "unsupported"
)

// Error carries a kind plus a human-readable (possibly localized) message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds an Error of the given kind around an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from err, or "" when err carries none.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Informational reports whether the kind is a non-error outcome that the
// UI should render as an informational banner rather than an error toast.
func Informational(kind Kind) bool {
	return kind == KindRegionUnsupported
}
