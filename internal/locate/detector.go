// Package locate implements the location-detection flow: acquire device
// coordinates, reverse-geocode them, validate the region against the
// allowlist, resolve the canonical state and district records, and commit
// the selection. Every stage has a distinct reason-coded outcome; the UI
// chooses severity from the code, never from message text.
package locate

import (
	"context"
	"log/slog"
	"strings"

	"github.com/thanseerjelani/mgnrega-dashboard/internal/apperr"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/geoloc"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/i18n"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/services/data"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/services/geocode"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/store"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/types"
)

// Result is returned on full success, for transient UI feedback.
type Result struct {
	StateID      int64             `json:"stateId"`
	DistrictID   int64             `json:"districtId"`
	StateName    string            `json:"state"`
	DistrictName string            `json:"district"`
	Coordinates  types.Coordinates `json:"coordinates"`
}

// Detector coordinates the six detection stages. It is re-entrant:
// overlapping invocations are tolerated, last store write wins.
type Detector struct {
	data           data.Source
	geocoder       geocode.Geocoder
	store          *store.Store
	bundle         *i18n.Bundle
	supportedState string
	opts           geoloc.Options
}

func NewDetector(src data.Source, geocoder geocode.Geocoder, st *store.Store, bundle *i18n.Bundle, supportedState string) *Detector {
	return &Detector{
		data:           src,
		geocoder:       geocoder,
		store:          st,
		bundle:         bundle,
		supportedState: supportedState,
		opts:           geoloc.DefaultOptions(),
	}
}

// Detect runs the full flow against the given position provider. On
// failure the returned error is always an *apperr.Error whose message is
// localized in the store's current language.
//
// Partial progress is preserved: once coordinates are acquired they stay
// in the store even when a later stage fails, so the user never repeats a
// successful step.
func (d *Detector) Detect(ctx context.Context, provider geoloc.Provider) (*Result, error) {
	lang := d.store.Language()

	// Stage 1: acquire coordinates. A failure here leaves the store
	// untouched.
	pos, err := provider.CurrentPosition(ctx, d.opts)
	if err != nil {
		return nil, d.localize(lang, err)
	}
	d.store.SetUserLocation(&pos)
	slog.Info("coordinates detected", "lat", pos.Lat, "lon", pos.Lon)

	// Stage 2: reverse-geocode.
	geo, err := d.geocoder.Reverse(ctx, pos.Lat, pos.Lon)
	if err != nil {
		return nil, d.localize(lang, err)
	}
	d.store.SetDetectedDistrictName(geo.District)
	slog.Info("geocoding result", "district", geo.District, "state", geo.State)

	// Stage 3: validate against the allowlist. A mismatch is an
	// informational outcome, not an error: selection stays as it was and
	// the UI shows a banner asking for manual selection.
	if !strings.EqualFold(geo.State, d.supportedState) {
		return nil, apperr.New(apperr.KindRegionUnsupported,
			d.bundle.Tf(lang, i18n.KeyErrRegionUnsupported, geo.State, d.supportedState))
	}

	// Stage 4: resolve the canonical region record.
	states, err := d.data.States(ctx)
	if err != nil {
		return nil, d.localize(lang, err)
	}
	state, ok := findState(states, d.supportedState)
	if !ok {
		return nil, apperr.New(apperr.KindRegionNotConfigured,
			d.bundle.Tf(lang, i18n.KeyErrRegionNotConfigured, d.supportedState))
	}

	// Stage 5: resolve the canonical district record.
	district, err := d.data.SearchDistrict(ctx, geo.District, &state.ID)
	if err != nil {
		return nil, d.localize(lang, err)
	}
	if district == nil {
		return nil, apperr.New(apperr.KindDistrictNotFound,
			d.bundle.Tf(lang, i18n.KeyErrDistrictNotFound, geo.District, d.supportedState))
	}

	// Stage 6: commit both ids together.
	d.store.SetSelection(state.ID, district.ID)
	slog.Info("auto-selected", "state", state.Name, "district", district.Name)

	return &Result{
		StateID:      state.ID,
		DistrictID:   district.ID,
		StateName:    state.Name,
		DistrictName: district.Name,
		Coordinates:  pos,
	}, nil
}

// findState locates the allowlisted region by exact or substring match on
// the upper-cased name.
func findState(states []types.State, name string) (types.State, bool) {
	target := strings.ToUpper(name)
	for _, s := range states {
		upper := strings.ToUpper(s.Name)
		if upper == target || strings.Contains(upper, target) {
			return s, true
		}
	}
	return types.State{}, false
}

// localize rewrites a taxonomy error with the message for its kind in the
// given language. Remote errors keep the backend-supplied message.
func (d *Detector) localize(lang i18n.Lang, err error) error {
	kind := apperr.KindOf(err)
	key, ok := messageKey(kind)
	if !ok {
		return err
	}
	return apperr.Wrap(kind, d.bundle.T(lang, key), err)
}

func messageKey(kind apperr.Kind) (string, bool) {
	switch kind {
	case apperr.KindConnectivity:
		return i18n.KeyErrConnectivity, true
	case apperr.KindGeocode:
		return i18n.KeyErrGeocode, true
	case apperr.KindPermissionDenied:
		return i18n.KeyErrPermissionDenied, true
	case apperr.KindPositionUnavailable:
		return i18n.KeyErrPositionUnavailable, true
	case apperr.KindTimeout:
		return i18n.KeyErrTimeout, true
	case apperr.KindUnsupported:
		return i18n.KeyErrUnsupported, true
	default:
		return "", false
	}
}
