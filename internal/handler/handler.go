// Package handler exposes the dashboard core over HTTP. Handlers hold no
// business logic: they gate fetches on the current selection, delegate to
// the cached client and the detector, and translate taxonomy kinds into
// status codes.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/thanseerjelani/mgnrega-dashboard/internal/apperr"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/geoloc"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/i18n"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/locate"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/response"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/services/data"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/store"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/types"
)

type DashboardHandler struct {
	data     *data.CachedClient
	detector *locate.Detector
	store    *store.Store
	bundle   *i18n.Bundle
}

func NewDashboardHandler(d *data.CachedClient, detector *locate.Detector, st *store.Store, bundle *i18n.Bundle) *DashboardHandler {
	return &DashboardHandler{data: d, detector: detector, store: st, bundle: bundle}
}

// Health reports this server's own liveness plus the backend flag the
// poller maintains.
func (h *DashboardHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]any{
		"status":         "healthy",
		"backendOffline": h.store.Offline(),
	})
}

// GetStates returns the session-cached region list.
func (h *DashboardHandler) GetStates(w http.ResponseWriter, r *http.Request) {
	states, err := h.data.States(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, states)
}

// RetryStates is the one manual retry in the application: it invalidates
// the region-list cache entry and re-issues the fetch.
func (h *DashboardHandler) RetryStates(w http.ResponseWriter, r *http.Request) {
	states, err := h.data.RetryStates(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, states)
}

// GetDistricts returns the district list for the selected state. The
// fetch is gated: without a selected state nothing is issued.
func (h *DashboardHandler) GetDistricts(w http.ResponseWriter, r *http.Request) {
	stateID := h.store.SelectedStateID()
	if stateID == nil {
		response.Error(w, http.StatusBadRequest, h.bundle.T(h.store.Language(), i18n.KeySelectState))
		return
	}
	districts, err := h.data.Districts(r.Context(), *stateID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, districts)
}

// GetPerformance returns the latest snapshot for the selected district.
func (h *DashboardHandler) GetPerformance(w http.ResponseWriter, r *http.Request) {
	districtID := h.store.SelectedDistrictID()
	if districtID == nil {
		response.Error(w, http.StatusBadRequest, h.bundle.T(h.store.Language(), i18n.KeySelectDistrict))
		return
	}
	perf, err := h.data.Performance(r.Context(), *districtID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, perf)
}

// GetComparison returns the month-over-month comparison for the selected
// district. Optional ?year= selects the financial year.
func (h *DashboardHandler) GetComparison(w http.ResponseWriter, r *http.Request) {
	districtID := h.store.SelectedDistrictID()
	if districtID == nil {
		response.Error(w, http.StatusBadRequest, h.bundle.T(h.store.Language(), i18n.KeySelectDistrict))
		return
	}
	cmp, err := h.data.Comparison(r.Context(), *districtID, r.URL.Query().Get("year"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, cmp)
}

// GetSelection returns the full store snapshot.
func (h *DashboardHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.store.State())
}

// SetState selects a state (or clears it with null). The district always
// resets alongside.
func (h *DashboardHandler) SetState(w http.ResponseWriter, r *http.Request) {
	var body struct {
		StateID *int64 `json:"stateId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.store.SetSelectedState(body.StateID)
	response.JSON(w, http.StatusOK, h.store.State())
}

// SetDistrict selects a district within the current state.
func (h *DashboardHandler) SetDistrict(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DistrictID *int64 `json:"districtId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if h.store.SelectedStateID() == nil && body.DistrictID != nil {
		response.Error(w, http.StatusBadRequest, h.bundle.T(h.store.Language(), i18n.KeySelectState))
		return
	}
	h.store.SetSelectedDistrict(body.DistrictID)
	response.JSON(w, http.StatusOK, h.store.State())
}

// SetLanguage switches the interface language.
func (h *DashboardHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.store.SetLanguage(i18n.Normalize(body.Language))
	response.JSON(w, http.StatusOK, h.store.State())
}

// DetectLocation runs the detection flow. The browser sends either the
// coordinates it acquired or the numeric geolocation error code it got.
func (h *DashboardHandler) DetectLocation(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Lat       *float64 `json:"lat"`
		Lon       *float64 `json:"lon"`
		ErrorCode int      `json:"errorCode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var provider geoloc.Provider
	switch {
	case body.ErrorCode != 0:
		provider = geoloc.Failed{Code: body.ErrorCode}
	case body.Lat != nil && body.Lon != nil:
		provider = geoloc.Static{Position: types.Coordinates{Lat: *body.Lat, Lon: *body.Lon}}
	default:
		provider = geoloc.Unsupported{}
	}

	result, err := h.detector.Detect(r.Context(), provider)
	if err != nil {
		kind := apperr.KindOf(err)
		if apperr.Informational(kind) {
			// Banner, not toast: deliver as a 200 outcome.
			response.Outcome(w, http.StatusOK, err.Error(), string(kind))
			return
		}
		response.Outcome(w, statusForKind(kind), err.Error(), string(kind))
		return
	}
	response.JSON(w, http.StatusOK, result)
}

func (h *DashboardHandler) writeError(w http.ResponseWriter, err error) {
	kind := apperr.KindOf(err)
	response.Outcome(w, statusForKind(kind), err.Error(), string(kind))
}

func statusForKind(kind apperr.Kind) int {
	switch kind {
	case apperr.KindConnectivity:
		return http.StatusServiceUnavailable
	case apperr.KindRemote, apperr.KindRegionNotConfigured:
		return http.StatusBadGateway
	case apperr.KindGeocode, apperr.KindDistrictNotFound:
		return http.StatusUnprocessableEntity
	case apperr.KindPermissionDenied, apperr.KindPositionUnavailable,
		apperr.KindTimeout, apperr.KindUnsupported:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
