package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/i18n"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/locate"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/services/data"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/store"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/types"
)

type fakeSource struct {
	districtsCalls int
}

func (f *fakeSource) States(_ context.Context) ([]types.State, error) {
	return []types.State{{ID: 7, Name: "KARNATAKA"}}, nil
}

func (f *fakeSource) Districts(_ context.Context, stateID int64) ([]types.District, error) {
	f.districtsCalls++
	return []types.District{{ID: 101, Name: "Bengaluru Urban", StateID: stateID}}, nil
}

func (f *fakeSource) SearchDistrict(_ context.Context, name string, _ *int64) (*types.District, error) {
	if name == "Bengaluru Urban" {
		return &types.District{ID: 101, Name: "Bengaluru Urban", StateID: 7}, nil
	}
	return nil, nil
}

func (f *fakeSource) Performance(_ context.Context, districtID int64) (*types.Performance, error) {
	return &types.Performance{DistrictID: districtID, PerformanceLevel: types.LevelModerate}, nil
}

func (f *fakeSource) Comparison(_ context.Context, districtID int64, year string) (*types.Comparison, error) {
	return &types.Comparison{Current: types.Performance{DistrictID: districtID, FinYear: year}}, nil
}

func (f *fakeSource) CheckHealth(_ context.Context) bool { return true }

type fakeGeocoder struct {
	result *types.GeocodeResult
}

func (f *fakeGeocoder) Reverse(_ context.Context, _, _ float64) (*types.GeocodeResult, error) {
	return f.result, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setup(t *testing.T, geoState string) (*DashboardHandler, *store.Store, *fakeSource) {
	t.Helper()
	src := &fakeSource{}
	st := store.New(filepath.Join(t.TempDir(), "selection.json"))
	bundle := i18n.Default()
	cached := data.NewCachedClient(src)
	geo := &fakeGeocoder{result: &types.GeocodeResult{District: "Bengaluru Urban", State: geoState}}
	detector := locate.NewDetector(cached, geo, st, bundle, "Karnataka")
	return NewDashboardHandler(cached, detector, st, bundle), st, src
}

func do(h http.HandlerFunc, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)

	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func reasonOf(env envelope) string {
	var data map[string]string
	_ = json.Unmarshal(env.Data, &data)
	return data["reason"]
}

func TestGetDistrictsGatedOnStateSelection(t *testing.T) {
	h, st, src := setup(t, "Karnataka")

	rec, env := do(h.GetDistricts, http.MethodGet, "/api/v1/districts", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, 0, src.districtsCalls, "no fetch while state is absent")

	stateID := int64(7)
	st.SetSelectedState(&stateID)

	rec, env = do(h.GetDistricts, http.MethodGet, "/api/v1/districts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, 1, src.districtsCalls)
}

func TestGetPerformanceGatedOnDistrictSelection(t *testing.T) {
	h, st, _ := setup(t, "Karnataka")

	rec, _ := do(h.GetPerformance, http.MethodGet, "/api/v1/performance", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	st.SetSelection(7, 101)

	rec, env := do(h.GetPerformance, http.MethodGet, "/api/v1/performance", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var perf types.Performance
	require.NoError(t, json.Unmarshal(env.Data, &perf))
	assert.Equal(t, int64(101), perf.DistrictID)
}

func TestDetectLocationHappyPath(t *testing.T) {
	h, st, _ := setup(t, "Karnataka")

	rec, env := do(h.DetectLocation, http.MethodPost, "/api/v1/detect-location",
		`{"lat":12.97,"lon":77.59}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	var result locate.Result
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "Bengaluru Urban", result.DistrictName)

	require.NotNil(t, st.SelectedDistrictID())
	assert.Equal(t, int64(101), *st.SelectedDistrictID())
}

func TestDetectLocationOutOfRegionIsInformational(t *testing.T) {
	h, st, _ := setup(t, "Tamil Nadu")

	rec, env := do(h.DetectLocation, http.MethodPost, "/api/v1/detect-location",
		`{"lat":13.08,"lon":80.27}`)

	// Banner, not toast: a 200 outcome with a reason code.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "region_unsupported", reasonOf(env))
	assert.Contains(t, env.Message, "Tamil Nadu")
	assert.Nil(t, st.SelectedStateID())
}

func TestDetectLocationDeviceFailure(t *testing.T) {
	h, st, _ := setup(t, "Karnataka")

	rec, env := do(h.DetectLocation, http.MethodPost, "/api/v1/detect-location",
		`{"errorCode":1}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "permission_denied", reasonOf(env))
	assert.Nil(t, st.UserLocation())
}

func TestDetectLocationWithoutCoordinatesIsUnsupported(t *testing.T) {
	h, _, _ := setup(t, "Karnataka")

	rec, env := do(h.DetectLocation, http.MethodPost, "/api/v1/detect-location", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "unsupported", reasonOf(env))
}

func TestSetLanguageLocalizesGatingMessages(t *testing.T) {
	h, st, _ := setup(t, "Karnataka")

	rec, _ := do(h.SetLanguage, http.MethodPut, "/api/v1/language", `{"language":"kn"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, i18n.LangKannada, st.Language())

	_, env := do(h.GetDistricts, http.MethodGet, "/api/v1/districts", "")
	assert.Equal(t, i18n.Default().T(i18n.LangKannada, i18n.KeySelectState), env.Message)
}

func TestHealthReportsBackendFlag(t *testing.T) {
	h, st, _ := setup(t, "Karnataka")
	st.SetOffline(true)

	rec, env := do(h.Health, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, true, data["backendOffline"])
}
