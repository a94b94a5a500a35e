package data

import (
	"context"
	"strconv"
	"sync"

	"github.com/thanseerjelani/mgnrega-dashboard/internal/types"
)

// Source is the read API the cache wraps. *Client implements it; tests
// substitute fakes.
type Source interface {
	States(ctx context.Context) ([]types.State, error)
	Districts(ctx context.Context, stateID int64) ([]types.District, error)
	SearchDistrict(ctx context.Context, name string, stateID *int64) (*types.District, error)
	Performance(ctx context.Context, districtID int64) (*types.Performance, error)
	Comparison(ctx context.Context, districtID int64, year string) (*types.Comparison, error)
	CheckHealth(ctx context.Context) bool
}

// CachedClient wraps a Source with per-session, key-scoped caching:
//
//   - states: fetched at most once per session; a failure is remembered
//     until RetryStates is invoked
//   - districts: one fetch per distinct state id
//   - performance / comparison: one fetch per distinct district id (and
//     year, for comparisons)
//
// SearchDistrict and CheckHealth pass through uncached. Cached slices are
// returned as copies.
type CachedClient struct {
	source Source

	mu            sync.RWMutex
	states        []types.State
	statesErr     error
	statesFetched bool
	districts     map[int64][]types.District
	performance   map[int64]*types.Performance
	comparison    map[string]*types.Comparison
}

func NewCachedClient(source Source) *CachedClient {
	return &CachedClient{
		source:      source,
		districts:   make(map[int64][]types.District),
		performance: make(map[int64]*types.Performance),
		comparison:  make(map[string]*types.Comparison),
	}
}

// States returns the session-cached region list. After a failure the
// stored error is returned until RetryStates succeeds; no automatic
// refetch happens.
func (c *CachedClient) States(ctx context.Context) ([]types.State, error) {
	c.mu.RLock()
	if c.statesFetched {
		states, err := copyStates(c.states), c.statesErr
		c.mu.RUnlock()
		return states, err
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.statesFetched {
		return copyStates(c.states), c.statesErr
	}
	states, err := c.source.States(ctx)
	c.statesFetched = true
	c.states, c.statesErr = states, err
	return copyStates(states), err
}

// RetryStates invalidates the region-list entry and re-issues the fetch.
// On success the stored error is cleared. This is the only retry path in
// the application, and it is user-triggered.
func (c *CachedClient) RetryStates(ctx context.Context) ([]types.State, error) {
	c.mu.Lock()
	c.statesFetched = false
	c.states, c.statesErr = nil, nil
	c.mu.Unlock()
	return c.States(ctx)
}

// Districts returns the district list for a state, fetching once per
// distinct state id. Failures are not cached.
func (c *CachedClient) Districts(ctx context.Context, stateID int64) ([]types.District, error) {
	c.mu.RLock()
	if cached, ok := c.districts[stateID]; ok {
		result := copyDistricts(cached)
		c.mu.RUnlock()
		return result, nil
	}
	c.mu.RUnlock()

	districts, err := c.source.Districts(ctx, stateID)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.districts[stateID] = districts
	c.mu.Unlock()
	return copyDistricts(districts), nil
}

// SearchDistrict passes through to the source: best-effort lookups during
// detection should always see fresh data.
func (c *CachedClient) SearchDistrict(ctx context.Context, name string, stateID *int64) (*types.District, error) {
	return c.source.SearchDistrict(ctx, name, stateID)
}

// Performance returns the cached snapshot for a district, fetching once
// per distinct district id.
func (c *CachedClient) Performance(ctx context.Context, districtID int64) (*types.Performance, error) {
	c.mu.RLock()
	if cached, ok := c.performance[districtID]; ok {
		p := *cached
		c.mu.RUnlock()
		return &p, nil
	}
	c.mu.RUnlock()

	perf, err := c.source.Performance(ctx, districtID)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.performance[districtID] = perf
	c.mu.Unlock()
	p := *perf
	return &p, nil
}

// Comparison returns the cached comparison for a district and year.
func (c *CachedClient) Comparison(ctx context.Context, districtID int64, year string) (*types.Comparison, error) {
	if year == "" {
		year = DefaultComparisonYear
	}
	key := strconv.FormatInt(districtID, 10) + "|" + year

	c.mu.RLock()
	if cached, ok := c.comparison[key]; ok {
		cp := *cached
		c.mu.RUnlock()
		return &cp, nil
	}
	c.mu.RUnlock()

	cmp, err := c.source.Comparison(ctx, districtID, year)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.comparison[key] = cmp
	c.mu.Unlock()
	cp := *cmp
	return &cp, nil
}

// CheckHealth passes through: liveness must never observe cached state.
func (c *CachedClient) CheckHealth(ctx context.Context) bool {
	return c.source.CheckHealth(ctx)
}

func copyStates(in []types.State) []types.State {
	if in == nil {
		return nil
	}
	out := make([]types.State, len(in))
	copy(out, in)
	return out
}

func copyDistricts(in []types.District) []types.District {
	if in == nil {
		return nil
	}
	out := make([]types.District, len(in))
	copy(out, in)
	return out
}
