// Package store holds the per-session selection state: language, chosen
// state and district, last known device location and the connectivity
// flag. Language and the two selection ids survive restarts via a single
// JSON file; everything else resets with the session.
package store

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/thanseerjelani/mgnrega-dashboard/internal/i18n"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/types"
)

// Snapshot is a read-only copy of the full store state.
type Snapshot struct {
	Language             i18n.Lang          `json:"language"`
	SelectedStateID      *int64             `json:"selectedStateId"`
	SelectedDistrictID   *int64             `json:"selectedDistrictId"`
	UserLocation         *types.Coordinates `json:"userLocation,omitempty"`
	DetectedDistrictName string             `json:"detectedDistrictName,omitempty"`
	Offline              bool               `json:"isOffline"`
}

// persisted is the subset rewritten to disk on every relevant mutation.
type persisted struct {
	Language           i18n.Lang `json:"language"`
	SelectedStateID    *int64    `json:"selectedStateId"`
	SelectedDistrictID *int64    `json:"selectedDistrictId"`
}

// Store is the single shared mutable resource of the application.
// Setters are total: persistence failures are logged, never surfaced.
type Store struct {
	mu   sync.RWMutex
	path string

	language             i18n.Lang
	selectedStateID      *int64
	selectedDistrictID   *int64
	userLocation         *types.Coordinates
	detectedDistrictName string
	offline              bool
}

// New creates a store backed by the given file, loading any previously
// persisted selection. A missing or unreadable file yields defaults.
func New(path string) *Store {
	s := &Store{path: path, language: i18n.LangEnglish}
	s.load()
	return s
}

func (s *Store) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var p persisted
	if err := json.Unmarshal(raw, &p); err != nil {
		slog.Warn("ignoring corrupt selection file", "path", s.path, "error", err)
		return
	}
	s.language = i18n.Normalize(string(p.Language))
	s.selectedStateID = p.SelectedStateID
	s.selectedDistrictID = p.SelectedDistrictID
}

// persist rewrites the persisted subset. Callers must hold the lock.
func (s *Store) persist() {
	p := persisted{
		Language:           s.language,
		SelectedStateID:    s.selectedStateID,
		SelectedDistrictID: s.selectedDistrictID,
	}
	raw, err := json.Marshal(p)
	if err != nil {
		slog.Error("encoding selection state", "error", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		slog.Error("creating state directory", "error", err)
		return
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		slog.Error("writing selection state", "path", s.path, "error", err)
	}
}

// SetLanguage switches the interface language.
func (s *Store) SetLanguage(lang i18n.Lang) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = lang
	s.persist()
}

// SetSelectedState selects a state and always clears the district: a
// district id is only meaningful under the state it belongs to.
func (s *Store) SetSelectedState(stateID *int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedStateID = stateID
	s.selectedDistrictID = nil
	s.persist()
}

// SetSelectedDistrict selects a district within the current state.
func (s *Store) SetSelectedDistrict(districtID *int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedDistrictID = districtID
	s.persist()
}

// SetSelection commits a state and district together. Used by location
// detection so the pair never lands partially.
func (s *Store) SetSelection(stateID, districtID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedStateID = &stateID
	s.selectedDistrictID = &districtID
	s.persist()
}

// SetUserLocation records the last acquired device coordinates.
func (s *Store) SetUserLocation(loc *types.Coordinates) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if loc == nil {
		s.userLocation = nil
		return
	}
	c := *loc
	s.userLocation = &c
}

// SetDetectedDistrictName records the raw geocoded district name.
func (s *Store) SetDetectedDistrictName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detectedDistrictName = name
}

// SetOffline updates the connectivity flag. Written only by the health
// poller.
func (s *Store) SetOffline(offline bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offline = offline
}

// Language returns the current interface language.
func (s *Store) Language() i18n.Lang {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// SelectedStateID returns the selected state id, or nil.
func (s *Store) SelectedStateID() *int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyID(s.selectedStateID)
}

// SelectedDistrictID returns the selected district id, or nil.
func (s *Store) SelectedDistrictID() *int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyID(s.selectedDistrictID)
}

// UserLocation returns the last recorded coordinates, or nil.
func (s *Store) UserLocation() *types.Coordinates {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.userLocation == nil {
		return nil
	}
	c := *s.userLocation
	return &c
}

// Offline reports the connectivity flag.
func (s *Store) Offline() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.offline
}

// State returns a copy of the full store state.
func (s *Store) State() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{
		Language:             s.language,
		SelectedStateID:      copyID(s.selectedStateID),
		SelectedDistrictID:   copyID(s.selectedDistrictID),
		DetectedDistrictName: s.detectedDistrictName,
		Offline:              s.offline,
	}
	if s.userLocation != nil {
		c := *s.userLocation
		snap.UserLocation = &c
	}
	return snap
}

func copyID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
