package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ironsheep/color-family-mcp/internal/family"
)

// ErrInvalidThreshold is returned for a ΔE threshold that is not positive.
var ErrInvalidThreshold = errors.New("delta E threshold must be positive")

// Settings is the persisted, user-editable part of the configuration. The
// JSON shape matches the "settings" object of catalog exports.
type Settings struct {
	DeltaThreshold float64              `json:"deltaThreshold"`
	HueBoundaries  family.HueBoundaries `json:"hueBoundaries"`
}

// settingsFile is the on-disk form; every field is optional.
type settingsFile struct {
	DeltaThreshold *float64              `json:"deltaThreshold,omitempty"`
	HueBoundaries  family.BoundaryUpdate `json:"hueBoundaries"`
}

// SettingsStore guards a Settings value and its backing file.
//
// SettingsStore is safe for concurrent use. An empty path keeps settings in
// memory only.
type SettingsStore struct {
	mu       sync.Mutex
	path     string
	settings Settings
}

// NewSettingsStore returns a store initialized with the given threshold and
// the default hue boundaries.
func NewSettingsStore(path string, threshold float64) *SettingsStore {
	return &SettingsStore{
		path: path,
		settings: Settings{
			DeltaThreshold: threshold,
			HueBoundaries:  family.DefaultHueBoundaries,
		},
	}
}

// Path returns the backing file path, or "" when the store is memory-only.
func (s *SettingsStore) Path() string {
	return s.path
}

// Get returns a copy of the current settings.
func (s *SettingsStore) Get() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Load merges the settings file into the store. A missing file is not an
// error; the store keeps its current values.
func (s *SettingsStore) Load() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return s.settings, nil
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return s.settings, nil
	}
	if err != nil {
		return s.settings, fmt.Errorf("failed to read settings: %w", err)
	}

	var f settingsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return s.settings, fmt.Errorf("failed to parse settings %s: %w", s.path, err)
	}
	if f.DeltaThreshold != nil {
		if *f.DeltaThreshold <= 0 {
			return s.settings, fmt.Errorf("settings %s: %w", s.path, ErrInvalidThreshold)
		}
		s.settings.DeltaThreshold = *f.DeltaThreshold
	}
	s.settings.HueBoundaries = s.settings.HueBoundaries.Merge(f.HueBoundaries)
	return s.settings, nil
}

// Change is one edit of the stored settings. Reset restores the default
// boundaries before Boundaries is merged. A nil Threshold keeps the current
// threshold.
type Change struct {
	Reset      bool
	Boundaries family.BoundaryUpdate
	Threshold  *float64
}

// Apply applies c and persists the result with a single write. When the
// threshold is invalid or the write fails, the stored settings are left as
// they were.
func (s *SettingsStore) Apply(c Change) (Settings, error) {
	if c.Threshold != nil && *c.Threshold <= 0 {
		return s.Get(), ErrInvalidThreshold
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.settings
	if c.Reset {
		next.HueBoundaries = family.DefaultHueBoundaries
	}
	next.HueBoundaries = next.HueBoundaries.Merge(c.Boundaries)
	if c.Threshold != nil {
		next.DeltaThreshold = *c.Threshold
	}
	if err := s.saveLocked(next); err != nil {
		return s.settings, err
	}
	s.settings = next
	return next, nil
}

// UpdateBoundaries merges u into the stored boundaries and persists them.
func (s *SettingsStore) UpdateBoundaries(u family.BoundaryUpdate) (Settings, error) {
	return s.Apply(Change{Boundaries: u})
}

// SetThreshold replaces the ΔE threshold and persists it.
func (s *SettingsStore) SetThreshold(threshold float64) (Settings, error) {
	return s.Apply(Change{Threshold: &threshold})
}

// saveLocked writes next atomically via a temp file and rename.
func (s *SettingsStore) saveLocked(next Settings) error {
	if s.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".settings-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace settings: %w", err)
	}
	return nil
}
