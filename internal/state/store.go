// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package state implements dashboard and study session persistence to the
// filesystem.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrInvalidID is returned when a state file name would escape the base
// directory.
var ErrInvalidID = errors.New("state: invalid id")

// DashboardState captures the parts of the board UI worth restoring between
// runs.
type DashboardState struct {
	ActiveWidget string              `json:"active_widget"`
	ViewModes    map[string]string   `json:"view_modes,omitempty"`
	TagFilters   map[string][]string `json:"tag_filters,omitempty"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// StudySession records one flash card review pass.
type StudySession struct {
	ID         string    `json:"id"`
	Deck       string    `json:"deck"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Seen       int       `json:"seen"`
	Again      int       `json:"again"`
	Good       int       `json:"good"`
}

// FileStore persists state as JSON files under a base directory.
type FileStore struct {
	baseDir string
}

// NewFileStore creates a FileStore that saves state under baseDir.
func NewFileStore(baseDir string) *FileStore {
	return &FileStore{baseDir: baseDir}
}

// DefaultDir returns the per-user state directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("state: resolving config dir: %w", err)
	}
	return filepath.Join(base, "craftboard", "state"), nil
}

// SaveDashboard writes the dashboard state to its JSON file.
func (s *FileStore) SaveDashboard(ds DashboardState) error {
	ds.UpdatedAt = time.Now()
	return s.write("dashboard", ds)
}

// LoadDashboard reads the dashboard state.
// Returns (state, true, nil) if found, (zero, false, nil) if not found.
func (s *FileStore) LoadDashboard() (DashboardState, bool, error) {
	var ds DashboardState
	found, err := s.read("dashboard", &ds)
	return ds, found, err
}

// AppendSession adds a study session record to the session log.
func (s *FileStore) AppendSession(session StudySession) error {
	sessions, err := s.Sessions()
	if err != nil {
		return err
	}
	sessions = append(sessions, session)
	return s.write("sessions", sessions)
}

// Sessions returns all recorded study sessions, oldest first.
func (s *FileStore) Sessions() ([]StudySession, error) {
	var sessions []StudySession
	if _, err := s.read("sessions", &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// Remove deletes a state file. Missing files are not an error.
func (s *FileStore) Remove(name string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("state: removing %s: %w", p, err)
	}
	return nil
}

func (s *FileStore) write(name string, v interface{}) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return fmt.Errorf("state: creating directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("state: marshaling: %w", err)
	}

	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("state: writing %s: %w", p, err)
	}
	return nil
}

// read unmarshals a state file into v. Returns false with no error when the
// file does not exist.
func (s *FileStore) read(name string, v interface{}) (bool, error) {
	p, err := s.path(name)
	if err != nil {
		return false, err
	}

	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("state: reading %s: %w", p, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("state: parsing %s: %w", p, err)
	}
	return true, nil
}

// path returns the filesystem path for a state file. It rejects names that
// are empty, dot-segments, or contain path separators.
func (s *FileStore) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || name != filepath.Base(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, name)
	}
	return filepath.Join(s.baseDir, name+".json"), nil
}
