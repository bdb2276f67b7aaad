package store

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/skuffcall/phoneinv/internal/domain"
)

// Storage keys. phones, columns and activities hold JSON arrays; theme
// holds a plain string.
const (
	KeyPhones     = "phones"
	KeyColumns    = "columns"
	KeyActivities = "activities"
	KeyTheme      = "theme"
)

// Snapshot is the full persisted state of the widget.
type Snapshot struct {
	Phones     []domain.Phone
	Columns    []domain.Column
	Activities []domain.ActivityEntry
	Theme      string
}

// LoadSnapshot reads every key and falls back to built-in defaults per
// key when a value is missing or unparseable. A corrupt record resets
// that key only; it never fails the load.
func (s *StateStore) LoadSnapshot(ctx context.Context, logger *slog.Logger) (Snapshot, error) {
	snap := Snapshot{
		Phones:     domain.DefaultPhones(),
		Columns:    domain.DefaultColumns(),
		Activities: []domain.ActivityEntry{},
		Theme:      domain.DefaultTheme,
	}

	if raw, ok, err := s.Get(ctx, KeyPhones); err != nil {
		return Snapshot{}, err
	} else if ok {
		var phones []domain.Phone
		if err := json.Unmarshal([]byte(raw), &phones); err != nil {
			logger.Warn("persisted phones unreadable, using defaults", "error", err)
		} else {
			snap.Phones = phones
		}
	}

	if raw, ok, err := s.Get(ctx, KeyColumns); err != nil {
		return Snapshot{}, err
	} else if ok {
		var columns []domain.Column
		if err := json.Unmarshal([]byte(raw), &columns); err != nil {
			logger.Warn("persisted columns unreadable, using defaults", "error", err)
		} else {
			snap.Columns = columns
		}
	}

	if raw, ok, err := s.Get(ctx, KeyActivities); err != nil {
		return Snapshot{}, err
	} else if ok {
		var activities []domain.ActivityEntry
		if err := json.Unmarshal([]byte(raw), &activities); err != nil {
			logger.Warn("persisted activities unreadable, starting empty", "error", err)
		} else {
			snap.Activities = activities
		}
	}

	if raw, ok, err := s.Get(ctx, KeyTheme); err != nil {
		return Snapshot{}, err
	} else if ok && (raw == "dark" || raw == "light") {
		snap.Theme = raw
	}

	return snap, nil
}

// SaveSnapshot serializes and writes the store triple in one
// transaction, so a single logical mutation can never leave the keys
// mutually stale.
func (s *StateStore) SaveSnapshot(ctx context.Context, phones []domain.Phone, columns []domain.Column, activities []domain.ActivityEntry) error {
	rawPhones, err := json.Marshal(phones)
	if err != nil {
		return err
	}
	rawColumns, err := json.Marshal(columns)
	if err != nil {
		return err
	}
	rawActivities, err := json.Marshal(activities)
	if err != nil {
		return err
	}

	return s.SetMany(ctx, map[string]string{
		KeyPhones:     string(rawPhones),
		KeyColumns:    string(rawColumns),
		KeyActivities: string(rawActivities),
	})
}

// SaveTheme persists the theme key on its own; theme changes are not
// part of the store triple.
func (s *StateStore) SaveTheme(ctx context.Context, theme string) error {
	return s.Set(ctx, KeyTheme, theme)
}
