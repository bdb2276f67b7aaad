package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/skuffcall/phoneinv/internal/domain"
	"github.com/skuffcall/phoneinv/internal/inventory"
)

// stateRepository is the subset of store.StateStore that the service
// requires.
type stateRepository interface {
	SaveSnapshot(ctx context.Context, phones []domain.Phone, columns []domain.Column, activities []domain.ActivityEntry) error
	SaveTheme(ctx context.Context, theme string) error
}

// InventoryService orchestrates the mutation → activity → persist →
// query cycle over the in-memory inventory. The original widget ran on
// the browser's single thread; the mutex reproduces that model under a
// concurrent HTTP server, so mutations never interleave.
type InventoryService struct {
	mu     sync.Mutex
	inv    *inventory.Inventory
	state  stateRepository
	sort   inventory.SortState
	theme  string
	logger *slog.Logger
}

func NewInventoryService(inv *inventory.Inventory, state stateRepository, theme string, logger *slog.Logger) *InventoryService {
	return &InventoryService{
		inv:    inv,
		state:  state,
		theme:  theme,
		logger: logger,
	}
}

// save persists the whole store triple. Called exactly once per logical
// mutation, after the inventory and its activity log are both updated.
func (s *InventoryService) save(ctx context.Context) error {
	return s.state.SaveSnapshot(ctx, s.inv.Phones(), s.inv.Columns(), s.inv.AllActivities())
}

func (s *InventoryService) AddPhone(ctx context.Context, fields map[string]string) (domain.Phone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	phone := s.inv.AddPhone(fields)
	if err := s.save(ctx); err != nil {
		return domain.Phone{}, fmt.Errorf("failed to persist added phone: %w", err)
	}

	s.logger.Info("phone added", "phone_id", phone.ID, "model", phone.Model)
	return phone, nil
}

func (s *InventoryService) UpdatePhone(ctx context.Context, id int, fields map[string]string) (domain.Phone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	phone, err := s.inv.UpdatePhone(id, fields)
	if err != nil {
		return domain.Phone{}, err
	}
	if err := s.save(ctx); err != nil {
		return domain.Phone{}, fmt.Errorf("failed to persist updated phone: %w", err)
	}

	s.logger.Info("phone updated", "phone_id", phone.ID, "model", phone.Model)
	return phone, nil
}

func (s *InventoryService) DeletePhone(ctx context.Context, id int) (domain.Phone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	phone, err := s.inv.DeletePhone(id)
	if err != nil {
		return domain.Phone{}, err
	}
	if err := s.save(ctx); err != nil {
		return domain.Phone{}, fmt.Errorf("failed to persist phone deletion: %w", err)
	}

	s.logger.Info("phone deleted", "phone_id", id, "model", phone.Model)
	return phone, nil
}

func (s *InventoryService) Phone(id int) (domain.Phone, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.Phone(id)
}

func (s *InventoryService) Phones() []domain.Phone {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.Phones()
}

// ToggleColumn flips a column's visibility. Unknown IDs are a silent
// no-op, so the state is persisted unconditionally.
func (s *InventoryService) ToggleColumn(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inv.ToggleColumn(id)
	if err := s.save(ctx); err != nil {
		return fmt.Errorf("failed to persist column visibility: %w", err)
	}

	s.logger.Info("column toggled", "column", id)
	return nil
}

// ShowColumn makes a hidden column visible again and returns it for the
// "column shown" notice. Unknown IDs report ok=false without error.
func (s *InventoryService) ShowColumn(ctx context.Context, id string) (domain.Column, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.inv.ShowColumn(id)
	if !ok {
		return domain.Column{}, false, nil
	}
	if err := s.save(ctx); err != nil {
		return domain.Column{}, false, fmt.Errorf("failed to persist column visibility: %w", err)
	}

	s.logger.Info("column shown", "column", id)
	return col, true, nil
}

// HiddenColumnOptions lists the columns offered by the show-column
// dropdown. With nothing hidden it reports the benign
// inventory.ErrNoHiddenColumns, which the view renders as a notice.
func (s *InventoryService) HiddenColumnOptions() ([]domain.Column, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hidden := s.inv.HiddenColumns()
	if len(hidden) == 0 {
		return nil, inventory.ErrNoHiddenColumns
	}
	return hidden, nil
}

func (s *InventoryService) ReorderColumns(ctx context.Context, from, to int, visibleOnly bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.inv.ReorderColumns(from, to, visibleOnly); err != nil {
		return err
	}
	if err := s.save(ctx); err != nil {
		return fmt.Errorf("failed to persist column order: %w", err)
	}

	s.logger.Info("columns reordered", "from", from, "to", to, "visible_only", visibleOnly)
	return nil
}

func (s *InventoryService) Columns() []domain.Column {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.Columns()
}

func (s *InventoryService) VisibleColumns() []domain.Column {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.VisibleColumns()
}

// AdvanceSort applies one sort request on a column and returns the
// resulting state. Sort state is ephemeral view state: never persisted.
func (s *InventoryService) AdvanceSort(column string) inventory.SortState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sort.Advance(column)
	return s.sort
}

func (s *InventoryService) Sort() inventory.SortState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sort
}

// FilteredPhones runs the query engine: filter first, then the current
// sort over the filtered subset.
func (s *InventoryService) FilteredPhones(search, status string) []domain.Phone {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := inventory.Filter(s.inv.Phones(), search, status)
	return inventory.Sort(filtered, s.sort.Column, s.sort.Direction)
}

func (s *InventoryService) Activities(n int) []domain.ActivityEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.Activities(n)
}

// Stats are the dashboard counters.
type Stats struct {
	Total    int
	Free     int
	Assigned int
	Broken   int
}

func (s *InventoryService) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	var st Stats
	for _, p := range s.inv.Phones() {
		st.Total++
		switch p.Status {
		case domain.StatusFree:
			st.Free++
		case domain.StatusAssigned:
			st.Assigned++
		case domain.StatusBroken:
			st.Broken++
		}
	}
	return st
}

func (s *InventoryService) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// ToggleTheme flips dark/light and persists the choice immediately.
func (s *InventoryService) ToggleTheme(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.theme == "dark" {
		s.theme = "light"
	} else {
		s.theme = "dark"
	}
	if err := s.state.SaveTheme(ctx, s.theme); err != nil {
		return "", fmt.Errorf("failed to persist theme: %w", err)
	}

	s.logger.Info("theme toggled", "theme", s.theme)
	return s.theme, nil
}
