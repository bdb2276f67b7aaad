// Package inventory holds the in-memory state machine of the phone
// directory: the phone records, the column registry, the bounded
// activity log and the filter/sort query engine. It owns no I/O;
// persistence is the caller's concern, exactly once per mutation.
package inventory

import (
	"time"

	"github.com/skuffcall/phoneinv/internal/domain"
)

type Inventory struct {
	phones     []domain.Phone
	columns    []domain.Column
	activities []domain.ActivityEntry

	now func() time.Time
}

// New builds an inventory from previously loaded state. The slices are
// adopted, not copied; callers hand over ownership.
func New(phones []domain.Phone, columns []domain.Column, activities []domain.ActivityEntry) *Inventory {
	return &Inventory{
		phones:     phones,
		columns:    columns,
		activities: activities,
		now:        time.Now,
	}
}

// SetClock replaces the timestamp source. Tests use it to make activity
// timestamps deterministic.
func (inv *Inventory) SetClock(now func() time.Time) {
	inv.now = now
}

// Phones returns all phone records in insertion order.
func (inv *Inventory) Phones() []domain.Phone {
	out := make([]domain.Phone, len(inv.phones))
	copy(out, inv.phones)
	return out
}

// Columns returns the full column registry in display order.
func (inv *Inventory) Columns() []domain.Column {
	out := make([]domain.Column, len(inv.columns))
	copy(out, inv.columns)
	return out
}
