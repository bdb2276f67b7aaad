package inventory

import (
	"fmt"

	"github.com/skuffcall/phoneinv/internal/domain"
)

// VisibleColumns returns the visible columns in display order.
func (inv *Inventory) VisibleColumns() []domain.Column {
	var out []domain.Column
	for _, c := range inv.columns {
		if c.Visible {
			out = append(out, c)
		}
	}
	return out
}

// HiddenColumns returns the hidden columns in display order.
func (inv *Inventory) HiddenColumns() []domain.Column {
	var out []domain.Column
	for _, c := range inv.columns {
		if !c.Visible {
			out = append(out, c)
		}
	}
	return out
}

// ToggleColumn flips the visibility of the named column. Unknown IDs are
// a silent no-op: callers source IDs from the registry itself.
func (inv *Inventory) ToggleColumn(id string) {
	for i := range inv.columns {
		if inv.columns[i].ID == id {
			inv.columns[i].Visible = !inv.columns[i].Visible
			return
		}
	}
}

// HideColumn marks the column hidden; unknown IDs are ignored.
func (inv *Inventory) HideColumn(id string) {
	for i := range inv.columns {
		if inv.columns[i].ID == id {
			inv.columns[i].Visible = false
			return
		}
	}
}

// ShowColumn marks the column visible and returns it so callers can
// build the "column shown" notice. Unknown IDs return false.
func (inv *Inventory) ShowColumn(id string) (domain.Column, bool) {
	for i := range inv.columns {
		if inv.columns[i].ID == id {
			inv.columns[i].Visible = true
			return inv.columns[i], true
		}
	}
	return domain.Column{}, false
}

// ReorderColumns moves the column at from to position to. With
// visibleOnly the indices address the visible subsequence, as in the
// table-header drag: the moved column is repositioned among the visible
// ones and hidden columns keep their relative order at the tail.
// The identifier set is never changed, duplicated or shrunk.
func (inv *Inventory) ReorderColumns(from, to int, visibleOnly bool) error {
	if !visibleOnly {
		return reorder(inv.columns, from, to)
	}

	visible := inv.VisibleColumns()
	if err := reorder(visible, from, to); err != nil {
		return err
	}
	inv.columns = append(visible, inv.HiddenColumns()...)
	return nil
}

func reorder(cols []domain.Column, from, to int) error {
	if from < 0 || from >= len(cols) {
		return fmt.Errorf("reorder: from index %d out of range", from)
	}
	if to < 0 || to >= len(cols) {
		return fmt.Errorf("reorder: to index %d out of range", to)
	}
	moved := cols[from]
	copy(cols[from:], cols[from+1:])
	copy(cols[to+1:], cols[to:])
	cols[to] = moved
	return nil
}
