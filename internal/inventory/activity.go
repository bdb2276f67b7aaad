package inventory

import "github.com/skuffcall/phoneinv/internal/domain"

// maxActivities bounds the audit trail to the most recent entries.
const maxActivities = 50

// Record prepends an audit entry stamped with the current time and
// evicts anything past the bound. It never fails.
func (inv *Inventory) Record(action, phoneModel, details string) {
	entry := domain.ActivityEntry{
		Timestamp:  inv.now().Format(domain.TimestampLayout),
		Action:     action,
		PhoneModel: phoneModel,
		Details:    details,
	}

	inv.activities = append([]domain.ActivityEntry{entry}, inv.activities...)
	if len(inv.activities) > maxActivities {
		inv.activities = inv.activities[:maxActivities]
	}
}

// Activities returns up to n entries, newest first. n past the log
// length returns everything available.
func (inv *Inventory) Activities(n int) []domain.ActivityEntry {
	if n > len(inv.activities) {
		n = len(inv.activities)
	}
	out := make([]domain.ActivityEntry, n)
	copy(out, inv.activities[:n])
	return out
}

// AllActivities returns the whole log, newest first.
func (inv *Inventory) AllActivities() []domain.ActivityEntry {
	return inv.Activities(len(inv.activities))
}
