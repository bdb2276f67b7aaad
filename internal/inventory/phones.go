package inventory

import (
	"fmt"

	"github.com/skuffcall/phoneinv/internal/domain"
)

// Phone returns the record with the given ID, or false when absent.
func (inv *Inventory) Phone(id int) (domain.Phone, bool) {
	for _, p := range inv.phones {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Phone{}, false
}

// AddPhone appends a new record built from the given column-keyed field
// values. The ID is max(existing)+1, never reused after deletions, so
// identifiers stay unique for the lifetime of the store.
func (inv *Inventory) AddPhone(fields map[string]string) domain.Phone {
	maxID := 0
	for _, p := range inv.phones {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	phone := domain.Phone{ID: maxID + 1}
	for key, value := range fields {
		phone.SetField(key, value)
	}

	inv.phones = append(inv.phones, phone)
	inv.Record("добавлен", phone.Model, "")
	return phone
}

// UpdatePhone merges the given field values over the existing record and
// derives the matching activity entry. Fields not present in the map are
// left untouched.
func (inv *Inventory) UpdatePhone(id int, fields map[string]string) (domain.Phone, error) {
	idx := -1
	for i, p := range inv.phones {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Phone{}, fmt.Errorf("update phone %d: %w", id, ErrPhoneNotFound)
	}

	old := inv.phones[idx]
	phone := old
	changed := 0
	for key, value := range fields {
		if old.Field(key) != value {
			changed++
		}
		phone.SetField(key, value)
	}
	inv.phones[idx] = phone

	if changed > 0 {
		inv.recordEdit(old, phone, changed)
	}
	return phone, nil
}

// DeletePhone removes the record and unconditionally logs the deletion
// with the model snapshot.
func (inv *Inventory) DeletePhone(id int) (domain.Phone, error) {
	for i, p := range inv.phones {
		if p.ID == id {
			inv.Record("удален", p.Model, "")
			inv.phones = append(inv.phones[:i], inv.phones[i+1:]...)
			return p, nil
		}
	}
	return domain.Phone{}, fmt.Errorf("delete phone %d: %w", id, ErrPhoneNotFound)
}

// recordEdit turns a field diff into a single activity entry. A status
// change wins over everything else; a user change over the generic
// message; the generic message carries the changed-field count.
func (inv *Inventory) recordEdit(old, updated domain.Phone, changed int) {
	if old.Status != updated.Status {
		detail := fmt.Sprintf("%s → %s", old.Status.Label(), updated.Status.Label())
		inv.Record("изменен статус:", updated.Model, detail)
		return
	}

	if old.User != updated.User {
		switch {
		case old.User == "":
			inv.Record("выдан пользователю:", updated.Model, updated.User)
		case updated.User == "":
			inv.Record("возвращен от:", updated.Model, old.User)
		default:
			inv.Record("изменен пользователь:", updated.Model, fmt.Sprintf("%s → %s", old.User, updated.User))
		}
		return
	}

	inv.Record("отредактирован", updated.Model, fmt.Sprintf("изменено полей: %d", changed))
}
