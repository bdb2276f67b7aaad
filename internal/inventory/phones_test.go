package inventory

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skuffcall/phoneinv/internal/domain"
)

func newTestInventory(phones ...domain.Phone) *Inventory {
	inv := New(phones, domain.DefaultColumns(), nil)
	inv.SetClock(func() time.Time {
		return time.Date(2026, 8, 31, 14, 5, 0, 0, time.UTC)
	})
	return inv
}

func TestAddPhoneFirstID(t *testing.T) {
	inv := newTestInventory()

	phone := inv.AddPhone(map[string]string{"model": "Cisco 7841", "status": "free"})

	assert.Equal(t, 1, phone.ID)
	assert.Equal(t, "Cisco 7841", phone.Model)
	assert.Equal(t, domain.StatusFree, phone.Status)
}

func TestAddPhoneIDIsMaxPlusOne(t *testing.T) {
	inv := newTestInventory(
		domain.Phone{ID: 3, Model: "Cisco 7821"},
		domain.Phone{ID: 8, Model: "Yealink T42S"},
	)

	phone := inv.AddPhone(map[string]string{"model": "Yealink T46S", "mac": "00:00:00:00:00:01", "status": "free"})
	assert.Equal(t, 9, phone.ID)
}

func TestAddPhoneIDNotLengthBased(t *testing.T) {
	inv := newTestInventory()

	a := inv.AddPhone(map[string]string{"model": "A"})
	b := inv.AddPhone(map[string]string{"model": "B"})
	_, err := inv.DeletePhone(a.ID)
	require.NoError(t, err)

	// Store length is 1 again, but the next ID follows max+1, so it
	// never collides with the surviving record.
	c := inv.AddPhone(map[string]string{"model": "C"})
	assert.Equal(t, b.ID+1, c.ID)
	assert.NotEqual(t, b.ID, c.ID)
}

func TestAddPhoneUnsetFieldsDefaultEmpty(t *testing.T) {
	inv := newTestInventory()

	phone := inv.AddPhone(map[string]string{"model": "Cisco 7841"})

	assert.Empty(t, phone.MAC)
	assert.Empty(t, phone.IP)
	assert.Empty(t, phone.User)
	assert.Empty(t, phone.Department)
	assert.Empty(t, phone.Notes)
}

func TestAddPhoneRecordsActivity(t *testing.T) {
	inv := newTestInventory()

	inv.AddPhone(map[string]string{"model": "Cisco 7841"})

	entries := inv.Activities(1)
	require.Len(t, entries, 1)
	assert.Equal(t, "добавлен", entries[0].Action)
	assert.Equal(t, "Cisco 7841", entries[0].PhoneModel)
	assert.Equal(t, "31.08.2026, 14:05", entries[0].Timestamp)
}

func TestUpdatePhoneMergesPartialFields(t *testing.T) {
	inv := newTestInventory(domain.Phone{
		ID: 1, Model: "Cisco 7841", MAC: "00:1A:2B:3C:4D:5E", Status: domain.StatusFree,
	})

	updated, err := inv.UpdatePhone(1, map[string]string{"ip": "192.168.1.50"})
	require.NoError(t, err)

	assert.Equal(t, "192.168.1.50", updated.IP)
	assert.Equal(t, "Cisco 7841", updated.Model, "unlisted fields stay put")
	assert.Equal(t, "00:1A:2B:3C:4D:5E", updated.MAC)
}

func TestUpdatePhoneNotFound(t *testing.T) {
	inv := newTestInventory()

	_, err := inv.UpdatePhone(42, map[string]string{"model": "X"})
	assert.ErrorIs(t, err, ErrPhoneNotFound)
}

func TestUpdatePhoneIDImmutable(t *testing.T) {
	inv := newTestInventory(domain.Phone{ID: 7, Model: "Cisco 7841"})

	// "id" is not a column identifier; SetField ignores it.
	updated, err := inv.UpdatePhone(7, map[string]string{"id": "99", "model": "Cisco 8841"})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.ID)
}

func TestDeletePhone(t *testing.T) {
	inv := newTestInventory(
		domain.Phone{ID: 1, Model: "Cisco 7841"},
		domain.Phone{ID: 2, Model: "Yealink T46S"},
	)

	deleted, err := inv.DeletePhone(1)
	require.NoError(t, err)
	assert.Equal(t, "Cisco 7841", deleted.Model)

	_, ok := inv.Phone(1)
	assert.False(t, ok)
	assert.Len(t, inv.Phones(), 1)
}

func TestDeletePhoneNotFound(t *testing.T) {
	inv := newTestInventory()

	_, err := inv.DeletePhone(1)
	assert.True(t, errors.Is(err, ErrPhoneNotFound))
}

func TestDeletePhoneAlwaysLogs(t *testing.T) {
	inv := newTestInventory(domain.Phone{ID: 1, Model: "Polycom VVX 450"})

	_, err := inv.DeletePhone(1)
	require.NoError(t, err)

	entries := inv.Activities(1)
	require.Len(t, entries, 1)
	assert.Equal(t, "удален", entries[0].Action)
	assert.Equal(t, "Polycom VVX 450", entries[0].PhoneModel)
	assert.Empty(t, entries[0].Details)
}

func TestPhonesKeepInsertionOrder(t *testing.T) {
	inv := newTestInventory()
	inv.AddPhone(map[string]string{"model": "B"})
	inv.AddPhone(map[string]string{"model": "A"})

	phones := inv.Phones()
	require.Len(t, phones, 2)
	assert.Equal(t, "B", phones[0].Model)
	assert.Equal(t, "A", phones[1].Model)
}
