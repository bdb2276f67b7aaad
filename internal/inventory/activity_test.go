package inventory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skuffcall/phoneinv/internal/domain"
)

func TestStatusChangeSuppressesOtherMessages(t *testing.T) {
	inv := newTestInventory(domain.Phone{ID: 1, Model: "Cisco 7841", Status: domain.StatusFree})

	// Status and user change in the same edit: only the status message
	// is logged, the user assignment message is suppressed.
	_, err := inv.UpdatePhone(1, map[string]string{"status": "assigned", "user": "Иванов"})
	require.NoError(t, err)

	entries := inv.AllActivities()
	require.Len(t, entries, 1)
	assert.Equal(t, "изменен статус:", entries[0].Action)
	assert.Equal(t, "свободен → выдан", entries[0].Details)
	assert.Equal(t, "Cisco 7841", entries[0].PhoneModel)
}

func TestUserAssigned(t *testing.T) {
	inv := newTestInventory(domain.Phone{ID: 1, Model: "Cisco 7841", Status: domain.StatusFree})

	_, err := inv.UpdatePhone(1, map[string]string{"user": "Петров П.П."})
	require.NoError(t, err)

	entries := inv.Activities(1)
	require.Len(t, entries, 1)
	assert.Equal(t, "выдан пользователю:", entries[0].Action)
	assert.Equal(t, "Петров П.П.", entries[0].Details)
}

func TestUserReturned(t *testing.T) {
	inv := newTestInventory(domain.Phone{ID: 1, Model: "Cisco 7841", User: "Петров П.П."})

	_, err := inv.UpdatePhone(1, map[string]string{"user": ""})
	require.NoError(t, err)

	entries := inv.Activities(1)
	require.Len(t, entries, 1)
	assert.Equal(t, "возвращен от:", entries[0].Action)
	assert.Equal(t, "Петров П.П.", entries[0].Details)
}

func TestUserChanged(t *testing.T) {
	inv := newTestInventory(domain.Phone{ID: 1, Model: "Cisco 7841", User: "Петров П.П."})

	_, err := inv.UpdatePhone(1, map[string]string{"user": "Сидоров С.С."})
	require.NoError(t, err)

	entries := inv.Activities(1)
	require.Len(t, entries, 1)
	assert.Equal(t, "изменен пользователь:", entries[0].Action)
	assert.Equal(t, "Петров П.П. → Сидоров С.С.", entries[0].Details)
}

func TestGenericEditCountsChangedFields(t *testing.T) {
	inv := newTestInventory(domain.Phone{ID: 1, Model: "Cisco 7841", IP: "192.168.1.101"})

	_, err := inv.UpdatePhone(1, map[string]string{
		"ip":    "192.168.1.200",
		"notes": "перенесен",
		"model": "Cisco 7841", // unchanged, must not count
	})
	require.NoError(t, err)

	entries := inv.Activities(1)
	require.Len(t, entries, 1)
	assert.Equal(t, "отредактирован", entries[0].Action)
	assert.Equal(t, "изменено полей: 2", entries[0].Details)
}

func TestNoChangeNoEntry(t *testing.T) {
	inv := newTestInventory(domain.Phone{ID: 1, Model: "Cisco 7841", Status: domain.StatusFree})

	_, err := inv.UpdatePhone(1, map[string]string{"model": "Cisco 7841", "status": "free"})
	require.NoError(t, err)

	assert.Empty(t, inv.AllActivities())
}

func TestLogBoundedAtFifty(t *testing.T) {
	inv := newTestInventory(domain.Phone{ID: 1, Model: "Cisco 7841"})

	for i := 0; i < 51; i++ {
		_, err := inv.UpdatePhone(1, map[string]string{"notes": fmt.Sprintf("note %d", i)})
		require.NoError(t, err)
	}

	entries := inv.AllActivities()
	assert.Len(t, entries, 50)
	// Newest first: the first edit (note 0) has been evicted.
	assert.Equal(t, "изменено полей: 1", entries[0].Details)
}

func TestActivitiesRequestPastLength(t *testing.T) {
	inv := newTestInventory()
	inv.Record("удален", "Cisco 7841", "")

	entries := inv.Activities(10)
	assert.Len(t, entries, 1)
}

func TestEntryIsSnapshotNotReference(t *testing.T) {
	inv := newTestInventory(domain.Phone{ID: 1, Model: "Cisco 7841", Status: domain.StatusFree})

	_, err := inv.UpdatePhone(1, map[string]string{"status": "broken"})
	require.NoError(t, err)
	_, err = inv.UpdatePhone(1, map[string]string{"model": "Cisco 8841"})
	require.NoError(t, err)

	entries := inv.AllActivities()
	require.Len(t, entries, 2)
	// The earlier entry still carries the model as it was then.
	assert.Equal(t, "Cisco 7841", entries[1].PhoneModel)
}
