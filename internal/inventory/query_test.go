package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skuffcall/phoneinv/internal/domain"
)

var queryPhones = []domain.Phone{
	{ID: 1, Model: "Cisco 7841", MAC: "00:1A:2B:3C:4D:5E", IP: "192.168.1.101", Status: domain.StatusAssigned, User: "Иванов И.И.", Department: "IT"},
	{ID: 2, Model: "Yealink T46S", MAC: "00:1A:2B:3C:4D:5F", IP: "192.168.1.102", Status: domain.StatusFree},
	{ID: 3, Model: "Polycom VVX 450", MAC: "00:1A:2B:3C:4D:60", IP: "192.168.1.103", Status: domain.StatusAssigned, User: "Петров П.П.", Department: "Продажи"},
	{ID: 4, Model: "Cisco 8841", MAC: "00:1A:2B:3C:4D:61", Status: domain.StatusBroken, Notes: "Не работает дисплей"},
}

func models(phones []domain.Phone) []string {
	out := make([]string, len(phones))
	for i, p := range phones {
		out[i] = p.Model
	}
	return out
}

func TestFilterStatusAll(t *testing.T) {
	got := Filter(queryPhones, "", StatusAll)
	assert.Len(t, got, 4)
}

func TestFilterByStatus(t *testing.T) {
	got := Filter(queryPhones, "", "assigned")
	assert.Equal(t, []string{"Cisco 7841", "Polycom VVX 450"}, models(got))
}

func TestFilterSearchAnyFieldCaseInsensitive(t *testing.T) {
	// "Петров" must match regardless of case and against any field.
	got := Filter(queryPhones, "петров", StatusAll)
	require.Len(t, got, 1)
	assert.Equal(t, "Polycom VVX 450", got[0].Model)

	got = Filter(queryPhones, "ПЕТРОВ", StatusAll)
	assert.Len(t, got, 1)
}

func TestFilterMatchesNotesAndIP(t *testing.T) {
	got := Filter(queryPhones, "дисплей", StatusAll)
	require.Len(t, got, 1)
	assert.Equal(t, "Cisco 8841", got[0].Model)

	got = Filter(queryPhones, "192.168.1.102", StatusAll)
	require.Len(t, got, 1)
	assert.Equal(t, "Yealink T46S", got[0].Model)
}

func TestFilterCombinesSearchAndStatus(t *testing.T) {
	got := Filter(queryPhones, "cisco", "broken")
	require.Len(t, got, 1)
	assert.Equal(t, "Cisco 8841", got[0].Model)
}

func TestFilterIdempotent(t *testing.T) {
	once := Filter(queryPhones, "cisco", StatusAll)
	twice := Filter(once, "cisco", StatusAll)
	assert.Equal(t, once, twice)
}

func TestSortAscendingCaseInsensitive(t *testing.T) {
	phones := []domain.Phone{
		{ID: 1, Model: "yealink T42S"},
		{ID: 2, Model: "Cisco 7841"},
		{ID: 3, Model: "polycom VVX 250"},
	}

	got := Sort(phones, "model", Ascending)
	assert.Equal(t, []string{"Cisco 7841", "polycom VVX 250", "yealink T42S"}, models(got))
}

func TestSortDescendingIsReversedAscending(t *testing.T) {
	asc := Sort(queryPhones, "model", Ascending)
	desc := Sort(queryPhones, "model", Descending)

	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestSortStableOnTies(t *testing.T) {
	phones := []domain.Phone{
		{ID: 1, Model: "Cisco 7841", Department: "IT"},
		{ID: 2, Model: "Cisco 7841", Department: "Продажи"},
		{ID: 3, Model: "Cisco 7841", Department: "IT"},
	}

	got := Sort(phones, "model", Ascending)
	assert.Equal(t, []int{1, 2, 3}, []int{got[0].ID, got[1].ID, got[2].ID})
}

func TestSortMissingValuesCompareAsEmpty(t *testing.T) {
	got := Sort(queryPhones, "user", Ascending)
	// Phones without a user sort first.
	assert.Empty(t, got[0].User)
	assert.Empty(t, got[1].User)
}

func TestSortEmptyColumnIsIdentity(t *testing.T) {
	got := Sort(queryPhones, "", "")
	assert.Equal(t, models(queryPhones), models(got))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	input := []domain.Phone{{ID: 2, Model: "B"}, {ID: 1, Model: "A"}}
	_ = Sort(input, "model", Ascending)
	assert.Equal(t, 2, input[0].ID)
}

func TestSortStateCycle(t *testing.T) {
	var s SortState

	s.Advance("model")
	assert.Equal(t, SortState{Column: "model", Direction: Ascending}, s)

	s.Advance("model")
	assert.Equal(t, SortState{Column: "model", Direction: Descending}, s)

	s.Advance("model")
	assert.Equal(t, SortState{}, s, "third request clears the sort")

	s.Advance("model")
	assert.Equal(t, SortState{Column: "model", Direction: Ascending}, s)
}

func TestSortStateSwitchColumnResetsToAscending(t *testing.T) {
	s := SortState{Column: "model", Direction: Descending}

	s.Advance("status")
	assert.Equal(t, SortState{Column: "status", Direction: Ascending}, s)
}
