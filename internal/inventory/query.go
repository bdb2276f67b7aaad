package inventory

import (
	"sort"
	"strings"

	"github.com/skuffcall/phoneinv/internal/domain"
)

// StatusAll is the status-filter sentinel matching every phone.
const StatusAll = "all"

// Direction is a sort direction; empty means unsorted.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Filter returns the phones matching the search text and status filter.
// A phone matches when the lowercased search text is a substring of any
// stringified field (ID included) and its status passes the filter.
func Filter(phones []domain.Phone, search, status string) []domain.Phone {
	needle := strings.ToLower(search)

	out := make([]domain.Phone, 0, len(phones))
	for _, p := range phones {
		if status != StatusAll && string(p.Status) != status {
			continue
		}
		if needle != "" && !anyFieldContains(p, needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func anyFieldContains(p domain.Phone, needle string) bool {
	for _, v := range p.Values() {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

// Sort orders phones by the named column, case-insensitively, missing
// values comparing as empty strings. The sort is stable; ties keep their
// input order. An empty column returns the input order unchanged.
func Sort(phones []domain.Phone, column string, dir Direction) []domain.Phone {
	out := make([]domain.Phone, len(phones))
	copy(out, phones)
	if column == "" || dir == "" {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		a := strings.ToLower(out[i].Field(column))
		b := strings.ToLower(out[j].Field(column))
		if dir == Descending {
			return a > b
		}
		return a < b
	})
	return out
}

// SortState is the ephemeral sort portion of the view state. It is never
// persisted and resets with the process.
type SortState struct {
	Column    string
	Direction Direction
}

// Advance applies one sort request: repeated requests on the same column
// cycle none → asc → desc → none; a different column always restarts at
// ascending.
func (s *SortState) Advance(column string) {
	if s.Column != column {
		s.Column = column
		s.Direction = Ascending
		return
	}

	switch s.Direction {
	case Ascending:
		s.Direction = Descending
	case Descending:
		s.Column = ""
		s.Direction = ""
	default:
		s.Direction = Ascending
	}
}
