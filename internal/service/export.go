package service

import (
	"fmt"
	"io"
	"strings"
)

// ExportCSV writes the inventory as delimited text: visible columns in
// their current order, the full unfiltered phone list, every field
// double-quoted. The leading BOM keeps Cyrillic readable in
// spreadsheet imports.
func (s *InventoryService) ExportCSV(w io.Writer) error {
	s.mu.Lock()
	columns := s.inv.VisibleColumns()
	phones := s.inv.Phones()
	s.mu.Unlock()

	var b strings.Builder
	b.WriteString("\uFEFF")

	for i, col := range columns {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(col.Label)
	}
	b.WriteByte('\n')

	for _, p := range phones {
		for i, col := range columns {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quoteField(p.Field(col.ID)))
		}
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

func quoteField(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}
