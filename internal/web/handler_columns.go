package web

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/skuffcall/phoneinv/internal/inventory"
)

// handleHideColumn serves the header hide button: only visible columns
// render one, so the toggle always turns the column off.
func (s *Server) handleHideColumn(w http.ResponseWriter, r *http.Request) {
	if err := s.service.ToggleColumn(r.Context(), r.PathValue("id")); err != nil {
		http.Error(w, "failed to hide column", http.StatusInternalServerError)
		log.Printf("hide column error: %v", err)
		return
	}

	s.renderTable(w, r, "")
}

func (s *Server) handleShowColumn(w http.ResponseWriter, r *http.Request) {
	col, ok, err := s.service.ShowColumn(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, "failed to show column", http.StatusInternalServerError)
		log.Printf("show column error: %v", err)
		return
	}
	if !ok {
		// Unknown IDs only come from hand-crafted requests; refresh anyway.
		s.renderTable(w, r, "")
		return
	}

	s.renderTable(w, r, fmt.Sprintf("Столбец %q добавлен", col.Label))
}

// handleHiddenColumns serves the add-column dropdown. With nothing
// hidden this is a benign no-op rendered as an informational notice.
func (s *Server) handleHiddenColumns(w http.ResponseWriter, r *http.Request) {
	hidden, err := s.service.HiddenColumnOptions()
	if errors.Is(err, inventory.ErrNoHiddenColumns) {
		if err := s.renderPartial(w, "partials/notice.html", "Все столбцы уже отображаются"); err != nil {
			log.Printf("render partial error: %v", err)
		}
		return
	}
	if err != nil {
		http.Error(w, "failed to list hidden columns", http.StatusInternalServerError)
		log.Printf("hidden columns error: %v", err)
		return
	}

	if err := s.renderPartial(w, "partials/hidden_columns.html", hidden); err != nil {
		log.Printf("render partial error: %v", err)
	}
}

// handleReorderColumns applies a header drag: from and to index the
// visible subsequence unless visibleOnly=false is posted.
func (s *Server) handleReorderColumns(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	from, err := strconv.Atoi(r.FormValue("from"))
	if err != nil {
		http.Error(w, "invalid from index", http.StatusBadRequest)
		return
	}
	to, err := strconv.Atoi(r.FormValue("to"))
	if err != nil {
		http.Error(w, "invalid to index", http.StatusBadRequest)
		return
	}
	visibleOnly := r.FormValue("visibleOnly") != "false"

	if err := s.service.ReorderColumns(r.Context(), from, to, visibleOnly); err != nil {
		http.Error(w, "failed to reorder columns", http.StatusBadRequest)
		log.Printf("reorder columns error: %v", err)
		return
	}

	s.renderTable(w, r, "")
}
