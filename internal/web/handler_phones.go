package web

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/skuffcall/phoneinv/internal/domain"
	"github.com/skuffcall/phoneinv/internal/inventory"
)

const recentActivityCount = 3

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := map[string]any{
		"Stats":      s.service.Stats(),
		"Activities": s.service.Activities(recentActivityCount),
		"Table":      s.tableData(r),
		"Theme":      s.service.Theme(),
	}
	if err := s.renderPage(w, data,
		"base.html", "pages/index.html",
		"partials/stats.html", "partials/activity_log.html", "partials/table.html",
	); err != nil {
		log.Printf("render page error: %v", err)
	}
}

// tableData assembles everything the table fragment needs from the
// current query parameters and view state.
func (s *Server) tableData(r *http.Request) map[string]any {
	search := r.FormValue("q")
	status := r.FormValue("status")
	if status == "" {
		status = inventory.StatusAll
	}

	return map[string]any{
		"Columns": s.service.VisibleColumns(),
		"Phones":  s.service.FilteredPhones(search, status),
		"Sort":    s.service.Sort(),
		"Search":  search,
		"Status":  status,
	}
}

// renderTable writes the refreshed table fragment, optionally followed by
// an out-of-band notice and the out-of-band stats refresh.
func (s *Server) renderTable(w http.ResponseWriter, r *http.Request, notice string) {
	if err := s.renderPartial(w, "partials/table.html", s.tableData(r)); err != nil {
		log.Printf("render partial error: %v", err)
		return
	}
	if err := s.renderPartial(w, "partials/stats_oob.html", s.service.Stats()); err != nil {
		log.Printf("render partial error: %v", err)
		return
	}
	if err := s.renderPartial(w, "partials/activity_oob.html", s.service.Activities(recentActivityCount)); err != nil {
		log.Printf("render partial error: %v", err)
		return
	}
	if notice != "" {
		if err := s.renderPartial(w, "partials/notice.html", notice); err != nil {
			log.Printf("render partial error: %v", err)
		}
	}
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	if err := s.renderPartial(w, "partials/table.html", s.tableData(r)); err != nil {
		log.Printf("render partial error: %v", err)
	}
}

// phoneFields collects the column-keyed field values present in the
// posted form. Only submitted keys participate in the merge.
func phoneFields(r *http.Request) map[string]string {
	fields := make(map[string]string)
	for _, key := range domain.FieldKeys {
		if vals, ok := r.Form[key]; ok && len(vals) > 0 {
			fields[key] = vals[0]
		}
	}
	return fields
}

func (s *Server) handleCreatePhone(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	fields := phoneFields(r)
	if fields["model"] == "" {
		http.Error(w, "model required", http.StatusBadRequest)
		return
	}

	if _, err := s.service.AddPhone(r.Context(), fields); err != nil {
		http.Error(w, "failed to add phone", http.StatusInternalServerError)
		log.Printf("add phone error: %v", err)
		return
	}

	s.renderTable(w, r, "Телефон добавлен")
}

func (s *Server) handleUpdatePhone(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid phone id", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	if _, err := s.service.UpdatePhone(r.Context(), id, phoneFields(r)); err != nil {
		if errors.Is(err, inventory.ErrPhoneNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "failed to update phone", http.StatusInternalServerError)
		log.Printf("update phone error: %v", err)
		return
	}

	s.renderTable(w, r, "Изменения сохранены")
}

func (s *Server) handleDeletePhone(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid phone id", http.StatusBadRequest)
		return
	}

	if _, err := s.service.DeletePhone(r.Context(), id); err != nil {
		if errors.Is(err, inventory.ErrPhoneNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "failed to delete phone", http.StatusInternalServerError)
		log.Printf("delete phone error: %v", err)
		return
	}

	s.renderTable(w, r, "Телефон удален")
}

// handleEditPhoneModal renders the edit dialog. Its inputs are generated
// from the visible columns, so the modal follows the live registry.
func (s *Server) handleEditPhoneModal(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid phone id", http.StatusBadRequest)
		return
	}
	phone, ok := s.service.Phone(id)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := s.renderPartial(w, "partials/edit_modal.html", map[string]any{
		"Phone":   phone,
		"Columns": s.service.VisibleColumns(),
		"IsNew":   false,
	}); err != nil {
		log.Printf("render partial error: %v", err)
	}
}

func (s *Server) handleNewPhoneModal(w http.ResponseWriter, r *http.Request) {
	if err := s.renderPartial(w, "partials/edit_modal.html", map[string]any{
		"Phone":   domain.Phone{Status: domain.StatusFree},
		"Columns": s.service.VisibleColumns(),
		"IsNew":   true,
	}); err != nil {
		log.Printf("render partial error: %v", err)
	}
}

// parseID extracts the {id} path variable as an int.
func parseID(r *http.Request) (int, error) {
	return strconv.Atoi(r.PathValue("id"))
}
