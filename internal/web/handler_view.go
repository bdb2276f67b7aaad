package web

import (
	"fmt"
	"log"
	"net/http"
	"time"
)

// handleSort advances the asc → desc → none cycle for the clicked
// column and answers with the re-sorted table fragment.
func (s *Server) handleSort(w http.ResponseWriter, r *http.Request) {
	s.service.AdvanceSort(r.PathValue("column"))
	s.renderTable(w, r, "")
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	filename := fmt.Sprintf("ip-phones-%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := s.service.ExportCSV(w); err != nil {
		log.Printf("export error: %v", err)
	}
}

func (s *Server) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	if _, err := s.service.ToggleTheme(r.Context()); err != nil {
		http.Error(w, "failed to toggle theme", http.StatusInternalServerError)
		log.Printf("toggle theme error: %v", err)
		return
	}

	// Theme classes live on <body>; reload the page to reapply them.
	w.Header().Set("HX-Refresh", "true")
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	if err := s.renderPartial(w, "partials/activity_log.html", s.service.Activities(recentActivityCount)); err != nil {
		log.Printf("render partial error: %v", err)
	}
}
