package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/skuffcall/phoneinv/internal/domain"
	"github.com/skuffcall/phoneinv/internal/inventory"
	"github.com/skuffcall/phoneinv/internal/service"
)

type Server struct {
	service   *service.InventoryService
	templates embed.FS
	mux       *http.ServeMux
	tmplFuncs template.FuncMap
	logger    *slog.Logger
}

func NewServer(svc *service.InventoryService, tmpl embed.FS, logger *slog.Logger) *Server {
	s := &Server{
		service:   svc,
		templates: tmpl,
		mux:       http.NewServeMux(),
		logger:    logger,
		tmplFuncs: template.FuncMap{
			"badgeClass":    badgeClass,
			"phoneIcon":     phoneIcon,
			"sortIndicator": sortIndicator,
			"inc":           func(i int) int { return i + 1 },
		},
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /", s.handleIndex)
	s.mux.HandleFunc("GET /table", s.handleTable)
	s.mux.HandleFunc("POST /phones", s.handleCreatePhone)
	s.mux.HandleFunc("GET /phones/new", s.handleNewPhoneModal)
	s.mux.HandleFunc("GET /phones/{id}/edit", s.handleEditPhoneModal)
	s.mux.HandleFunc("POST /phones/{id}", s.handleUpdatePhone)
	s.mux.HandleFunc("DELETE /phones/{id}", s.handleDeletePhone)
	s.mux.HandleFunc("POST /columns/{id}/hide", s.handleHideColumn)
	s.mux.HandleFunc("POST /columns/{id}/show", s.handleShowColumn)
	s.mux.HandleFunc("GET /columns/hidden", s.handleHiddenColumns)
	s.mux.HandleFunc("POST /columns/reorder", s.handleReorderColumns)
	s.mux.HandleFunc("POST /sort/{column}", s.handleSort)
	s.mux.HandleFunc("GET /export", s.handleExport)
	s.mux.HandleFunc("POST /theme", s.handleToggleTheme)
	s.mux.HandleFunc("GET /activity", s.handleActivity)
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy",
			"default-src 'self'; "+
				"script-src 'self' 'unsafe-inline' https://unpkg.com; "+
				"style-src 'self' 'unsafe-inline'; "+
				"img-src 'self' data:; "+
				"connect-src 'self'")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, securityHeaders(s.mux)).ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}

// renderPage parses and executes a full-page template set.
func (s *Server) renderPage(w http.ResponseWriter, data any, files ...string) error {
	tmpl, err := template.New("").Funcs(s.tmplFuncs).ParseFS(s.templates, files...)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tmpl.ExecuteTemplate(w, "base", data)
}

// renderPartial parses and executes a single named partial template.
// The file must contain exactly one {{define "name"}}...{{end}} block.
func (s *Server) renderPartial(w http.ResponseWriter, file string, data any) error {
	tmpl, err := template.New("").Funcs(s.tmplFuncs).ParseFS(s.templates, file)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	// ParseFS registers both the file-basename template and any {{define}}
	// blocks; execute the defined one.
	basename := file
	if idx := strings.LastIndexByte(file, '/'); idx >= 0 {
		basename = file[idx+1:]
	}
	for _, t := range tmpl.Templates() {
		if n := t.Name(); n != "" && n != basename {
			return t.Execute(w, data)
		}
	}
	return tmpl.ExecuteTemplate(w, basename, data)
}

// badgeClass picks the status badge color class.
func badgeClass(status domain.Status) string {
	switch status {
	case domain.StatusFree:
		return "badge-free"
	case domain.StatusAssigned:
		return "badge-assigned"
	case domain.StatusBroken:
		return "badge-broken"
	default:
		return "badge-unknown"
	}
}

// phoneIcon returns an emoji for the phone brand in the model name.
func phoneIcon(model string) string {
	lower := strings.ToLower(model)
	switch {
	case strings.Contains(lower, "cisco"):
		return "📞"
	case strings.Contains(lower, "yealink"):
		return "☎️"
	case strings.Contains(lower, "polycom"):
		return "📟"
	default:
		return "📱"
	}
}

// sortIndicator renders the header arrow for the column's sort state.
func sortIndicator(sort inventory.SortState, columnID string) string {
	if sort.Column != columnID {
		return "⇅"
	}
	switch sort.Direction {
	case inventory.Ascending:
		return "↑"
	case inventory.Descending:
		return "↓"
	default:
		return "⇅"
	}
}
