package debug

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// Stats summarizes the cycles an application has run.
type Stats struct {
	Cycles       int           `json:"cycles"`
	Rebuilds     int           `json:"rebuilds"`
	Events       int           `json:"events"`
	StaleEvents  int           `json:"staleEvents"`
	Errors       int           `json:"errors"`
	LastDuration time.Duration `json:"lastDurationNs"`
}

// Source provides the data the server publishes. Implementations must be
// safe to call from the server goroutine.
type Source interface {
	// Snapshot returns the most recently published widget tree, or false
	// before the first cycle completed.
	Snapshot() (Node, bool)
	Stats() Stats
}

// Server serves widget tree inspection endpoints.
type Server struct {
	server   *http.Server
	listener net.Listener
	session  string
	logger   *log.Logger
}

// NewHandler returns the inspection routes for src:
//
//	GET /health           status and session id
//	GET /stats            cycle counters
//	GET /widget-tree      JSON snapshot
//	GET /widget-tree.dot  Graphviz DOT
//	GET /widget-tree.svg  SVG rendered with Graphviz
func NewHandler(src Source, session string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"status": "ok", "session": session})
	})
	r.Get("/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, src.Stats())
	})
	r.Get("/widget-tree", func(w http.ResponseWriter, r *http.Request) {
		tree, ok := src.Snapshot()
		if !ok {
			http.Error(w, "no widget tree", http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, tree)
	})
	r.Get("/widget-tree.dot", func(w http.ResponseWriter, r *http.Request) {
		tree, ok := src.Snapshot()
		if !ok {
			http.Error(w, "no widget tree", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/vnd.graphviz")
		w.Write([]byte(ToDOT(tree)))
	})
	r.Get("/widget-tree.svg", func(w http.ResponseWriter, r *http.Request) {
		tree, ok := src.Snapshot()
		if !ok {
			http.Error(w, "no widget tree", http.StatusServiceUnavailable)
			return
		}
		svg, err := RenderSVG(r.Context(), ToDOT(tree))
		if err != nil {
			http.Error(w, fmt.Sprintf("render svg: %v", err), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write(svg)
	})
	return r
}

func writeJSON(w http.ResponseWriter, v any) {
	// Encode to buffer first so we can catch errors
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		http.Error(w, fmt.Sprintf("json encode error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// Start serves src on port. A port of zero picks an ephemeral port; see
// Server.Port.
func Start(port int, src Source, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.Default()
	}
	// Bind listener first to fail fast on port conflicts
	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return nil, fmt.Errorf("debug server listen: %w", err)
	}
	s := &Server{
		listener: listener,
		session:  uuid.NewString(),
		logger:   logger,
	}
	s.server = &http.Server{Handler: NewHandler(src, s.session), ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.logger.Error("debug server stopped", "err", err)
		}
	}()
	logger.Info("debug server listening", "addr", listener.Addr().String(), "session", s.session)
	return s, nil
}

// Port returns the port the server is bound to.
func (s *Server) Port() int {
	return s.listener.Addr().(*net.TCPAddr).Port
}

// Session returns the id reported by /health for this server instance.
func (s *Server) Session() string {
	return s.session
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
	}
	return s.server.Shutdown(ctx)
}
