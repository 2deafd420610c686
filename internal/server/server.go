// Package server exposes graph building over HTTP.
//
// Each graph lives in a session identified by a UUID. Sessions are held
// in memory and guarded by a per-session mutex, so concurrent requests
// against the same graph serialize instead of corrupting it. Snapshots
// can be saved to and loaded from the configured store, which is how
// graphs outlive the process.
//
// # Endpoints
//
//	POST   /api/graphs                   create a session seeded with the initial triangle
//	GET    /api/graphs                   list session IDs
//	GET    /api/graphs/{id}              export the graph as a snapshot document
//	PUT    /api/graphs/{id}              replace the graph from a snapshot document
//	DELETE /api/graphs/{id}              drop the session
//	POST   /api/graphs/{id}/vertices     insert a vertex (random or manual segment)
//	POST   /api/graphs/{id}/center       fit the layout into a viewport
//	GET    /api/graphs/{id}/stats        counts, edge length statistics, periphery
//	GET    /api/graphs/{id}/svg          render the graph
//	POST   /api/graphs/{id}/save         persist the graph under a name
//	POST   /api/graphs/load              create a session from a stored snapshot
//	GET    /api/snapshots                list stored snapshot names
//	DELETE /api/snapshots/{name}         delete a stored snapshot
//	GET    /healthz                      liveness probe with build info
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Aayushjha0128/GraphSense/pkg/cache"
	"github.com/Aayushjha0128/GraphSense/pkg/config"
	"github.com/Aayushjha0128/GraphSense/pkg/store"
)

// Server wires sessions, rendering, and snapshot storage behind a
// chi router.
type Server struct {
	cfg      config.Config
	logger   *log.Logger
	sessions *registry
	cache    cache.Cache
	store    store.Store
}

// New creates a server. The store may be nil, which disables the
// save/load endpoints with 503 responses.
func New(cfg config.Config, logger *log.Logger, st store.Store) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		cfg:      cfg,
		logger:   logger,
		sessions: newRegistry(),
		cache:    cache.NewMemoryCache(),
		store:    st,
	}
}

// Router builds the HTTP handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/graphs", func(r chi.Router) {
			r.Post("/", s.handleCreateGraph)
			r.Get("/", s.handleListGraphs)
			r.Post("/load", s.handleLoadGraph)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleExportGraph)
				r.Put("/", s.handleImportGraph)
				r.Delete("/", s.handleDeleteGraph)
				r.Post("/vertices", s.handleInsertVertex)
				r.Post("/center", s.handleCenterGraph)
				r.Get("/stats", s.handleStats)
				r.Get("/svg", s.handleSVG)
				r.Post("/save", s.handleSaveGraph)
			})
		})
		r.Route("/snapshots", func(r chi.Router) {
			r.Get("/", s.handleListSnapshots)
			r.Delete("/{name}", s.handleDeleteSnapshot)
		})
	})

	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Server.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return ctx.Err()
	}
}

// logRequests logs each request with method, path, status, and timing.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}
