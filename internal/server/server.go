// Package server provides the local preview server for a built site.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server represents the preview HTTP server
type Server struct {
	httpServer *http.Server
	dir        string
	liveReload bool
	reloads    *Broadcaster
}

// Config holds server configuration
type Config struct {
	Port       int
	Dir        string // Build output directory to serve
	LiveReload bool   // Inject a reload script and serve /__reload events
}

// ReloadPath is the SSE endpoint pages subscribe to for live reload.
const ReloadPath = "/__reload"

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	info, err := os.Stat(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("output directory %s not found: %w", cfg.Dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("output path %s is not a directory", cfg.Dir)
	}

	s := &Server{
		dir:        cfg.Dir,
		liveReload: cfg.LiveReload,
		reloads:    NewBroadcaster(),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		IdleTimeout:  60 * time.Second,
		WriteTimeout: 0, // Reload streams stay open
	}

	return s, nil
}

// Handler returns the router serving the site.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recoverer)
	r.Use(withLogging)

	r.Get("/healthz", s.handleHealth)
	if s.liveReload {
		r.Get(ReloadPath, s.handleReload)
	}
	r.With(withNoCache).Get("/*", s.handleStatic)
	r.With(withNoCache).Head("/*", s.handleStatic)

	return r
}

// Reloads returns the broadcaster that tells connected pages to refresh.
func (s *Server) Reloads() *Broadcaster {
	return s.reloads
}

// Start listens until ctx is done, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Serving %s on http://%s", s.dir, ln.Addr())
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	s.reloads.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// withLogging adds request logging
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Printf("[%s] %s %d completed in %v", r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}

// withNoCache stops browsers caching files between rebuilds
func withNoCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}
