// Package repo serves a local Maven-layout directory over HTTP.
//
// Only POM files are exposed. Any request path ending in ".pom" is mapped
// onto the directory; everything else is 404. This makes a test repository
// on disk reachable through the same HTTP transport used for remote
// repositories.
package repo

import (
	"context"
	stderrors "errors"
	"io"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/mavenviz/pkg/errors"
)

const shutdownTimeout = 5 * time.Second

// Server exposes the POM files below a root directory.
type Server struct {
	root   string
	logger *log.Logger
	router chi.Router
}

// NewServer creates a Server for the directory root.
// A nil logger discards request logs.
func NewServer(root string, logger *log.Logger) (*Server, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "repository directory %s", root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "repository %s is not a directory", root)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Server{root: root, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/*", s.servePOM)
	r.Head("/*", s.servePOM)
	s.router = r
	return s, nil
}

// Handler returns the HTTP handler serving the repository.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve accepts connections on l until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(l) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) servePOM(w http.ResponseWriter, r *http.Request) {
	rel := path.Clean("/" + chi.URLParam(r, "*"))
	if !strings.HasSuffix(rel, ".pom") {
		http.NotFound(w, r)
		return
	}

	file := filepath.Join(s.root, filepath.FromSlash(strings.TrimPrefix(rel, "/")))
	data, err := os.ReadFile(file)
	if err != nil {
		if !stderrors.Is(err, os.ErrNotExist) {
			s.logger.Warn("read failed", "path", rel, "error", err)
		}
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	if r.Method == http.MethodHead {
		return
	}
	w.Write(data)
}

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
