// Package web serves the browser build of the game: an index page, the
// wasm binary with its loader script, and the sprite directory.
package web

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

//go:embed index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

// Config holds the web server settings.
type Config struct {
	Address string // host:port to listen on
	Dir     string // Directory with takeoff.wasm, wasm_exec.js and resources/
	SSHHost string // Shown on the page as an alternative way to play
}

// DefaultConfig returns the default web server settings.
func DefaultConfig() Config {
	return Config{
		Address: ":8080",
		Dir:     "./web",
		SSHHost: "localhost -p 23234",
	}
}

// NewHandler returns the HTTP handler for cfg.
func NewHandler(cfg Config) (http.Handler, error) {
	var page bytes.Buffer
	if err := indexTemplate.Execute(&page, struct{ SSHHost string }{cfg.SSHHost}); err != nil {
		return nil, fmt.Errorf("web: render index: %w", err)
	}
	index := page.Bytes()

	files := http.FileServer(http.Dir(cfg.Dir))
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" && r.URL.Path != "/index.html" {
			files.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		//nolint:errcheck // Client may have gone away
		w.Write(index)
	})
	return mux, nil
}

// Server is an HTTP server for the browser build.
type Server struct {
	config Config
	server *http.Server
	logger *log.Logger
}

// NewServer creates a server for cfg.
func NewServer(cfg Config, logger *log.Logger) (*Server, error) {
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, err
	}
	return &Server{
		config: cfg,
		server: &http.Server{
			Addr:              cfg.Address,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}, nil
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting web server", "address", s.config.Address, "dir", s.config.Dir)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("web: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	}
}
