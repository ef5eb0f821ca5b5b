// Package fileserver implements a static file server for the Todo List frontend.
package fileserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
)

const (
	minPort = 1
	maxPort = 65535
)

var (
	// ErrEmptyRoot is returned when the root directory is empty.
	ErrEmptyRoot = errors.New("root directory cannot be empty")
	// ErrNilLogger is returned when the logger is nil.
	ErrNilLogger = errors.New("logger cannot be nil")
	// ErrInvalidPort is returned when the port is outside the valid range.
	ErrInvalidPort = errors.New("port must be between 1 and 65535")
	// ErrNotDirectory is returned when the root path exists but is not a directory.
	ErrNotDirectory = errors.New("root path is not a directory")
)

// Server serves the contents of a single directory over HTTP.
// All fields are set once at construction and never change.
type Server struct {
	root   string
	port   int
	logger *log.Logger
}

// New creates a new Server. The root directory must exist and be readable.
func New(root string, port int, logger *log.Logger) (*Server, error) {
	if root == "" {
		return nil, ErrEmptyRoot
	}
	if logger == nil {
		return nil, ErrNilLogger
	}
	if port < minPort || port > maxPort {
		return nil, ErrInvalidPort
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, ErrNotDirectory
	}

	return &Server{
		root:   root,
		port:   port,
		logger: logger,
	}, nil
}

// Root returns the directory whose contents are served.
func (s *Server) Root() string {
	return s.root
}

// Port returns the port the server listens on.
func (s *Server) Port() int {
	return s.port
}

// Entries returns the names of the immediate children of the root directory.
func (s *Server) Entries() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("read root %q: %w", s.root, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// Run binds the listening socket and serves handler until ctx is cancelled.
// A bind failure is returned immediately; it is the only fatal error.
// Cancellation closes the listener and returns nil.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("bind port %d: %w", s.port, err)
	}

	srv := &http.Server{Handler: handler}

	go func() {
		<-ctx.Done()
		if err := srv.Close(); err != nil {
			s.logger.Error("Failed to close server", "err", err)
		}
	}()

	if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
