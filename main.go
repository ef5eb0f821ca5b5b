package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/michlin0825/todo-frontend-server/config"
	"github.com/michlin0825/todo-frontend-server/fileserver"
	"github.com/michlin0825/todo-frontend-server/metrics"
	"github.com/michlin0825/todo-frontend-server/timer"
)

const (
	logPrefix        = "todo-frontend"
	serverConfigPath = "./resources/server.json"
)

// readConfig loads the optional config file. A missing file is not an
// error, the defaults apply then.
func readConfig(logger *log.Logger) *config.ServerConfig {
	serverReader, err := config.NewServerReader(serverConfigPath)
	if os.IsNotExist(err) {
		return config.Default()
	}
	if err != nil {
		logger.Fatal("Failed to open server config", "err", err)
	}
	defer func(serverReader *config.ServerReader) {
		err := serverReader.Close()
		if err != nil {
			logger.Error("Failed to close server config", "err", err)
		}
	}(serverReader)

	serverConfig, err := serverReader.ReadServerConfig()
	if err != nil {
		logger.Fatal("Failed to read server config", "err", err)
	}
	return serverConfig
}

// resolveRoot turns the configured root into an absolute path. An empty
// root means the directory containing the executable.
func resolveRoot(root string) (string, error) {
	if root == "" {
		executable, err := os.Executable()
		if err != nil {
			return "", err
		}
		root = filepath.Dir(executable)
	}
	return filepath.Abs(root)
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          logPrefix,
	})
	timer.LoggerConfig(logPrefix)

	serverConfig := readConfig(logger)
	if err := serverConfig.Validate(validator.New()); err != nil {
		logger.Fatal("Invalid server config", "err", err)
	}

	root, err := resolveRoot(serverConfig.Root)
	if err != nil {
		logger.Fatal("Failed to resolve serving directory", "err", err)
	}

	server, err := fileserver.New(root, serverConfig.Port, logger)
	if err != nil {
		logger.Fatal("Failed to create file server", "err", err)
	}

	fmt.Printf("Starting server in directory: %s\n", server.Root())
	fmt.Println("Files in directory:")
	entries, err := server.Entries()
	if err != nil {
		logger.Fatal("Failed to list serving directory", "err", err)
	}
	for _, entry := range entries {
		fmt.Printf("  %s\n", entry)
	}

	mux := http.NewServeMux()
	mux.Handle("/", server.Handler())
	if serverConfig.MetricsOn {
		metrics.Init()
		mux.Handle("/metrics", metrics.Handler())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Server started at http://localhost:%d\n", server.Port())
	if err := server.Run(ctx, mux); err != nil {
		logger.Fatal("Server error", "err", err)
	}
	fmt.Println("Server stopped.")
}
