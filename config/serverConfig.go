package config

import (
	"encoding/json"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
)

// DefaultPort is used when no config file overrides it.
const DefaultPort = 5500

type ServerReader struct {
	file *os.File
}

// ServerConfig is parsed from `server.json`. An empty Root means the
// directory containing the executable.
type ServerConfig struct {
	Port      int    `json:"port" validate:"min=1,max=65535"`
	Root      string `json:"root"`
	MetricsOn bool   `json:"metricsOn"`
}

// Default returns the configuration used when no config file is present.
func Default() *ServerConfig {
	return &ServerConfig{Port: DefaultPort}
}

func NewServerReader(configPath string) (*ServerReader, error) {
	file, err := os.Open(configPath)
	if err != nil {
		return nil, err
	}
	return &ServerReader{file}, nil
}

func (r *ServerReader) Close() error {
	return r.file.Close()
}

func (r *ServerReader) ReadServerConfig() (*ServerConfig, error) {
	configFileByte, err := io.ReadAll(r.file)
	if err != nil {
		return nil, err
	}

	config := Default()
	err = json.Unmarshal(configFileByte, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the config against its struct tags.
func (c *ServerConfig) Validate(v *validator.Validate) error {
	return v.Struct(c)
}
