package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// EnvPath names the environment variable overriding DefaultPath.
	EnvPath = "KMESG_CONFIG"

	DefaultPath      = "/etc/kmesg.yaml"
	DefaultChunkSize = 4096
)

// Config represents a kmesg.yaml configuration file.
type Config struct {
	Version int  `yaml:"version"`
	Dump    Dump `yaml:"dump"`
	Log     Log  `yaml:"log"`
}

// Dump configures the -F file dumper.
type Dump struct {
	ChunkSize int `yaml:"chunk_size"`
}

// Log configures diagnostic logging.
type Log struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Target string `yaml:"target"` // stderr|journal
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version: 1,
		Dump:    Dump{ChunkSize: DefaultChunkSize},
		Log:     Log{Level: "warn", Target: "stderr"},
	}
}

// Path returns the configuration path, honouring $KMESG_CONFIG.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Parse decodes data over the defaults, so omitted keys keep their
// default values.
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}

// Load reads and parses the file at path. A missing file is not an
// error: the defaults are returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
