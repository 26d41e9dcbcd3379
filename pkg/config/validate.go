package config

import "fmt"

// Validate checks the configuration for structural correctness.
func Validate(c *Config) []error {
	var errs []error

	if c.Version != 1 {
		errs = append(errs, fmt.Errorf("version must be 1, got %d", c.Version))
	}

	if c.Dump.ChunkSize <= 0 {
		errs = append(errs, fmt.Errorf("dump.chunk_size must be positive, got %d", c.Dump.ChunkSize))
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be debug, info, warn, or error; got %q", c.Log.Level))
	}

	switch c.Log.Target {
	case "stderr", "journal":
	default:
		errs = append(errs, fmt.Errorf("log.target must be stderr or journal; got %q", c.Log.Target))
	}

	return errs
}
