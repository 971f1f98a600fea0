package pdf

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// Config controls how a Document is written.
type Config struct {
	// Version is written in the header, as in "%PDF-1.7".
	Version string `yaml:"version"`

	// NameLimit is the longest name, in bytes before escaping, that may be
	// written. Zero means no limit.
	NameLimit int `yaml:"name_limit"`

	// FileID adds an /ID entry to the trailer, derived from the body.
	FileID bool `yaml:"file_id"`
}

// DefaultConfig returns the configuration used by NewDocument when given
// the zero Config: version 1.7, names of at most 127 bytes, no file
// identifier.
func DefaultConfig() Config {
	return Config{
		Version:   "1.7",
		NameLimit: 127,
	}
}

// ParseConfig reads a YAML configuration such as
//
//	version: "1.4"
//	name_limit: 0
//	file_id: true
//
// Fields not mentioned keep their DefaultConfig values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var versions = map[string]bool{
	"1.0": true, "1.1": true, "1.2": true, "1.3": true,
	"1.4": true, "1.5": true, "1.6": true, "1.7": true,
	"2.0": true,
}

func (c Config) validate() error {
	if !versions[c.Version] {
		return fmt.Errorf("%w: %q", ErrInvalidVersion, c.Version)
	}
	if c.NameLimit < 0 {
		return fmt.Errorf("negative name limit %d", c.NameLimit)
	}
	return nil
}
