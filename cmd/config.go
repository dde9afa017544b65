package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the per-user settings read from the configuration file.
// Flags override the file, the file overrides the defaults.
type Config struct {
	Camelot struct {
		Command string `yaml:"command" default:"camelot" validate:"required"`
		Pages   string `yaml:"pages" default:"all" validate:"required"`
		Flavor  string `yaml:"flavor" default:"lattice" validate:"oneof=lattice stream"`
	} `yaml:"camelot"`
	Render struct {
		Style string `yaml:"style" default:"auto" validate:"oneof=auto dark light notty"`
		Width int    `yaml:"width" default:"80" validate:"gte=40,lte=200"`
	} `yaml:"render"`
}

var validate = validator.New()

// LoadConfig reads and validates the configuration file. A missing file is
// not an error: it yields the defaults.
func LoadConfig(path string) (*Config, error) {
	var c Config

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// no file, defaults only
	case err != nil:
		return nil, fmt.Errorf("read config %q: %w", path, err)
	default:
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}
	}

	// Set only fills the fields the file left at zero.
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("default config: %w", err)
	}
	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("validate config %q: %w", path, err)
	}
	return &c, nil
}
