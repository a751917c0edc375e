package envbadge

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/envbadge/pkg/environment"
)

// Theme customizes the badge's visual identity per environment. Entries may
// set color, label, or both; unset values keep their defaults.
type Theme struct {
	Environments map[environment.Environment]ThemeEntry `yaml:"environments"`
}

// ThemeEntry is one environment's appearance.
type ThemeEntry struct {
	Color string `yaml:"color"`
	Label string `yaml:"label"`
}

// LoadTheme decodes a YAML theme. Every key under environments must be one
// of the four recognized environment names.
func LoadTheme(r io.Reader) (Theme, error) {
	var t Theme
	if err := yaml.NewDecoder(r).Decode(&t); err != nil {
		return Theme{}, errors.Join(ErrInvalidTheme, err)
	}
	for env := range t.Environments {
		if !env.Valid() {
			return Theme{}, fmt.Errorf("%w: unknown environment %q", ErrInvalidTheme, env)
		}
	}
	return t, nil
}

// LoadThemeFile reads and decodes a YAML theme file.
func LoadThemeFile(path string) (Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return Theme{}, errors.Join(ErrInvalidTheme, err)
	}
	defer f.Close()
	return LoadTheme(f)
}
