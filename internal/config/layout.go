package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Layout is the optional YAML file describing how the clock window is arranged.
// Zero values fall back to the package defaults.
type Layout struct {
	// AnalogSize is the side of the square analog clock, in dp.
	AnalogSize float32 `yaml:"analog_size,omitempty"`

	// Spacing is the vertical gap between the two clocks, in dp.
	Spacing float32 `yaml:"spacing,omitempty"`

	// Language selects the UI bundle (ISO 639-1).
	Language string `yaml:"language,omitempty"`
}

// DefaultLayout returns the layout used when no file is given.
func DefaultLayout() Layout {
	return Layout{
		AnalogSize: DefaultAnalogSize,
		Spacing:    DefaultSpacing,
		Language:   DefaultLanguage,
	}
}

// LoadLayout reads the layout file at path and resolves defaults.
// An empty path yields DefaultLayout.
func LoadLayout(path string) (Layout, error) {
	if path == "" {
		return DefaultLayout(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("%s: %w", ErrLayoutRead, err)
	}

	return ParseLayout(data)
}

// ParseLayout decodes YAML layout data, fills missing fields and validates the result.
func ParseLayout(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("%s: %w", ErrLayoutParse, err)
	}

	def := DefaultLayout()
	if l.AnalogSize == 0 {
		l.AnalogSize = def.AnalogSize
	}
	if l.Spacing == 0 {
		l.Spacing = def.Spacing
	}
	l.Language = strings.TrimSpace(l.Language)
	if l.Language == "" {
		l.Language = def.Language
	}

	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Validate reports whether the layout can be drawn.
func (l Layout) Validate() error {
	if !finite(l.AnalogSize) {
		return fmt.Errorf("%s: %v", ErrLayoutSize, l.AnalogSize)
	}
	if !finite(l.Spacing) {
		return fmt.Errorf("%s: %v", ErrLayoutSpacing, l.Spacing)
	}
	if l.AnalogSize < MinWidgetSize || l.AnalogSize > MaxWidgetSize {
		return fmt.Errorf("%s: %v (allowed %d-%d)", ErrLayoutSize, l.AnalogSize, MinWidgetSize, MaxWidgetSize)
	}
	if l.Spacing < 0 {
		return errors.New(ErrLayoutSpacing)
	}
	return nil
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
