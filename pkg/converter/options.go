package converter

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Options configures a Converter
type Options struct {
	Mode         Mode    `yaml:"mode"`
	DefaultTempo float64 `yaml:"default_tempo"`
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		Mode:         ModeBasic,
		DefaultTempo: DefaultTempo,
	}
}

// LoadOptions reads a YAML options file on top of the defaults
func LoadOptions(filename string) (Options, error) {
	opts := DefaultOptions()
	f, err := os.Open(filename)
	if err != nil {
		return opts, fmt.Errorf("could not open options: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := yaml.NewDecoder(f).Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return opts, fmt.Errorf("could not decode options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

// Validate checks and normalises the options
func (o *Options) Validate() error {
	if o.Mode == "" {
		o.Mode = ModeBasic
	}
	mode, err := ParseMode(string(o.Mode))
	if err != nil {
		return err
	}
	o.Mode = mode
	if o.DefaultTempo <= 0 {
		return errors.New("default tempo must be positive")
	}
	return nil
}
