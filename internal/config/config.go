// internal/config/config.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid marks a config file that cannot be decoded or fails validation.
var ErrInvalid = errors.New("invalid config")

// Config holds defaults that a YAML file may set. Command-line flags the
// user passes explicitly take precedence.
type Config struct {
	Workers     int    `yaml:"workers" validate:"gte=0"`
	Output      string `yaml:"output" validate:"oneof=text json"`
	Pretty      bool   `yaml:"pretty"`
	Center      string `yaml:"center" validate:"oneof=copy zero"`
	InputFormat string `yaml:"input_format" validate:"oneof=auto text json"`
	LogLevel    string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Workers:     0,
		Output:      "text",
		Center:      "copy",
		InputFormat: "auto",
		LogLevel:    "warn",
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field against its allowed values.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Load reads a YAML file over Default(). Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	c, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode parses YAML from r over Default() and validates the result.
// An empty document yields the defaults.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
