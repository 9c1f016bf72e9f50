// Package config holds the cryptor configuration assembled from flags and environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/idelchi/gogen/pkg/validator"

	"github.com/idelchi/basics/internal/failure"
	"github.com/idelchi/basics/internal/fileutil"
)

// Config is the configuration of a single encrypt or decrypt run.
type Config struct {
	// Input file path
	Input string `label:"--input" validate:"required" yaml:"input"`

	// Output file path
	Output string `label:"--output" validate:"required" yaml:"output"`

	// Key is the raw 16-byte key string
	Key string `label:"--key" validate:"exclusive=KeyFile" yaml:"key"`

	// KeyFile holds the key on its first line
	KeyFile string `label:"--key-file" mapstructure:"key-file" yaml:"key-file"`

	// EnvKey is the key taken from the environment, used after Key and KeyFile
	EnvKey string `mapstructure:"-" yaml:"-"`

	// IV is "random", "zero" or 32 hex characters
	IV string `label:"--iv" validate:"iv" yaml:"iv"`

	// Scheme is "cbc" or "siv"
	Scheme string `label:"--scheme" validate:"omitempty,oneof=cbc siv" yaml:"scheme"`

	// Decrypt selects decryption instead of encryption
	Decrypt bool `yaml:"decrypt"`

	Quiet              bool `yaml:"quiet"`
	Verbose            bool `yaml:"verbose"`
	Delete             bool `yaml:"delete"`
	Stats              bool `yaml:"stats"`
	Dry                bool `yaml:"dry"`
	Show               bool `yaml:"show"`
	PreserveTimestamps bool `mapstructure:"preserve-timestamps" yaml:"preserve-timestamps"`
}

// Validate validates the configuration against the struct tags
// and checks that the input and the output are different files.
func (c *Config) Validate() error {
	validate := validator.NewValidator()

	if err := register(validate); err != nil {
		return err
	}

	if errs := validate.Validate(c); len(errs) > 0 {
		return fmt.Errorf("validating configuration: %w", errors.Join(errs...))
	}

	if fileutil.SameFile(c.Input, c.Output) {
		return fmt.Errorf("validating configuration: --input and --output must differ: %w", fileutil.ErrSameFile)
	}

	return nil
}

// Prompter asks the user for a key.
type Prompter func() (string, error)

// ResolveKey fills Key from, in order, the key file, the environment and prompt.
// An explicitly set Key always wins. When nothing yields a key, Key stays
// empty and the run fails on key length.
func (c *Config) ResolveKey(prompt Prompter) error {
	switch {
	case c.Key != "":
		return nil
	case c.KeyFile != "":
		data, err := os.ReadFile(c.KeyFile)
		if err != nil {
			return failure.NewIO("reading key file", c.KeyFile, err)
		}

		line, _, _ := strings.Cut(string(data), "\n")
		c.Key = strings.TrimSuffix(line, "\r")
	case c.EnvKey != "":
		c.Key = c.EnvKey
	case prompt != nil:
		key, err := prompt()
		if err != nil {
			return fmt.Errorf("reading key: %w", err)
		}

		c.Key = key
	}

	return nil
}

// Display renders the configuration as YAML with the key masked.
func (c Config) Display() (string, error) {
	if c.Key != "" {
		c.Key = strings.Repeat("*", len(c.Key))
	}

	out, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("rendering configuration: %w", err)
	}

	return string(out), nil
}

// Action returns "encrypt" or "decrypt".
func (c *Config) Action() string {
	if c.Decrypt {
		return "decrypt"
	}

	return "encrypt"
}
