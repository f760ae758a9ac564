package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/stemdex/pkg/errors"
	"github.com/arthur-debert/stemdex/pkg/stems"
)

// FileName is the optional config file looked up in the base directory
const FileName = "stemdex.toml"

// EnvPrefix prefixes environment overrides, e.g. STEMDEX_MANIFEST_FILENAME
const EnvPrefix = "STEMDEX_"

// Stems holds the recognized stem set
type Stems struct {
	Names     []string `koanf:"names" toml:"names" yaml:"names" json:"names"`
	Extension string   `koanf:"extension" toml:"extension" yaml:"extension" json:"extension"`
}

// Manifest holds manifest output settings
type Manifest struct {
	Filename string `koanf:"filename" toml:"filename" yaml:"filename" json:"filename"`
}

// Packs holds pack discovery settings
type Packs struct {
	Dir        string   `koanf:"dir" toml:"dir" yaml:"dir" json:"dir"`
	Ignore     []string `koanf:"ignore" toml:"ignore" yaml:"ignore" json:"ignore"`
	IgnoreFile string   `koanf:"ignore_file" toml:"ignore_file" yaml:"ignore_file" json:"ignore_file"`
}

// Config is the main configuration structure
type Config struct {
	Stems    Stems    `koanf:"stems" toml:"stems" yaml:"stems" json:"stems"`
	Manifest Manifest `koanf:"manifest" toml:"manifest" yaml:"manifest" json:"manifest"`
	Packs    Packs    `koanf:"packs" toml:"packs" yaml:"packs" json:"packs"`
}

// StemSet builds the immutable stem set the builder consumes
func (c *Config) StemSet() (stems.Set, error) {
	return stems.New(c.Stems.Names, c.Stems.Extension)
}

// PacksRoot resolves the packs directory against baseDir
func (c *Config) PacksRoot(baseDir string) string {
	if filepath.IsAbs(c.Packs.Dir) {
		return c.Packs.Dir
	}
	return filepath.Join(baseDir, c.Packs.Dir)
}

// Validate checks values that cannot be caught by decoding alone
func (c *Config) Validate() error {
	if _, err := c.StemSet(); err != nil {
		return err
	}
	if err := validateFilename("manifest.filename", c.Manifest.Filename); err != nil {
		return err
	}
	if c.Packs.IgnoreFile != "" {
		if err := validateFilename("packs.ignore_file", c.Packs.IgnoreFile); err != nil {
			return err
		}
	}
	if strings.TrimSpace(c.Packs.Dir) == "" {
		return errors.New(errors.ErrConfigValid, "packs.dir cannot be empty")
	}
	for _, pattern := range c.Packs.Ignore {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "invalid packs.ignore pattern %q", pattern)
		}
	}
	return nil
}

func validateFilename(key, name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.Newf(errors.ErrConfigValid, "%s cannot be empty", key)
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return errors.Newf(errors.ErrConfigValid, "%s must be a plain file name", key).
			WithDetail("value", name)
	}
	return nil
}
