// Package config loads the pp command-line configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/bjaus/pp"
	"github.com/bjaus/pp/internal/logging"

	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/pp"
	configFileName = "config.yaml"
)

// Config is the on-disk configuration.
type Config struct {
	Address  string `yaml:"address"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	LogLevel string `yaml:"log_level"`
	// DefaultCommand is run when pp is invoked without a subcommand.
	DefaultCommand string `yaml:"default_command"`
	Indent         string `yaml:"indent"`
	Colors         Colors `yaml:"colors"`
	Table          Table  `yaml:"table"`
	CSV            CSV    `yaml:"csv"`
}

// Colors names the color of each JSON token kind.
type Colors struct {
	Null    string `yaml:"null"`
	Boolean string `yaml:"boolean"`
	Number  string `yaml:"number"`
	String  string `yaml:"string"`
	Key     string `yaml:"key"`
}

// Table configures the table encoding.
type Table struct {
	Border string `yaml:"border"`
}

// CSV configures the delimited encoding.
type CSV struct {
	Delimiter string `yaml:"delimiter"`
	CRLF      bool   `yaml:"crlf"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Address:        "127.0.0.1:6379",
		LogLevel:       "warn",
		DefaultCommand: pp.StructuredPrint.String(),
		Indent:         pp.DefaultIndent,
		Colors: Colors{
			Null:    "cyan",
			Boolean: "yellow",
			Number:  "magenta",
			String:  "green",
			Key:     "blue",
		},
		Table: Table{Border: "ascii"},
		CSV:   CSV{Delimiter: ","},
	}
}

// DefaultPath returns $HOME/.config/pp/config.yaml, or the empty string if
// the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, userConfigDir, configFileName)
}

// Load reads the file at path over [Default]. A missing file is not an
// error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("ConfigLoader", "No config found at %s, using defaults", path)
			return cfg, nil
		}
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	logging.Info("ConfigLoader", "Loaded configuration from %s", path)
	return cfg, nil
}

// Validate checks every named setting.
func (c Config) Validate() error {
	_, err := c.Encoding()
	if err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := pp.ParseCommand(c.DefaultCommand); err != nil {
		return fmt.Errorf("default_command: %w", err)
	}
	return nil
}

// Encoding converts the configuration into renderer settings.
func (c Config) Encoding() (pp.Encoding, error) {
	enc := pp.DefaultEncoding()
	if c.Indent != "" {
		enc.Indent = c.Indent
	}

	var errs []error
	palette, err := c.Colors.palette()
	if err != nil {
		errs = append(errs, err)
	}
	enc.Palette = palette

	border, err := pp.ParseBorder(c.Table.Border)
	if err != nil {
		errs = append(errs, err)
	}
	enc.Border = border

	if d := c.CSV.Delimiter; d != "" {
		r, size := utf8.DecodeRuneInString(d)
		if size != len(d) || r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
			errs = append(errs, fmt.Errorf("csv delimiter must be a single character other than a quote or line break, got %q", d))
		} else {
			enc.CSV.Delimiter = r
		}
	}
	enc.CSV.UseCRLF = c.CSV.CRLF

	if len(errs) > 0 {
		return pp.Encoding{}, errors.Join(errs...)
	}
	return enc, nil
}

func (c Colors) palette() (pp.Palette, error) {
	p := pp.DefaultPalette()
	fields := []struct {
		kind string
		name string
		dst  *text.Color
	}{
		{"null", c.Null, &p.Null},
		{"boolean", c.Boolean, &p.Boolean},
		{"number", c.Number, &p.Number},
		{"string", c.String, &p.String},
		{"key", c.Key, &p.Key},
	}
	var errs []error
	for _, f := range fields {
		if f.name == "" {
			continue
		}
		color, err := pp.ParseColor(f.name)
		if err != nil {
			errs = append(errs, fmt.Errorf("colors.%s: %w", f.kind, err))
			continue
		}
		*f.dst = color
	}
	return p, errors.Join(errs...)
}
