package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/obsidianstack/topthree/internal/table"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultDelimiter = ","
	DefaultLimit     = 3
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config is the full configuration tree.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Report  ReportConfig  `yaml:"report"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// InputConfig controls how the input file is tokenised.
type InputConfig struct {
	// Delimiter is the single-character field separator (default ",").
	Delimiter string `yaml:"delimiter"`

	// Comment, if set, is a single character marking lines to skip.
	Comment string `yaml:"comment"`
}

// TableOptions converts the validated input settings to loader options.
func (c InputConfig) TableOptions() table.Options {
	opts := table.DefaultOptions()
	if c.Delimiter != "" {
		opts.Delimiter, _ = utf8.DecodeRuneInString(c.Delimiter)
	}
	if c.Comment != "" {
		opts.Comment, _ = utf8.DecodeRuneInString(c.Comment)
	}
	return opts
}

// ReportConfig controls selection and output.
type ReportConfig struct {
	// Limit is how many ranked rows are kept.
	Limit int `yaml:"limit"`

	// Output is the file the document is written to. Empty means stdout.
	Output string `yaml:"output"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	// Level is one of: debug | info | warn | error.
	Level string `yaml:"level"`

	// Format is one of: text | json.
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus textfile written after each run.
type MetricsConfig struct {
	// Textfile is the destination path. Empty disables metrics output.
	Textfile string `yaml:"textfile"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Delimiter: DefaultDelimiter,
		},
		Report: ReportConfig{
			Limit: DefaultLimit,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load reads and parses the YAML config file at path.
// Missing fields keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// validate checks enums and structural constraints.
func validate(cfg *Config) error {
	if utf8.RuneCountInString(cfg.Input.Delimiter) != 1 {
		return fmt.Errorf("input.delimiter %q must be a single character", cfg.Input.Delimiter)
	}
	if reservedChar(cfg.Input.Delimiter) {
		return fmt.Errorf("input.delimiter %q is not allowed", cfg.Input.Delimiter)
	}
	if cfg.Input.Comment != "" {
		if utf8.RuneCountInString(cfg.Input.Comment) != 1 {
			return fmt.Errorf("input.comment %q must be a single character", cfg.Input.Comment)
		}
		if reservedChar(cfg.Input.Comment) {
			return fmt.Errorf("input.comment %q is not allowed", cfg.Input.Comment)
		}
		if cfg.Input.Comment == cfg.Input.Delimiter {
			return fmt.Errorf("input.comment must differ from input.delimiter")
		}
	}
	if cfg.Report.Limit <= 0 {
		return fmt.Errorf("report.limit must be positive")
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q unknown: want debug|info|warn|error", cfg.Log.Level)
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q unknown: want text|json", cfg.Log.Format)
	}
	return nil
}

// reservedChar reports whether c cannot serve as a field or comment
// delimiter for encoding/csv.
func reservedChar(c string) bool {
	switch c {
	case "\"", "\r", "\n", "\ufffd":
		return true
	}
	return false
}
