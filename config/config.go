package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mvincent/patlog/core"
	"github.com/mvincent/patlog/formatter"
	"github.com/mvincent/patlog/handler"
	"github.com/mvincent/patlog/logger"
)

// AppenderConfig describes one output destination of a logger.
type AppenderConfig struct {
	// Type selects the destination: "stdout", "stderr" or "file"
	Type string `yaml:"type"`
	// Path of the log file, required for type "file"
	Path string `yaml:"path,omitempty"`
	// Pattern overrides the logger's pattern for this appender
	Pattern string `yaml:"pattern,omitempty"`
}

// LoggerConfig describes one named logger.
type LoggerConfig struct {
	Name      string           `yaml:"name"`
	Level     string           `yaml:"level,omitempty"`
	Pattern   string           `yaml:"pattern,omitempty"`
	Appenders []AppenderConfig `yaml:"appenders,omitempty"`
}

// Config is the root of the YAML configuration file.
type Config struct {
	Loggers []LoggerConfig `yaml:"loggers"`
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: read %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config: parse %s", path)
	}
	return cfg, nil
}

// Parse decodes configuration from raw YAML.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal yaml")
	}
	return &cfg, nil
}

// Validate reports configuration problems without building anything:
// missing or duplicate logger names, unknown levels, unknown appender
// types, file appenders without a path, and patterns that compile with
// the error flag set.
func (c *Config) Validate() error {
	seen := make(map[string]bool)
	for i, lc := range c.Loggers {
		if lc.Name == "" {
			return errors.Errorf("logger %d: name is required", i)
		}
		if seen[lc.Name] {
			return errors.Errorf("logger %q: duplicate name", lc.Name)
		}
		seen[lc.Name] = true

		if lc.Level != "" && core.ParseLevel(lc.Level) == core.UnknownLevel {
			return errors.Errorf("logger %q: unknown level %q", lc.Name, lc.Level)
		}
		if lc.Pattern != "" && formatter.NewPatternFormatter(lc.Pattern).IsError() {
			return errors.Errorf("logger %q: bad pattern %q", lc.Name, lc.Pattern)
		}
		for j, ac := range lc.Appenders {
			switch ac.Type {
			case "stdout", "stderr":
			case "file":
				if ac.Path == "" {
					return errors.Errorf("logger %q: appender %d: file appender needs a path", lc.Name, j)
				}
			default:
				return errors.Errorf("logger %q: appender %d: unknown type %q", lc.Name, j, ac.Type)
			}
			if ac.Pattern != "" && formatter.NewPatternFormatter(ac.Pattern).IsError() {
				return errors.Errorf("logger %q: appender %d: bad pattern %q", lc.Name, j, ac.Pattern)
			}
		}
	}
	return nil
}

// Build constructs the configured loggers, keyed by name. A pattern
// that compiles with the error flag set is replaced by the default
// pattern, so a typo degrades the layout instead of losing log lines;
// run Validate first when strictness is wanted. Structural problems
// (unknown appender type, unopenable file) are errors.
func (c *Config) Build() (map[string]*logger.Logger, error) {
	loggers := make(map[string]*logger.Logger, len(c.Loggers))
	for _, lc := range c.Loggers {
		if lc.Name == "" {
			return nil, errors.New("config: logger name is required")
		}
		if _, ok := loggers[lc.Name]; ok {
			return nil, errors.Errorf("config: duplicate logger %q", lc.Name)
		}

		b := logger.NewBuilder().WithName(lc.Name)
		if lc.Level != "" {
			b.WithLevel(core.ParseLevel(lc.Level))
		}

		base := compileOrDefault(lc.Pattern)
		b.WithFormatter(base)

		for j, ac := range lc.Appenders {
			f := base
			if ac.Pattern != "" {
				f = compileOrDefault(ac.Pattern)
			}
			h, err := buildAppender(ac, f)
			if err != nil {
				return nil, errors.Wrapf(err, "config: logger %q: appender %d", lc.Name, j)
			}
			b.WithHandler(h)
		}

		loggers[lc.Name] = b.Build()
	}
	return loggers, nil
}

// compileOrDefault compiles the pattern, falling back to the default
// pattern when the compiled formatter reports an error. An empty
// pattern means the default.
func compileOrDefault(pattern string) *formatter.PatternFormatter {
	if pattern == "" {
		pattern = formatter.DefaultPattern
	}
	f := formatter.NewPatternFormatter(pattern)
	if f.IsError() {
		return formatter.NewPatternFormatter(formatter.DefaultPattern)
	}
	return f
}

func buildAppender(ac AppenderConfig, f formatter.Formatter) (handler.Handler, error) {
	switch ac.Type {
	case "stdout":
		return handler.NewConsoleHandler(handler.ConsoleConfig{Writer: os.Stdout, Formatter: f}), nil
	case "stderr":
		return handler.NewConsoleHandler(handler.ConsoleConfig{Writer: os.Stderr, Formatter: f}), nil
	case "file":
		return handler.NewFileHandler(handler.FileConfig{Path: ac.Path, Formatter: f})
	default:
		return nil, errors.Errorf("unknown type %q", ac.Type)
	}
}
