package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atomicstack/pathtree/internal/app"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// fileConfig mirrors the optional YAML file. Pointers distinguish "unset"
// from zero values.
type fileConfig struct {
	Separator     *string `yaml:"separator"`
	Width         *int    `yaml:"width"`
	Height        *int    `yaml:"height"`
	Footer        *bool   `yaml:"footer"`
	Follow        *bool   `yaml:"follow"`
	CollapseDepth *int    `yaml:"collapse_depth"`
	Trace         *bool   `yaml:"trace"`
	LogFile       *string `yaml:"log_file"`
}

const (
	envFile          = "PATHTREE_FILE"
	envSeparator     = "PATHTREE_SEPARATOR"
	envWidth         = "PATHTREE_WIDTH"
	envHeight        = "PATHTREE_HEIGHT"
	envShowFooter    = "PATHTREE_FOOTER"
	envPrint         = "PATHTREE_PRINT"
	envFollow        = "PATHTREE_FOLLOW"
	envCollapseDepth = "PATHTREE_COLLAPSE_DEPTH"
	envTrace         = "PATHTREE_TRACE"
	envLogFile       = "PATHTREE_LOG_FILE"
	envConfig        = "PATHTREE_CONFIG"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("pathtree", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	file := fs.String("file", envOrDefault(env, envFile, ""), "input file with one path per line ('-' reads standard input)")
	separator := fs.String("separator", envOrDefault(env, envSeparator, "/"), "path segment separator")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "show the key hint footer")
	printMode := fs.Bool("print", envOrBool(env, envPrint, false), "print the rendered tree and exit")
	follow := fs.Bool("follow", envOrBool(env, envFollow, false), "keep reading lines appended to the input file")
	collapseDepth := fs.Int("collapse-depth", envOrInt(env, envCollapseDepth, 0), "initially collapse nodes at this depth (0 collapses nothing)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	configPath := fs.String("config", envOrDefault(env, envConfig, ""), "path to a YAML config file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	envSet := func(key string) bool {
		_, ok := env[key]
		return ok
	}

	path, required := *configPath, *configPath != ""
	if !required {
		path = defaultConfigPath(env)
	}
	fileCfg, err := readFile(path, required)
	if err != nil {
		return Config{}, err
	}
	if fileCfg != nil {
		applyString(separator, fileCfg.Separator, explicit["separator"] || envSet(envSeparator))
		applyInt(width, fileCfg.Width, explicit["width"] || envSet(envWidth))
		applyInt(height, fileCfg.Height, explicit["height"] || envSet(envHeight))
		applyBool(footer, fileCfg.Footer, explicit["footer"] || envSet(envShowFooter))
		applyBool(follow, fileCfg.Follow, explicit["follow"] || envSet(envFollow))
		applyInt(collapseDepth, fileCfg.CollapseDepth, explicit["collapse-depth"] || envSet(envCollapseDepth))
		applyBool(trace, fileCfg.Trace, explicit["trace"] || envSet(envTrace))
		applyString(logFile, fileCfg.LogFile, explicit["log-file"] || envSet(envLogFile))
	} else {
		path = ""
	}

	input := *file
	if rest := fs.Args(); len(rest) > 0 {
		if len(rest) > 1 {
			return Config{}, fmt.Errorf("expected at most one input file, got %d", len(rest))
		}
		if explicit["file"] {
			return Config{}, errors.New("input given both as -file and as an argument")
		}
		input = rest[0]
	}
	if input == "" {
		input = "-"
	}

	cfg := Config{
		App: app.Config{
			Input:         input,
			Separator:     *separator,
			Width:         *width,
			Height:        *height,
			ShowFooter:    *footer,
			Print:         *printMode,
			Follow:        *follow,
			CollapseDepth: *collapseDepth,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File: path,
		Flags: map[string]string{
			"file":          input,
			"separator":     *separator,
			"width":         strconv.Itoa(*width),
			"height":        strconv.Itoa(*height),
			"footer":        strconv.FormatBool(*footer),
			"print":         strconv.FormatBool(*printMode),
			"follow":        strconv.FormatBool(*follow),
			"collapseDepth": strconv.Itoa(*collapseDepth),
			"trace":         strconv.FormatBool(*trace),
			"logFile":       *logFile,
			"config":        path,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func defaultConfigPath(env map[string]string) string {
	if dir := env["XDG_CONFIG_HOME"]; dir != "" {
		return filepath.Join(dir, "pathtree", "config.yaml")
	}
	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "pathtree", "config.yaml")
	}
	return ""
}

// readFile returns nil when the file is absent and not required.
func readFile(path string, required bool) (*fileConfig, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

func applyString(dst *string, v *string, locked bool) {
	if v != nil && !locked {
		*dst = *v
	}
}

func applyInt(dst *int, v *int, locked bool) {
	if v != nil && !locked {
		*dst = *v
	}
}

func applyBool(dst *bool, v *bool, locked bool) {
	if v != nil && !locked {
		*dst = *v
	}
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects option combinations the application cannot honour.
func Validate(cfg Config) error {
	a := cfg.App
	if a.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", a.Width)
	}
	if a.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", a.Height)
	}
	if a.Separator == "" {
		return errors.New("separator must not be empty")
	}
	if a.CollapseDepth < 0 {
		return fmt.Errorf("collapse-depth must be >= 0 (got %d)", a.CollapseDepth)
	}
	if a.Follow && a.Input == "-" {
		return errors.New("follow mode needs an input file")
	}
	if a.Follow && a.Print {
		return errors.New("follow and print cannot be combined")
	}
	return nil
}
