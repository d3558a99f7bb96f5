package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/atomicstack/time-travel/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
	// File is the TOML file defaults were read from, if any.
	File string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envConfig     = "TIME_TRAVEL_CONFIG"
	envDB         = "TIME_TRAVEL_DB"
	envWidth      = "TIME_TRAVEL_WIDTH"
	envHeight     = "TIME_TRAVEL_HEIGHT"
	envShowFooter = "TIME_TRAVEL_FOOTER"
	envVerbose    = "TIME_TRAVEL_VERBOSE"
	envTrace      = "TIME_TRAVEL_TRACE"
	envLogFile    = "TIME_TRAVEL_LOG_FILE"
	envTimerLimit = "TIME_TRAVEL_TIMER_LIMIT"
	envTick       = "TIME_TRAVEL_TICK"
)

const (
	defaultTimerLimit = 4 * time.Hour
	defaultTick       = time.Second
)

// fileConfig mirrors the flags in a TOML file. Unset keys keep the defaults.
type fileConfig struct {
	DB         *string `toml:"db"`
	Width      *int    `toml:"width"`
	Height     *int    `toml:"height"`
	Footer     *bool   `toml:"footer"`
	Trace      *bool   `toml:"trace"`
	Verbose    *bool   `toml:"verbose"`
	LogFile    *string `toml:"log_file"`
	TimerLimit *string `toml:"timer_limit"`
	Tick       *string `toml:"tick"`
}

type defaults struct {
	db         string
	width      int
	height     int
	footer     bool
	trace      bool
	verbose    bool
	logFile    string
	timerLimit time.Duration
	tick       time.Duration
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Flags win over
// environment variables, which win over the config file.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	def := defaults{
		db:         DefaultDBPath(),
		timerLimit: defaultTimerLimit,
		tick:       defaultTick,
	}
	file := configPath(args, env)
	if file != "" {
		if err := applyFile(&def, file); err != nil {
			return Config{}, err
		}
	}

	fs := flag.NewFlagSet("time-travel", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", file, "path to a TOML file with default settings")
	db := fs.String("db", envOrDefault(env, envDB, def.db), "path to the SQLite database (empty keeps data in memory)")
	width := fs.Int("width", envOrInt(env, envWidth, def.width), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, def.height), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, def.footer), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, def.trace), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, def.verbose), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, def.logFile), "path to the log file")
	timerLimit := fs.Duration("timer-limit", envOrDuration(env, envTimerLimit, def.timerLimit), "cancel a running timer after this long")
	tick := fs.Duration("tick", envOrDuration(env, envTick, def.tick), "timer display refresh interval")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			DBPath:     *db,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Verbose:    *verbose,
			TimerLimit: *timerLimit,
			Tick:       *tick,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"config":     file,
			"db":         *db,
			"width":      strconv.Itoa(*width),
			"height":     strconv.Itoa(*height),
			"footer":     strconv.FormatBool(*footer),
			"trace":      strconv.FormatBool(*trace),
			"verbose":    strconv.FormatBool(*verbose),
			"logFile":    *logFile,
			"timerLimit": timerLimit.String(),
			"tick":       tick.String(),
		},
		Args: append([]string(nil), args...),
		File: file,
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultDBPath is the database location used when none is configured.
func DefaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "time-travel.db"
	}
	return filepath.Join(dir, "time-travel", "time-travel.db")
}

// configPath finds -config before the flag set is built, so the file can
// supply flag defaults.
func configPath(args []string, env map[string]string) string {
	path := envOrDefault(env, envConfig, "")
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		switch {
		case name == "config" && i+1 < len(args):
			path = args[i+1]
			i++
		case strings.HasPrefix(name, "config="):
			path = strings.TrimPrefix(name, "config=")
		}
	}
	return path
}

func applyFile(def *defaults, path string) error {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if fc.DB != nil {
		def.db = *fc.DB
	}
	if fc.Width != nil {
		def.width = *fc.Width
	}
	if fc.Height != nil {
		def.height = *fc.Height
	}
	if fc.Footer != nil {
		def.footer = *fc.Footer
	}
	if fc.Trace != nil {
		def.trace = *fc.Trace
	}
	if fc.Verbose != nil {
		def.verbose = *fc.Verbose
	}
	if fc.LogFile != nil {
		def.logFile = *fc.LogFile
	}
	if fc.TimerLimit != nil {
		d, err := time.ParseDuration(*fc.TimerLimit)
		if err != nil {
			return fmt.Errorf("config %s: timer_limit: %w", path, err)
		}
		def.timerLimit = d
	}
	if fc.Tick != nil {
		d, err := time.ParseDuration(*fc.Tick)
		if err != nil {
			return fmt.Errorf("config %s: tick: %w", path, err)
		}
		def.tick = d
	}
	return nil
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

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
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

// Validate ensures the numeric options are in range.
func Validate(cfg Config) error {
	var errs []error
	if cfg.App.Width < 0 {
		errs = append(errs, fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width))
	}
	if cfg.App.Height < 0 {
		errs = append(errs, fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height))
	}
	if cfg.App.TimerLimit <= 0 {
		errs = append(errs, fmt.Errorf("timer-limit must be > 0 (got %s)", cfg.App.TimerLimit))
	}
	if cfg.App.Tick <= 0 {
		errs = append(errs, fmt.Errorf("tick must be > 0 (got %s)", cfg.App.Tick))
	}
	return errors.Join(errs...)
}
