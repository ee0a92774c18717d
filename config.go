package main

// Global configuration of the editor. Settings start from built-in defaults,
// are overridden by an optional TOML file and finally by command-line flags
// that were given explicitly.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	defaultTabStop        = 4
	defaultQuitTimes      = 3
	defaultMessageTimeout = 5 * time.Second
	defaultShellTimeout   = 10 * time.Second
)

// Frontend backends selectable with -backend.
const (
	BackendANSI    = "ansi"
	BackendTermbox = "termbox"
)

// Configuration holds all adjustable settings for the editor.
type Configuration struct {
	TabStop        int           // Number of columns between tab stops.
	QuitTimes      int           // Extra Ctrl-Q presses needed to quit with unsaved changes.
	MessageTimeout time.Duration // How long a status message stays visible.
	Backend        string        // Screen backend, "ansi" or "termbox".
	Shell          string        // Shell used to run commands (Ctrl-U, Ctrl-E).
	ShellTimeout   time.Duration // Upper bound on a single shell command.
	UseLogFile     bool          // Whether to write debug logs to a file.
	LogFilePath    string        // Where to store the debug logs.
	UseHistory     bool          // Whether to remember cursor positions per file.
	HistoryPath    string        // SQLite database holding cursor positions.
	ConfigPath     string        // TOML file read before flags are applied.
	ShowColors     bool          // Command-line flag to show the highlight palette and exit.
	ShowInfo       bool          // Command-line flag to show file types and exit.
	ShowVersion    bool          // Command-line flag to show version and exit.
}

// Config is the global configuration instance.
var Config Configuration

// fileConfig mirrors the keys accepted in the TOML file. Pointers tell keys
// that were left out apart from zero values.
type fileConfig struct {
	TabStop        *int    `toml:"tab_stop"`
	QuitTimes      *int    `toml:"quit_times"`
	MessageTimeout *string `toml:"message_timeout"`
	Backend        *string `toml:"backend"`
	Shell          *string `toml:"shell"`
	ShellTimeout   *string `toml:"shell_timeout"`
	Log            *bool   `toml:"log"`
	LogPath        *string `toml:"log_path"`
	History        *bool   `toml:"history"`
	HistoryPath    *string `toml:"history_path"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Configuration {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}

	cfg := Configuration{
		TabStop:        defaultTabStop,
		QuitTimes:      defaultQuitTimes,
		MessageTimeout: defaultMessageTimeout,
		Backend:        BackendANSI,
		Shell:          shell,
		ShellTimeout:   defaultShellTimeout,
		LogFilePath:    "/tmp/reef-debug.log",
		UseHistory:     true,
	}
	if dir, err := os.UserConfigDir(); err == nil {
		cfg.ConfigPath = filepath.Join(dir, "reef", "config.toml")
	}
	if dir, err := os.UserCacheDir(); err == nil {
		cfg.HistoryPath = filepath.Join(dir, "reef", "history.db")
	}
	return cfg
}

// InitConfig parses the process arguments into the global Config and returns
// the remaining positional arguments.
func InitConfig() ([]string, error) {
	cfg, args, err := parseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		return nil, err
	}
	Config = cfg
	return args, nil
}

// parseConfig registers the editor flags, parses args and merges in the
// config file. Flags given on the command line win over the file.
func parseConfig(flags *flag.FlagSet, args []string) (Configuration, []string, error) {
	cfg := DefaultConfig()

	flags.IntVar(&cfg.TabStop, "tab-stop", cfg.TabStop, "Number of columns between tab stops")
	flags.IntVar(&cfg.QuitTimes, "quit-times", cfg.QuitTimes, "Extra Ctrl-Q presses required to quit with unsaved changes")
	flags.DurationVar(&cfg.MessageTimeout, "message-timeout", cfg.MessageTimeout, "How long status messages stay visible")
	flags.StringVar(&cfg.Backend, "backend", cfg.Backend, "Screen backend (ansi or termbox)")
	flags.StringVar(&cfg.Shell, "shell", cfg.Shell, "Shell used to run commands")
	flags.DurationVar(&cfg.ShellTimeout, "shell-timeout", cfg.ShellTimeout, "Maximum run time of a shell command")
	flags.BoolVar(&cfg.UseLogFile, "log", cfg.UseLogFile, "Enable logging to file")
	flags.StringVar(&cfg.LogFilePath, "log-path", cfg.LogFilePath, "Path to log file")
	flags.BoolVar(&cfg.UseHistory, "history", cfg.UseHistory, "Remember cursor positions per file")
	flags.StringVar(&cfg.HistoryPath, "history-path", cfg.HistoryPath, "Path to the cursor position database")
	flags.StringVar(&cfg.ConfigPath, "config", cfg.ConfigPath, "Path to the TOML configuration file")
	flags.BoolVar(&cfg.ShowColors, "colors", false, "Show the highlight palette")
	flags.BoolVar(&cfg.ShowInfo, "info", false, "Show supported file types")
	flags.BoolVar(&cfg.ShowVersion, "version", false, "Show version")

	if err := flags.Parse(args); err != nil {
		return cfg, nil, err
	}

	// Remember which flags were given so the file does not override them.
	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if err := cfg.applyFile(cfg.ConfigPath, set["config"], set); err != nil {
		return cfg, nil, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, nil, err
	}
	return cfg, flags.Args(), nil
}

// applyFile merges the TOML file at path into c, skipping keys whose flag is
// in set. A missing file is only an error when it was asked for explicitly.
func (c *Configuration) applyFile(path string, required bool, set map[string]bool) error {
	if path == "" {
		return nil
	}

	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if fc.TabStop != nil && !set["tab-stop"] {
		c.TabStop = *fc.TabStop
	}
	if fc.QuitTimes != nil && !set["quit-times"] {
		c.QuitTimes = *fc.QuitTimes
	}
	if fc.MessageTimeout != nil && !set["message-timeout"] {
		d, err := time.ParseDuration(*fc.MessageTimeout)
		if err != nil {
			return fmt.Errorf("config %s: message_timeout: %w", path, err)
		}
		c.MessageTimeout = d
	}
	if fc.Backend != nil && !set["backend"] {
		c.Backend = *fc.Backend
	}
	if fc.Shell != nil && !set["shell"] {
		c.Shell = *fc.Shell
	}
	if fc.ShellTimeout != nil && !set["shell-timeout"] {
		d, err := time.ParseDuration(*fc.ShellTimeout)
		if err != nil {
			return fmt.Errorf("config %s: shell_timeout: %w", path, err)
		}
		c.ShellTimeout = d
	}
	if fc.Log != nil && !set["log"] {
		c.UseLogFile = *fc.Log
	}
	if fc.LogPath != nil && !set["log-path"] {
		c.LogFilePath = *fc.LogPath
	}
	if fc.History != nil && !set["history"] {
		c.UseHistory = *fc.History
	}
	if fc.HistoryPath != nil && !set["history-path"] {
		c.HistoryPath = *fc.HistoryPath
	}
	return nil
}

// validate rejects settings the editor cannot run with.
func (c *Configuration) validate() error {
	if c.TabStop < 1 {
		return fmt.Errorf("tab stop must be at least 1, got %d", c.TabStop)
	}
	if c.QuitTimes < 0 {
		return fmt.Errorf("quit times must not be negative, got %d", c.QuitTimes)
	}
	if c.MessageTimeout <= 0 {
		return fmt.Errorf("message timeout must be positive, got %s", c.MessageTimeout)
	}
	switch c.Backend {
	case BackendANSI, BackendTermbox:
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, BackendANSI, BackendTermbox)
	}
	return nil
}

// newLogger returns the debug logger. Without -log everything is discarded.
func newLogger(c Configuration) (*log.Logger, func(), error) {
	if !c.UseLogFile {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(c.LogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.New(f, "", log.LstdFlags), func() { f.Close() }, nil
}
