package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/renato0307/findeditor/internal/config"
	"github.com/renato0307/findeditor/internal/logging"
	"github.com/renato0307/findeditor/internal/ports"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	ExtraVar    []string         `help:"Extra environment variable to check before $VISUAL and $EDITOR (repeatable)" short:"e" sep:"none"`
	IgnoreEmpty bool             `help:"Treat editor variables set to an empty string as unset"`

	Name     NameCmd     `cmd:"name" help:"Print the raw editor command"`
	Split    SplitCmd    `cmd:"split" help:"Split an editor command into name and arguments"`
	Which    WhichCmd    `cmd:"which" help:"Resolve the editor executable through PATH"`
	Info     InfoCmd     `cmd:"info" help:"Show how the editor was found" default:"1"`
	Open     OpenCmd     `cmd:"open" help:"Open a file in the editor"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta, set)"`

	// Internal fields (not flags)
	Finder   ports.EditorFinder `kong:"-"`
	settings *config.Settings   `kong:"-"`
	stdout   io.Writer          `kong:"-"`
	stderr   io.Writer          `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// SetOutput redirects command output. Nil writers keep the process streams.
func (c *CLI) SetOutput(stdout, stderr io.Writer) {
	c.stdout = stdout
	c.stderr = stderr
}

// Stdout returns the writer commands print results to
func (c *CLI) Stdout() io.Writer {
	if c.stdout == nil {
		return os.Stdout
	}
	return c.stdout
}

// Stderr returns the writer commands print warnings to
func (c *CLI) Stderr() io.Writer {
	if c.stderr == nil {
		return os.Stderr
	}
	return c.stderr
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults
	// Only apply a setting if the flag is at its default value and no env var is set
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("FINDEDITOR_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("FINDEDITOR_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}

		// Settings variables are checked after the ones given on the command line
		c.ExtraVar = append(c.ExtraVar, c.settings.ExtraEnvVars...)
	}

	if !c.IgnoreEmpty {
		if v, hasEnv := os.LookupEnv("FINDEDITOR_IGNORE_EMPTY"); hasEnv {
			if parsed, err := strconv.ParseBool(v); err == nil {
				c.IgnoreEmpty = parsed
			}
		} else if c.settings != nil && c.settings.IgnoreEmpty != nil {
			c.IgnoreEmpty = *c.settings.IgnoreEmpty
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}
	if logFilePath != "" && os.Getenv("FINDEDITOR_DEBUG") == "" {
		fmt.Fprintf(c.Stderr(), "Debug mode enabled. Logs: %s\n", logFilePath)
	}

	// Editors that call back into findeditor log to the same file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("FINDEDITOR_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("FINDEDITOR_DEBUG_FILE", logFilePath)
		}
	}

	if c.Finder == nil {
		c.Finder = NewFinder(c.ExtraVar, c.IgnoreEmpty)
	}

	logging.Logger.Debug("CLI initialized",
		"extra_vars", c.ExtraVar,
		"ignore_empty", c.IgnoreEmpty)

	return nil
}
