package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/renato0307/findeditor/internal/config"
	"github.com/renato0307/findeditor/internal/logging"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
	Set  SettingsSetCmd  `cmd:"set" help:"Change a value in settings.json"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// SettingsSetCmd writes a single setting
type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting name (debug, extra_env_vars, ignore_empty, max_log_files)"`
	Value string `arg:"" help:"Setting value (comma-separated for extra_env_vars)"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()
	out := cli.Stdout()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "Settings file: %s\n\n", settingsFile)
	fmt.Fprintln(out, "Example settings.json:")
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, key := range config.SettingKeys() {
		var valueStr string
		switch v := example[key].(type) {
		case []string:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		default:
			valueStr = fmt.Sprintf("%v", v)
		}
		fmt.Fprintf(w, "%s\t%s\n", key, valueStr)
	}
	w.Flush()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Create or edit this file to configure findeditor.")
	fmt.Fprintln(out, "All settings are optional and have sensible defaults.")
	fmt.Fprintln(out, "Use 'findeditor settings set <key> <value>' to change one.")

	return nil
}

// Run executes the set command
func (s *SettingsSetCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Setting value", "key", s.Key, "value", s.Value)

	// Reload so values merged from flags and env are not persisted
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if err := settings.Set(s.Key, s.Value); err != nil {
		return err
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Fprintf(cli.Stdout(), "Set '%s' to: %s\n", s.Key, s.Value)
	return nil
}
