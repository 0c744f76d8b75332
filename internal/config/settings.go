package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Settings represents the structure of $FINDEDITOR_HOME/settings.json
type Settings struct {
	Debug        *bool       `json:"debug,omitempty"`
	ExtraEnvVars StringArray `json:"extra_env_vars,omitempty"`
	IgnoreEmpty  *bool       `json:"ignore_empty,omitempty"`
	MaxLogFiles  *int        `json:"max_log_files,omitempty"`
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	// Fall back to comma-separated string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// SettingKeys returns the settings.json keys accepted by Set, sorted
func SettingKeys() []string {
	example := GetSettingsExample()
	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Set parses value for the settings.json key and stores it.
// extra_env_vars takes a comma-separated list; an empty value clears it.
func (s *Settings) Set(key, value string) error {
	switch key {
	case "debug", "ignore_empty":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %q is not a boolean", key, value)
		}
		if key == "debug" {
			s.Debug = &b
		} else {
			s.IgnoreEmpty = &b
		}
	case "extra_env_vars":
		s.ExtraEnvVars = parseCommaSeparated(value)
	case "max_log_files":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid value for %s: %q is not a non-negative integer", key, value)
		}
		s.MaxLogFiles = &n
	default:
		return fmt.Errorf("unknown setting '%s'. Valid settings: %s", key, strings.Join(SettingKeys(), ", "))
	}
	return nil
}

// LoadSettings loads settings from $FINDEDITOR_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $FINDEDITOR_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
