package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"

	"github.com/865charlesw/x12tools/pkg/x12"
)

// Config holds all configuration options.
type Config struct {
	// Newlines selects the newline behavior when rendering: "auto", "always",
	// or "never".
	Newlines string `json:"newlines,omitempty"`

	// SegmentTerminator and ElementSeparator are single-character strings used
	// to parse documents when delimiter detection does not apply.
	SegmentTerminator string `json:"segment_terminator,omitempty"`
	ElementSeparator  string `json:"element_separator,omitempty"`

	// DetectDelimiters reads delimiters from the ISA header of any document
	// that starts with one. Unset means enabled.
	DetectDelimiters *bool `json:"detect_delimiters,omitempty"`
}

// ConfigSources tracks which config files were loaded.
type ConfigSources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise
}

// DefaultConfig returns the default configuration: the standard '~' and '*'
// delimiters, automatic newlines, and delimiter detection enabled.
func DefaultConfig() Config {
	detect := true

	return Config{
		Newlines:          "auto",
		SegmentTerminator: string(x12.DefaultSegmentTerminator),
		ElementSeparator:  string(x12.DefaultElementSeparator),
		DetectDelimiters:  &detect,
	}
}

// ConfigFileName is the default config file name.
const ConfigFileName = ".x12.json"

// getGlobalConfigPath returns the path to the global config file.
// Uses $XDG_CONFIG_HOME/x12/config.json if set, otherwise ~/.config/x12/config.json.
// Returns empty string if home directory cannot be determined.
func getGlobalConfigPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "x12", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "x12", "config.json")
	}

	return ""
}

// LoadConfig loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config (~/.config/x12/config.json or $XDG_CONFIG_HOME/x12/config.json)
// 3. Project config file at default location (.x12.json, if exists)
// 4. Explicit config file via configPath (if non-empty)
//
// Command flags layer on top inside each command.
func LoadConfig(workDir, configPath string, env map[string]string) (Config, ConfigSources, error) {
	cfg := DefaultConfig()

	var sources ConfigSources

	// Load global config if it exists
	globalCfg, globalPath, err := loadGlobalConfig(env)
	if err != nil {
		return Config{}, ConfigSources{}, err
	}

	sources.Global = globalPath
	cfg = mergeConfig(cfg, globalCfg)

	// Load project/explicit config file
	projectCfg, projectPath, err := loadProjectConfig(workDir, configPath)
	if err != nil {
		return Config{}, ConfigSources{}, err
	}

	sources.Project = projectPath
	cfg = mergeConfig(cfg, projectCfg)

	// The two delimiters can collide across files, so this check only makes
	// sense on the merged result.
	pairErr := validateDelimiterPair(cfg)
	if pairErr != nil {
		return Config{}, ConfigSources{}, fmt.Errorf("%w: %w", ErrConfigInvalid, pairErr)
	}

	return cfg, sources, nil
}

// loadGlobalConfig loads the global user config file if it exists.
// Returns the config, the path if loaded, and any error.
func loadGlobalConfig(env map[string]string) (Config, string, error) {
	globalCfgPath := getGlobalConfigPath(env)
	if globalCfgPath == "" {
		return Config{}, "", nil
	}

	globalCfg, loaded, err := loadConfigFile(globalCfgPath, false)
	if err != nil {
		return Config{}, "", err
	}

	if !loaded {
		return Config{}, "", nil
	}

	return globalCfg, globalCfgPath, nil
}

// loadProjectConfig loads the project config file (.x12.json) or an explicit config file.
// Returns the config, the path if loaded, and any error.
func loadProjectConfig(workDir, configPath string) (Config, string, error) {
	var cfgFile string

	var mustExist bool

	if configPath != "" {
		// Explicit config file - must exist
		cfgFile = configPath
		if !filepath.IsAbs(cfgFile) {
			cfgFile = filepath.Join(workDir, cfgFile)
		}

		mustExist = true

		// Check existence first to provide a clear "not found" error
		_, statErr := os.Stat(cfgFile)
		if statErr != nil {
			return Config{}, "", fmt.Errorf("%w: %s", ErrConfigFileNotFound, configPath)
		}
	} else {
		// Default project config file - optional
		cfgFile = filepath.Join(workDir, ConfigFileName)
		mustExist = false
	}

	fileCfg, loaded, err := loadConfigFile(cfgFile, mustExist)
	if err != nil {
		return Config{}, "", err
	}

	if !loaded {
		return Config{}, "", nil
	}

	return fileCfg, cfgFile, nil
}

// loadConfigFile loads a config file. If mustExist is false, missing files return zero config.
// Returns the config, whether the file was loaded, and any error.
func loadConfigFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return Config{}, false, nil
		}

		if mustExist {
			return Config{}, false, fmt.Errorf("%w: %s", ErrConfigFileRead, path)
		}

		return Config{}, false, nil
	}

	cfg, parseErr := parseConfig(data)
	if parseErr != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, parseErr)
	}

	valErr := validateConfigValues(cfg)
	if valErr != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, valErr)
	}

	return cfg, true, nil
}

func parseConfig(data []byte) (Config, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	unmarshalErr := json.Unmarshal(standardized, &cfg)
	if unmarshalErr != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", unmarshalErr)
	}

	return cfg, nil
}

func mergeConfig(base, overlay Config) Config {
	if overlay.Newlines != "" {
		base.Newlines = overlay.Newlines
	}

	if overlay.SegmentTerminator != "" {
		base.SegmentTerminator = overlay.SegmentTerminator
	}

	if overlay.ElementSeparator != "" {
		base.ElementSeparator = overlay.ElementSeparator
	}

	if overlay.DetectDelimiters != nil {
		base.DetectDelimiters = overlay.DetectDelimiters
	}

	return base
}

// validateConfigValues checks the keys a single file may set.
func validateConfigValues(cfg Config) error {
	switch cfg.Newlines {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("%w: %q", ErrNewlinesValue, cfg.Newlines)
	}

	if len(cfg.SegmentTerminator) > 1 {
		return fmt.Errorf("%w: segment_terminator %q", ErrDelimiterWidth, cfg.SegmentTerminator)
	}

	if len(cfg.ElementSeparator) > 1 {
		return fmt.Errorf("%w: element_separator %q", ErrDelimiterWidth, cfg.ElementSeparator)
	}

	return nil
}

func validateDelimiterPair(cfg Config) error {
	if cfg.SegmentTerminator != "" && cfg.SegmentTerminator == cfg.ElementSeparator {
		return fmt.Errorf("%w: both are %q", ErrDelimitersEqual, cfg.SegmentTerminator)
	}

	return nil
}

// detectionEnabled reports whether delimiter detection is on. Unset means on.
func (c Config) detectionEnabled() bool {
	return c.DetectDelimiters == nil || *c.DetectDelimiters
}

// terminatorByte returns the configured segment terminator byte.
func (c Config) terminatorByte() byte {
	if c.SegmentTerminator == "" {
		return x12.DefaultSegmentTerminator
	}

	return c.SegmentTerminator[0]
}

// separatorByte returns the configured element separator byte.
func (c Config) separatorByte() byte {
	if c.ElementSeparator == "" {
		return x12.DefaultElementSeparator
	}

	return c.ElementSeparator[0]
}

// newlineMode maps the newlines key to a render mode.
func (c Config) newlineMode() x12.NewlineMode {
	switch c.Newlines {
	case "always":
		return x12.NewlinesAlways
	case "never":
		return x12.NewlinesNever
	default:
		return x12.NewlinesAuto
	}
}

// FormatConfig returns the config as formatted JSON.
func FormatConfig(cfg Config) (string, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("formatting config: %w", err)
	}

	return string(data), nil
}
