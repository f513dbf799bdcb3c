// Package config loads .figstyle.yaml and resolves it against CLI flags and
// environment variables with explicit priority order.
//
// Priority (highest to lowest): CLI flags, environment (FIGSTYLE_*, NO_COLOR),
// configuration file, built-in defaults. A missing or malformed file warns
// and falls back; it never fails the process.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/figstyle/figstyle/pkg/arrange"
)

// CliFlags holds parsed command-line flag values. The *Set fields track
// whether the user supplied the flag explicitly.
type CliFlags struct {
	ConfigPath string
	Format     string
	NoColor    bool
	Block      bool
	Inline     bool

	FormatSet  bool
	NoColorSet bool
}

// AppConfig mirrors the .figstyle.yaml file.
type AppConfig struct {
	Arrangements []arrange.StyleSpec `yaml:"arrangements"`
	Groups       []arrange.GroupSpec `yaml:"groups"`
	Format       string              `yaml:"format"`
	NoColor      bool                `yaml:"no_color"`
}

// DefaultFormat is used when neither flags, environment nor file pick one.
const DefaultFormat = "auto"

// ResolvedConfig is the final configuration after applying all priority
// rules, ready to hand to arrange.Resolve.
type ResolvedConfig struct {
	Raw     arrange.Config
	Caps    arrange.CapabilitySet
	Format  string
	NoColor bool

	// Seeded is true when the file named no arrangements at all and the
	// request was bootstrapped from the capability defaults.
	Seeded bool
}

// LoadConfig reads the configuration file. An empty path searches the
// working directory, then the user config dir. Any problem reading or
// parsing the file warns to stderr and returns defaults.
func LoadConfig(path string) *AppConfig {
	appCfg := &AppConfig{Format: DefaultFormat}

	if path == "" {
		path = findConfigPath()
		if path == "" {
			return appCfg
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "warning: reading config %s: %v, using defaults\n", path, err)
		}
		return appCfg
	}

	var fileCfg AppConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		fmt.Fprintf(os.Stderr, "warning: parsing config %s: %v, using defaults\n", path, err)
		return appCfg
	}

	appCfg.Arrangements = fileCfg.Arrangements
	appCfg.Groups = fileCfg.Groups
	appCfg.NoColor = fileCfg.NoColor
	if fileCfg.Format != "" {
		appCfg.Format = fileCfg.Format
	}
	return appCfg
}

// findConfigPath checks the local directory first, then the XDG config dir.
func findConfigPath() string {
	local := ".figstyle.yaml"
	if _, err := os.Stat(local); err == nil {
		return local
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "figstyle", "figstyle.yaml")
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}

// ResolveConfig resolves the effective configuration from all sources.
// Capabilities come from flags alone: they describe the host, not the user.
func ResolveConfig(flags CliFlags) (*ResolvedConfig, error) {
	appCfg := LoadConfig(flags.ConfigPath)

	resolved := &ResolvedConfig{
		Caps:    arrange.CapabilitySet{Block: flags.Block, Inline: flags.Inline},
		Format:  appCfg.Format,
		NoColor: appCfg.NoColor,
	}

	if flags.FormatSet {
		resolved.Format = flags.Format
	} else if envFormat := os.Getenv("FIGSTYLE_FORMAT"); envFormat != "" {
		resolved.Format = envFormat
	}

	if flags.NoColorSet {
		resolved.NoColor = flags.NoColor
	} else if envNoColor := getEnvBool("FIGSTYLE_NO_COLOR", "NO_COLOR"); envNoColor != nil {
		resolved.NoColor = *envNoColor
	}

	if len(appCfg.Arrangements) == 0 && len(appCfg.Groups) == 0 {
		resolved.Raw = arrange.DefaultConfig(resolved.Caps)
		resolved.Seeded = true
	} else {
		resolved.Raw = arrange.Config{
			Arrangements: appCfg.Arrangements,
			Groups:       appCfg.Groups,
		}
	}

	if err := validateFormat(resolved.Format); err != nil {
		return nil, err
	}
	return resolved, nil
}

func validateFormat(format string) error {
	switch format {
	case "auto", "table", "json", "names":
		return nil
	}
	return fmt.Errorf("invalid format %q (must be: auto, table, json, names)", format)
}

// getEnvBool reads a boolean from environment variables, trying keys in
// order. NO_COLOR is conventionally presence-based, so an unparsable
// non-empty value counts as true.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		val := os.Getenv(key)
		if val == "" {
			continue
		}
		b, err := strconv.ParseBool(val)
		if err != nil {
			b = true
		}
		return &b
	}
	return nil
}
