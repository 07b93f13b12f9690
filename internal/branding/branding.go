// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork only has to edit one file to rename the
// tool or point it at a different community agent.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName            string `yaml:"cli_name"`
	DisplayName        string `yaml:"display_name"`
	Description        string `yaml:"description"`
	ConfigDir          string `yaml:"config_dir"`
	ConfigFile         string `yaml:"config_file"`
	EnvPrefix          string `yaml:"env_prefix"`
	DefaultEnvironment string `yaml:"default_environment"`
	DefaultEndpoint    string `yaml:"default_endpoint"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:            "aries-cli",
			DisplayName:        "Aries CLI",
			Description:        "Manage connections, credentials and schemas on a remote Aries agent",
			ConfigDir:          "aries-cli",
			ConfigFile:         "config.yaml",
			EnvPrefix:          "ARIES_CLI",
			DefaultEnvironment: "Default",
			DefaultEndpoint:    "https://agent.community.animo.id",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "aries-cli").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// ConfigDir returns the directory name that holds the config file.
func ConfigDir() string { load(); return defaults.ConfigDir }

// ConfigFile returns the config file name inside ConfigDir.
func ConfigFile() string { load(); return defaults.ConfigFile }

// EnvPrefix returns the environment variable prefix (e.g., "ARIES_CLI").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// DefaultEnvironment returns the environment name used when none is given.
func DefaultEnvironment() string { load(); return defaults.DefaultEnvironment }

// DefaultEndpoint returns the agent endpoint seeded into a fresh config file.
func DefaultEndpoint() string { load(); return defaults.DefaultEndpoint }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("suppress-output") → "ARIES_CLI_SUPPRESS_OUTPUT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(suffix, "-", "_"))
}
