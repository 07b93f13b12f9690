package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/animo/aries-cli/internal/branding"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Global flag names. Each one can also be set through an environment
// variable, e.g. --suppress-output via ARIES_CLI_SUPPRESS_OUTPUT.
const (
	FlagEnvironment    = "environment"
	FlagConfig         = "config"
	FlagEndpoint       = "endpoint"
	FlagAPIKey         = "apikey"
	FlagCopy           = "copy"
	FlagSuppressOutput = "suppress-output"
	FlagAgent          = "agent"
	FlagTimeout        = "timeout"
	FlagLogLevel       = "log-level"
)

// Defaults for the non-string-empty global flags.
const (
	DefaultAgent    = "aca-py"
	DefaultTimeout  = 30 * time.Second
	DefaultLogLevel = "warn"
)

// AddFlags registers the global flags on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagEnvironment, "e", "", usage(FlagEnvironment, fmt.Sprintf("environment to resolve from the config file (default %q)", branding.DefaultEnvironment())))
	fs.StringP(FlagConfig, "c", "", usage(FlagConfig, "path to the config file (default ~/.config/"+branding.ConfigDir()+"/"+branding.ConfigFile()+")"))
	fs.StringP(FlagEndpoint, "u", "", usage(FlagEndpoint, "agent endpoint, bypasses the stored environment"))
	fs.StringP(FlagAPIKey, "k", "", usage(FlagAPIKey, "agent api key, bypasses the stored credential"))
	fs.BoolP(FlagCopy, "o", false, usage(FlagCopy, "copy the output to the clipboard"))
	fs.BoolP(FlagSuppressOutput, "s", false, usage(FlagSuppressOutput, "suppress output"))
	fs.String(FlagAgent, DefaultAgent, usage(FlagAgent, "agent backend kind (aca-py, afj-rest)"))
	fs.Duration(FlagTimeout, DefaultTimeout, usage(FlagTimeout, "timeout for each request to the agent"))
	fs.String(FlagLogLevel, DefaultLogLevel, usage(FlagLogLevel, "log level (trace, debug, info, warn, error, silent)"))
}

func usage(flag, text string) string {
	return text + " [$" + branding.EnvVar(flag) + "]"
}

// NewViper returns a viper instance layering environment variables under the
// flags in fs. A flag set on the command line beats its environment variable,
// which beats the flag default.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, name := range []string{
		FlagEnvironment, FlagConfig, FlagEndpoint, FlagAPIKey, FlagCopy,
		FlagSuppressOutput, FlagAgent, FlagTimeout, FlagLogLevel,
	} {
		flag := fs.Lookup(name)
		if flag == nil {
			return nil, fmt.Errorf("flag --%s is not registered", name)
		}
		if err := v.BindPFlag(name, flag); err != nil {
			return nil, fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}
	return v, nil
}

// OverridesFrom reads the bound values out of v.
func OverridesFrom(v *viper.Viper) Overrides {
	return Overrides{
		Endpoint:       v.GetString(FlagEndpoint),
		APIKey:         v.GetString(FlagAPIKey),
		Environment:    v.GetString(FlagEnvironment),
		ConfigPath:     v.GetString(FlagConfig),
		Agent:          v.GetString(FlagAgent),
		LogLevel:       v.GetString(FlagLogLevel),
		Timeout:        v.GetDuration(FlagTimeout),
		Copy:           v.GetBool(FlagCopy),
		SuppressOutput: v.GetBool(FlagSuppressOutput),
	}
}
