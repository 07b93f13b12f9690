package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/animo/aries-cli/internal/branding"
	"github.com/animo/aries-cli/internal/platform"
	"go.yaml.in/yaml/v3"
)

// Environment is one named deployment target.
type Environment struct {
	Name     string `yaml:"name"`
	Endpoint string `yaml:"endpoint"`
	APIKey   string `yaml:"api_key,omitempty"`
}

// HasAPIKey reports whether the environment carries a credential.
func (e Environment) HasAPIKey() bool {
	return e.APIKey != ""
}

// File is the parsed configuration document.
type File struct {
	Configurations []Environment `yaml:"configurations"`
}

// Lookup returns the environment with the given name.
func (f *File) Lookup(name string) (Environment, error) {
	for _, env := range f.Configurations {
		if env.Name == name {
			return env, nil
		}
	}
	return Environment{}, fmt.Errorf("%w: %q (available: %s)", ErrEnvironmentNotFound, name, strings.Join(f.Names(), ", "))
}

// Names returns the environment names in file order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Configurations))
	for _, env := range f.Configurations {
		names = append(names, env.Name)
	}
	return names
}

// Marshal serializes the file in the on-disk YAML layout.
func (f *File) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("encoding configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding configuration: %w", err)
	}
	return buf.Bytes(), nil
}

// Seed returns the document written by Initialize: a single Default
// environment pointing at the community agent, without an api key.
func Seed() *File {
	return &File{Configurations: []Environment{{
		Name:     branding.DefaultEnvironment(),
		Endpoint: branding.DefaultEndpoint(),
	}}}
}

// Initialize creates the config file at path with the seed document.
// It refuses to touch an existing file.
func Initialize(path string) error {
	if _, err := os.Lstat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrConfigAlreadyExists, path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking %s: %w", path, err)
	}

	data, err := Seed().Marshal()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, platform.DirPermSecure); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	// O_EXCL closes the window between the Lstat above and the write.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, platform.FilePermSecure)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigAlreadyExists, path)
		}
		return fmt.Errorf("creating config file %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	// The umask may have loosened the mode passed to OpenFile.
	if err := platform.Chmod(path, platform.FilePermSecure); err != nil {
		return fmt.Errorf("restricting permissions on %s: %w", path, err)
	}
	return nil
}

// Read loads and validates the config file at path.
func Read(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigMissing, path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse validates and decodes a config document.
func Parse(data []byte) (*File, error) {
	issues, err := validate(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigMalformed, err)
	}
	if len(issues) > 0 {
		msgs := make([]string, 0, len(issues))
		for _, issue := range issues {
			msgs = append(msgs, issue.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrConfigMalformed, strings.Join(msgs, "; "))
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigMalformed, err)
	}

	seen := make(map[string]bool, len(f.Configurations))
	for i, env := range f.Configurations {
		if seen[env.Name] {
			return nil, fmt.Errorf("%w: duplicate environment %q", ErrConfigMalformed, env.Name)
		}
		seen[env.Name] = true
		f.Configurations[i].APIKey = expandEnvVars(env.APIKey)
	}
	return &f, nil
}

// RawView returns the file content exactly as stored.
func RawView(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrConfigMissing, path, err)
	}
	return string(data), nil
}

// envVarPattern matches ${VAR_NAME} references.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnvVars replaces ${VAR} references with environment values so api
// keys need not be stored in clear text. Unset variables are left unchanged.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if val, ok := os.LookupEnv(match[2 : len(match)-1]); ok {
			return val
		}
		return match
	})
}
