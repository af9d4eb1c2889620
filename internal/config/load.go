package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned by FindConfigFile when no config file exists.
var ErrConfigNotFound = errors.New("config file not found")

// Environment variables consulted for values left unset by file and flags.
const (
	EnvSubscriptionID = "AZURE_SUBSCRIPTION_ID"
	EnvClientID       = "AZURE_CLIENT_ID"
	EnvClientSecret   = "AZURE_CLIENT_SECRET"
	EnvTenantID       = "AZURE_TENANT_ID"
)

// LoadFile reads and parses a YAML configuration file.
// Unknown keys are rejected so that typos do not silently drop settings.
func LoadFile(path string) (*Config, error) {
	// #nosec G304
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

// FindConfigFile looks for DefaultConfigFilename in the working directory and its parents.
func FindConfigFile() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	for {
		path := filepath.Join(dir, DefaultConfigFilename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrConfigNotFound
		}
		dir = parent
	}
}

// Load resolves the base configuration: the explicit path if given, otherwise
// an auto-detected easycluster.yaml, otherwise an empty Config.
func Load(path string) (*Config, error) {
	if path != "" {
		return LoadFile(path)
	}
	found, err := FindConfigFile()
	if errors.Is(err, ErrConfigNotFound) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	return LoadFile(found)
}

// ApplyEnv fills unset credentials and subscription from the environment.
func (c *Config) ApplyEnv() {
	setFromEnv(&c.SubscriptionID, EnvSubscriptionID)
	setFromEnv(&c.AAD.ClientID, EnvClientID)
	setFromEnv(&c.AAD.Secret, EnvClientSecret)
	setFromEnv(&c.AAD.TenantID, EnvTenantID)
}

func setFromEnv(dst *string, key string) {
	if *dst != "" {
		return
	}
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}
