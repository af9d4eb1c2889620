// Package config defines the settings shared by every easycluster command.
//
// A [Config] is assembled in three layers: an optional YAML file
// (easycluster.yaml, searched upwards from the working directory), the
// command line flags, and finally AZURE_* environment variables for values
// still unset. Each command validates only the settings it consumes.
package config
