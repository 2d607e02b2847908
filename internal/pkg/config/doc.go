// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file, overridden by environment variables and
// validated before use. Each settings block exposes a Validate method so the
// binaries can fail fast on a broken deployment.
package config
