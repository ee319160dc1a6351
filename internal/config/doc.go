// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional YAML file. It provides type-safe
// access to the settings the server needs while keeping configuration details
// separate from the conversion logic.
package config
