// Package config handles configuration management for stemdex.
// Values are layered with koanf: embedded defaults, then an optional
// stemdex.toml in the base directory, then STEMDEX_* environment variables.
package config
