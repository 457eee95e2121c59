// Package config handles configuration loading, parsing, and validation
// from defaults, an optional config file and WORKOUT_-prefixed environment
// variables. It provides type-safe access to the settings needed by the
// server and the database layer.
package config
