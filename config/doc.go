// Package config handles loading and parsing of configuration from YAML files,
// .env files and environment variables. It defines which handlers make up the
// chain, in what order, which requests the demo sends, and how output and
// logging are formatted.
package config
