// Package config loads the optional topthree configuration file.
//
// Top-level sections (all optional):
//   - input   - delimiter, comment character for the delimited reader
//   - report  - limit (rows kept, default 3), output (file path; empty = stdout)
//   - log     - level (debug|info|warn|error, default warn), format (text|json)
//   - metrics - textfile path for the Prometheus textfile exposition
//
// Default() returns the configuration used when no file is given.
// Load(path) applies those defaults, unmarshals the YAML over them, then
// validates enums and the delimiter/comment pair.
package config
