// Package config manages user-level settings stored at ~/.pipekit/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default output directory for scaffolded components and the log level.
package config
