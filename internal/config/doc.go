// Package config manages user-level settings stored at ~/.gofoot/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the author name and module prefix baked into scaffolded projects.
package config
