// Package manifest parses and validates gofoot.yaml project manifests.
// Every scaffolded project carries one; it records the project identity
// (name, version, author) and the window and asset settings the starter
// code reads. Validation is structural (JSON Schema) plus a semver check
// on the version field.
package manifest
