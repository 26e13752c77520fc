// Package scaffold generates new gofoot game projects from embedded
// templates. It powers the "gofoot init" command, producing a ready-to-run
// project (main.go, go.mod, gofoot.yaml manifest, license stub, asset
// directories) for a given project name. Generation is all-or-nothing:
// a failed run removes everything it wrote.
package scaffold
