//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gofoot-labs/gofoot/internal/config"
	"github.com/gofoot-labs/gofoot/internal/manifest"
	"github.com/gofoot-labs/gofoot/internal/scaffold"
)

// TestFullFlowInitAndValidate covers the complete project creation flow:
// set config defaults -> generate a project -> parse and validate its
// manifest -> confirm the asset layout matches what the manifest declares.
func TestFullFlowInitAndValidate(t *testing.T) {
	env := setupTestEnv(t)

	// Step 1: Store defaults the way `gofoot config set` would.
	if err := config.Set(config.KeyAuthor, "Integration Tester"); err != nil {
		t.Fatalf("config.Set author: %v", err)
	}
	assertFileExists(t, config.FilePath())

	config.Load()
	author := config.Get(config.KeyAuthor)
	if author != "Integration Tester" {
		t.Fatalf("config.Get author = %q, want %q", author, "Integration Tester")
	}

	// Step 2: Generate a project.
	data := scaffold.NewData("SpaceRocks", "github.com/example/spacerocks", author)
	outDir := filepath.Join(env.WorkDir, "SpaceRocks")

	result, err := scaffold.Generate(data, outDir)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}

	assertFileExists(t, filepath.Join(outDir, "main.go"))
	assertFileExists(t, filepath.Join(outDir, "go.mod"))
	assertFileExists(t, filepath.Join(outDir, ".gitignore"))
	assertFileExists(t, filepath.Join(outDir, "LICENSE"))
	assertFileContains(t, filepath.Join(outDir, "LICENSE"), "Integration Tester")
	assertFileContains(t, filepath.Join(outDir, "go.mod"), "github.com/example/spacerocks")

	// Step 3: The generated manifest parses and validates.
	manifestPath := filepath.Join(outDir, manifest.FileName)
	assertFileExists(t, manifestPath)

	validation, err := manifest.ValidateFile(manifestPath)
	if err != nil {
		t.Fatalf("ValidateFile: %v", err)
	}
	if !validation.Valid {
		t.Fatalf("generated manifest is invalid: %v", validation.Issues)
	}

	proj, err := manifest.ParseFile(manifestPath)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if proj.Name != "SpaceRocks" {
		t.Errorf("manifest name = %q, want %q", proj.Name, "SpaceRocks")
	}
	if proj.Author != "Integration Tester" {
		t.Errorf("manifest author = %q, want %q", proj.Author, "Integration Tester")
	}

	// Step 4: Asset directories exist where the manifest points.
	assertDirExists(t, filepath.Join(outDir, proj.GraphicsDir()))
	assertDirExists(t, filepath.Join(outDir, proj.SoundsDir()))
}

// TestGenerateIntoExistingDirFails confirms a second generation into the
// same target fails and leaves the first project untouched.
func TestGenerateIntoExistingDirFails(t *testing.T) {
	env := setupTestEnv(t)

	data := scaffold.NewData("Pond", "", "")
	outDir := filepath.Join(env.WorkDir, "Pond")

	if _, err := scaffold.Generate(data, outDir); err != nil {
		t.Fatalf("first Generate: %v", err)
	}

	mainPath := filepath.Join(outDir, "main.go")
	before, err := os.ReadFile(mainPath)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := scaffold.Generate(data, outDir); err == nil {
		t.Fatal("expected error generating into existing directory")
	}

	after, err := os.ReadFile(mainPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("existing project was modified by the failed generation")
	}
}
