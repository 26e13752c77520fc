package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofoot-labs/gofoot/internal/manifest"
)

func TestNewData(t *testing.T) {
	t.Run("derived fields", func(t *testing.T) {
		d := NewData("MyGame", "github.com/example/mygame", "Sam Example")
		if d.Name != "MyGame" {
			t.Errorf("Name = %q, want %q", d.Name, "MyGame")
		}
		if d.Title != "MyGame" {
			t.Errorf("Title = %q, want %q", d.Title, "MyGame")
		}
		if d.Module != "github.com/example/mygame" {
			t.Errorf("Module = %q, want %q", d.Module, "github.com/example/mygame")
		}
		if d.Version != "0.1.0" {
			t.Errorf("Version = %q, want %q", d.Version, "0.1.0")
		}
		if d.LibraryModule == "" {
			t.Error("LibraryModule should not be empty")
		}
	})

	t.Run("module defaults to lowercase name", func(t *testing.T) {
		d := NewData("MyGame", "", "")
		if d.Module != "mygame" {
			t.Errorf("Module = %q, want %q", d.Module, "mygame")
		}
	})

	t.Run("year is populated", func(t *testing.T) {
		d := NewData("Test", "", "")
		if d.Year == 0 {
			t.Error("Year should not be zero")
		}
	})
}

func TestValidateName(t *testing.T) {
	valid := []string{"MyGame", "my-game", "game_2", "X"}
	for _, name := range valid {
		if err := ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", ".", "..", "../escape", "my game", "my/game", "-game", ".hidden", `a\b`}
	for _, name := range invalid {
		if err := ValidateName(name); err == nil {
			t.Errorf("ValidateName(%q) = nil, want error", name)
		}
	}
}

func TestGenerateProject(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "MyGame")

	data := NewData("MyGame", "github.com/example/mygame", "Sam Example")
	result, err := Generate(data, outDir)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	expectedFiles := []string{"LICENSE", "README.md", ".gitignore", "go.mod", "gofoot.yaml", "main.go"}
	assertFiles(t, result, expectedFiles)

	expectedDirs := []string{"Graphics/", "Sounds/"}
	if len(result.Dirs) != len(expectedDirs) {
		t.Errorf("Dirs = %v, want %v", result.Dirs, expectedDirs)
	}
	for _, d := range []string{"Graphics", "Sounds"} {
		assertDir(t, filepath.Join(outDir, d))
		if _, err := os.Stat(filepath.Join(outDir, d, ".gitkeep")); err != nil {
			t.Errorf("missing .gitkeep in %s: %v", d, err)
		}
	}

	// Verify manifest content.
	manifestContent := readGenerated(t, outDir, "gofoot.yaml")
	assertContains(t, manifestContent, "name: MyGame")
	assertContains(t, manifestContent, `version: "0.1.0"`)
	assertContains(t, manifestContent, `author: "Sam Example"`)
	assertContains(t, manifestContent, "width: 600")
	assertContains(t, manifestContent, "height: 400")

	// Verify starter source.
	mainContent := readGenerated(t, outDir, "main.go")
	assertContains(t, mainContent, `gofoot "github.com/gofoot-labs/gofoot"`)
	assertContains(t, mainContent, "gofoot.NewWorld(600, 400)")
	assertContains(t, mainContent, `gofoot.SetTitle("MyGame")`)
	assertContains(t, mainContent, "gofoot.Start()")

	// Verify go.mod.
	goModContent := readGenerated(t, outDir, "go.mod")
	assertContains(t, goModContent, "module github.com/example/mygame")
	assertContains(t, goModContent, "require github.com/gofoot-labs/gofoot")

	// Verify license stub.
	licenseContent := readGenerated(t, outDir, "LICENSE")
	assertContains(t, licenseContent, "Sam Example")

	// Verify manifest passes schema validation and produced no warnings.
	assertManifestValid(t, outDir)
	if len(result.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestGenerateInvalidName(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"", "../escape", "my game"} {
		data := NewData(name, "", "")
		_, err := Generate(data, filepath.Join(dir, "out"))
		if err == nil {
			t.Errorf("Generate with name %q: expected error", name)
		}
	}

	// Rejection happens before any filesystem mutation.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no filesystem mutation, found %d entries", len(entries))
	}
}

func TestGenerateExistingTarget(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "MyGame")

	data := NewData("MyGame", "", "")
	if _, err := Generate(data, outDir); err != nil {
		t.Fatalf("first Generate() error: %v", err)
	}

	// Mark a file so we can detect any overwrite.
	marker := filepath.Join(outDir, "main.go")
	before, err := os.ReadFile(marker)
	if err != nil {
		t.Fatalf("reading marker: %v", err)
	}

	_, err = Generate(data, outDir)
	if err == nil {
		t.Fatal("expected error for existing target")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("error should mention existing target, got: %v", err)
	}

	after, err := os.ReadFile(marker)
	if err != nil {
		t.Fatalf("re-reading marker: %v", err)
	}
	if string(before) != string(after) {
		t.Error("second run modified the first run's output")
	}
}

func TestGenerateLeavesNoPartialState(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "Broken")

	// Force a mid-generation failure by making the fresh target directory
	// read-only immediately after creation is impossible from here, so
	// instead point the output inside a read-only parent: Mkdir fails and
	// nothing is created.
	roParent := filepath.Join(dir, "ro")
	if err := os.Mkdir(roParent, 0555); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	t.Cleanup(func() { os.Chmod(roParent, 0755) })

	data := NewData("Broken", "", "")
	_, err := Generate(data, filepath.Join(roParent, "Broken"))
	if err == nil {
		t.Skip("running as privileged user; permission failure not enforceable")
	}

	if _, statErr := os.Stat(outDir); !os.IsNotExist(statErr) {
		t.Error("failed generation left a partial directory behind")
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"main.go.tmpl", "main.go"},
		{"gofoot.yaml.tmpl", "gofoot.yaml"},
		{"dot-gitignore.tmpl", ".gitignore"},
		{"LICENSE.tmpl", "LICENSE"},
	}
	for _, tt := range tests {
		if got := outputName(tt.in); got != tt.want {
			t.Errorf("outputName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

func readGenerated(t *testing.T, dir, filename string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		t.Fatalf("reading %s: %v", filename, err)
	}
	return string(data)
}

func assertFiles(t *testing.T, result *Result, expected []string) {
	t.Helper()
	if len(result.Files) != len(expected) {
		t.Errorf("got %d files %v, want %d files %v", len(result.Files), result.Files, len(expected), expected)
		return
	}
	for i, f := range expected {
		if result.Files[i] != f {
			t.Errorf("file[%d] = %q, want %q", i, result.Files[i], f)
		}
	}
}

func assertDir(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory %s: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", path)
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}

func assertManifestValid(t *testing.T, dir string) {
	t.Helper()
	result, err := manifest.ValidateFile(filepath.Join(dir, manifest.FileName))
	if err != nil {
		t.Fatalf("manifest validation error: %v", err)
	}
	if !result.Valid {
		var msgs []string
		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			msgs = append(msgs, msg)
		}
		t.Errorf("generated manifest is invalid:\n  %s", strings.Join(msgs, "\n  "))
	}
}
