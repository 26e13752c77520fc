package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"
	"time"

	"github.com/gofoot-labs/gofoot/internal/branding"
	"github.com/gofoot-labs/gofoot/internal/manifest"
	"github.com/gofoot-labs/gofoot/internal/platform"
)

// namePattern accepts filesystem-safe project names: no separators, no
// leading dot or dash, so path traversal is rejected before any mutation.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// Data holds all template variables available to project templates.
type Data struct {
	Name          string // e.g., "MyGame"
	Module        string // module path for the generated go.mod
	Author        string // author in the manifest and license stub
	Title         string // window title, defaults to Name
	Description   string // human-readable description
	Version       string // semver, e.g., "0.1.0"
	Width         int    // world width in cells
	Height        int    // world height in cells
	LibraryModule string // the gofoot module the starter imports
	Year          int    // current year, for the license stub
}

// Result holds the outcome of a project generation.
type Result struct {
	OutputDir string
	Files     []string
	Dirs      []string
	Warnings  []string
}

// NewData creates template data for a project with derived fields populated.
// Empty module and author fall back to sensible defaults.
func NewData(name, module, author string) *Data {
	d := &Data{
		Name:          name,
		Module:        module,
		Author:        author,
		Title:         name,
		Version:       "0.1.0",
		Width:         600,
		Height:        400,
		LibraryModule: branding.GoModule(),
		Year:          time.Now().Year(),
	}

	d.Description = fmt.Sprintf("A %s game: %s", branding.DisplayName(), name)

	if d.Module == "" {
		d.Module = strings.ToLower(name)
	}
	if d.Author == "" {
		d.Author = "Your Name"
	}

	return d
}

// ValidateName rejects empty, unsafe, or traversal-prone project names.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("project name must not be empty")
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q: must match pattern [A-Za-z0-9][A-Za-z0-9_-]*", name)
	}
	return nil
}

// assetDirs are created empty (with a .gitkeep) in every new project,
// matching the layout the library's asset loaders expect.
var assetDirs = []string{"Graphics", "Sounds"}

// outputName maps a template file name to its generated name. Dotfiles
// cannot live in the embedded FS under their real names, so they use a
// "dot-" prefix there.
func outputName(entryName string) string {
	name := strings.TrimSuffix(entryName, ".tmpl")
	if rest, ok := strings.CutPrefix(name, "dot-"); ok {
		return "." + rest
	}
	return name
}

// Generate creates a new project directory at outputDir from the embedded
// template set. The directory must not already exist; on any error the
// partially written directory is removed so a failed run leaves no trace.
func Generate(data *Data, outputDir string) (*Result, error) {
	if err := ValidateName(data.Name); err != nil {
		return nil, err
	}

	templatesDir := "scaffolds/project"
	entries, err := fs.ReadDir(scaffoldFS, templatesDir)
	if err != nil {
		return nil, fmt.Errorf("template set not found: %w", err)
	}

	// Refuse to touch an existing target. Re-running init with the same
	// name must fail without modifying the first run's output.
	if _, err := os.Stat(outputDir); err == nil {
		return nil, fmt.Errorf("target %s already exists; choose another name or remove it first", outputDir)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("checking target %s: %w", outputDir, err)
	}

	if err := os.Mkdir(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating project directory: %w", err)
	}

	result, err := populate(entries, templatesDir, data, outputDir)
	if err != nil {
		// All-or-nothing: the directory was created by us, so removing
		// it cannot destroy pre-existing user data.
		os.RemoveAll(outputDir)
		return nil, err
	}

	// Validate the generated manifest against the JSON Schema.
	manifestFile := filepath.Join(outputDir, manifest.FileName)
	if _, err := os.Stat(manifestFile); err == nil {
		valResult, valErr := manifest.ValidateFile(manifestFile)
		if valErr != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Could not validate manifest: %v", valErr))
		} else if !valResult.Valid {
			for _, issue := range valResult.Issues {
				msg := issue.Message
				if issue.Path != "" {
					msg = issue.Path + ": " + msg
				}
				result.Warnings = append(result.Warnings, msg)
			}
		}
	}

	return result, nil
}

// populate renders every template into outputDir and creates the asset
// directories. Callers clean up outputDir if it fails.
func populate(entries []fs.DirEntry, templatesDir string, data *Data, outputDir string) (*Result, error) {
	result := &Result{OutputDir: outputDir}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		tmplPath := templatesDir + "/" + entry.Name()
		tmplBytes, err := fs.ReadFile(scaffoldFS, tmplPath)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", tmplPath, err)
		}

		outName := outputName(entry.Name())
		outPath := filepath.Join(outputDir, outName)

		tmpl, err := template.New(entry.Name()).Parse(string(tmplBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", entry.Name(), err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", entry.Name(), err)
		}

		if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}

		result.Files = append(result.Files, outName)
	}

	for _, dir := range assetDirs {
		dirPath := filepath.Join(outputDir, dir)
		if err := os.Mkdir(dirPath, 0755); err != nil {
			return nil, fmt.Errorf("creating %s directory: %w", dir, err)
		}
		platform.Chmod(dirPath, 0755)

		// Empty directories don't survive version control.
		keep := filepath.Join(dirPath, ".gitkeep")
		if err := os.WriteFile(keep, nil, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", keep, err)
		}
		result.Dirs = append(result.Dirs, dir+"/")
	}

	return result, nil
}
