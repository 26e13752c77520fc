package manifest

import (
	"testing"
)

func TestValidateFile_ValidManifests(t *testing.T) {
	validFiles := []string{
		"valid-project.yaml",
		"valid-grid-project.yaml",
	}

	for _, file := range validFiles {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", file, err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got invalid with %d issues:", len(result.Issues))
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
			}
		})
	}
}

func TestValidateFile_InvalidManifests(t *testing.T) {
	invalidFiles := []struct {
		file string
		desc string
	}{
		{"invalid-missing-version.yaml", "missing required version field"},
		{"invalid-bad-name.yaml", "name violates pattern"},
		{"invalid-bad-window.yaml", "non-positive window dimensions"},
		{"invalid-bad-semver.yaml", "version is not semver"},
	}

	for _, tt := range invalidFiles {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Errorf("expected invalid for %s (%s), but got valid", tt.file, tt.desc)
			}
			if len(result.Issues) == 0 {
				t.Errorf("expected at least one issue for %s (%s)", tt.file, tt.desc)
			}
		})
	}
}

func TestValidateFile_InvalidYAML(t *testing.T) {
	_, err := ValidateFile(testPath("invalid-not-yaml.yaml"))
	if err == nil {
		t.Fatal("expected error for malformed YAML, got nil")
	}
}

func TestValidate_SemverIssueHasPath(t *testing.T) {
	result, err := ValidateFile(testPath("invalid-bad-semver.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	found := false
	for _, issue := range result.Issues {
		if issue.Path == "/version" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an issue at /version, got %v", result.Issues)
	}
}
