package manifest

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

// Parse unmarshals raw YAML bytes into a Project. It does not validate
// beyond YAML well-formedness; use Validate for structural checks.
func Parse(data []byte) (*Project, error) {
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &p, nil
}

// ParseFile reads and parses a gofoot.yaml file.
func ParseFile(path string) (*Project, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// SemVer parses the manifest version field as semantic version.
func (p *Project) SemVer() (*semver.Version, error) {
	v, err := semver.NewVersion(p.Version)
	if err != nil {
		return nil, fmt.Errorf("version %q is not valid semver: %w", p.Version, err)
	}
	return v, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
