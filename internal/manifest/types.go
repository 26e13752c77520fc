package manifest

// FileName is the manifest file name at a project root.
const FileName = "gofoot.yaml"

// Project is the root document of a gofoot.yaml manifest.
type Project struct {
	Name        string  `yaml:"name" json:"name"`
	Version     string  `yaml:"version" json:"version"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Author      string  `yaml:"author,omitempty" json:"author,omitempty"`
	Module      string  `yaml:"module,omitempty" json:"module,omitempty"`
	Window      Window  `yaml:"window" json:"window"`
	Assets      *Assets `yaml:"assets,omitempty" json:"assets,omitempty"`
}

// Window describes the world the starter code creates.
type Window struct {
	Title    string `yaml:"title,omitempty" json:"title,omitempty"`
	Width    int    `yaml:"width" json:"width"`
	Height   int    `yaml:"height" json:"height"`
	CellSize int    `yaml:"cellSize,omitempty" json:"cellSize,omitempty"`
}

// Assets names the directories a project keeps its media in, relative to
// the project root.
type Assets struct {
	Graphics string `yaml:"graphics,omitempty" json:"graphics,omitempty"`
	Sounds   string `yaml:"sounds,omitempty" json:"sounds,omitempty"`
}

// GraphicsDir returns the graphics directory, defaulting to "Graphics".
func (p *Project) GraphicsDir() string {
	if p.Assets != nil && p.Assets.Graphics != "" {
		return p.Assets.Graphics
	}
	return "Graphics"
}

// SoundsDir returns the sounds directory, defaulting to "Sounds".
func (p *Project) SoundsDir() string {
	if p.Assets != nil && p.Assets.Sounds != "" {
		return p.Assets.Sounds
	}
	return "Sounds"
}
