package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofoot-labs/gofoot/internal/config"
	"github.com/gofoot-labs/gofoot/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	initDir    string
	initModule string
	initAuthor string
)

func init() {
	initCmd.Flags().StringVar(&initDir, "dir", ".", "Parent directory to create the project in (created if missing)")
	initCmd.Flags().StringVar(&initModule, "module", "", "Module path for the generated go.mod (default: <module_prefix>/<name> or lowercase name)")
	initCmd.Flags().StringVar(&initAuthor, "author", "", "Author for the manifest and license stub (default: 'author' config key)")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init <ProjectName>",
	Short: "Create a new game project",
	Long: `Create a new gofoot game project: a directory named after the project
with a runnable starter game, a gofoot.yaml manifest, a license stub, and
empty Graphics/ and Sounds/ asset directories.

The target directory must not already exist; a failed run leaves nothing
behind.

When run without a project name, prompts for the project details
interactively.

Examples:
  gofoot init MyGame
  gofoot init MyGame --dir ~/games --module github.com/me/mygame
  gofoot init`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		author := initAuthor
		if author == "" {
			author = config.Get(config.KeyAuthor)
		}

		var data *scaffold.Data
		if len(args) == 1 {
			name := args[0]
			if err := scaffold.ValidateName(name); err != nil {
				return err
			}
			module := initModule
			if module == "" {
				if prefix := config.Get(config.KeyModulePrefix); prefix != "" {
					module = prefix + "/" + strings.ToLower(name)
				}
			}
			data = scaffold.NewData(name, module, author)
		} else {
			var err error
			data, err = scaffold.RunInteractive(os.Stdin, os.Stdout, &scaffold.Data{
				Module: initModule,
				Author: author,
			})
			if err != nil {
				return err
			}
		}

		if err := os.MkdirAll(initDir, 0755); err != nil {
			return fmt.Errorf("creating parent directory %s: %w", initDir, err)
		}

		outDir := filepath.Join(initDir, data.Name)

		result, err := scaffold.Generate(data, outDir)
		if err != nil {
			return err
		}

		printResult(result)

		fmt.Println("\nNext steps:")
		fmt.Printf("  1. cd %s\n", result.OutputDir)
		fmt.Println("  2. Run 'go mod tidy' to fetch dependencies")
		fmt.Println("  3. Run 'go run .' and move the player with w/a/s/d")
		return nil
	},
}

func printResult(result *scaffold.Result) {
	fmt.Printf("Created project at %s/\n", result.OutputDir)
	for _, f := range result.Files {
		fmt.Printf("  %s\n", f)
	}
	for _, d := range result.Dirs {
		fmt.Printf("  %s\n", d)
	}
	if len(result.Warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, w := range result.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
}
