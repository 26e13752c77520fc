package cli

import (
	"fmt"

	"github.com/gofoot-labs/gofoot/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage gofoot configuration",
	Long: `Manage the gofoot configuration stored at ` + config.FilePath() + `.

Known keys:
` + describeKeys(),
}

func describeKeys() string {
	var out string
	for _, k := range config.KnownKeys() {
		out += fmt.Sprintf("  %-15s %s\n", k, config.Describe(k))
	}
	return out
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		if !config.IsKnown(key) {
			return fmt.Errorf("unknown config key %q (known keys: %v)", key, config.KnownKeys())
		}
		config.Load()
		fmt.Println(config.Get(key))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		if err := config.Set(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Set %s = %s\n", args[0], args[1])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		for _, k := range config.KnownKeys() {
			fmt.Printf("%s = %s\n", k, config.Get(k))
		}
		return nil
	},
}
