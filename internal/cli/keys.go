package cli

import (
	"fmt"

	"github.com/gofoot-labs/gofoot"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(keysCmd)
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the key names accepted by IsKeyDown",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range gofoot.KeyNames() {
			fmt.Println(name)
		}
		return nil
	},
}
