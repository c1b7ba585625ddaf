package cmd

import (
	"fmt"

	"github.com/kirksw/ezorg/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ezorg v%s\n", version.Value)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
