package cmd

import (
	"fmt"

	"github.com/kirksw/ezorg/internal/ui"
	"github.com/spf13/cobra"
)

var searchCacheCmd = &cobra.Command{
	Use:   "search <pattern>",
	Short: "Search cached repositories",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearchCache,
}

func init() {
	cacheCmd.AddCommand(searchCacheCmd)
}

func runSearchCache(cmd *cobra.Command, args []string) error {
	_, c, err := loadConfigAndCache()
	if err != nil {
		return err
	}

	pattern := args[0]
	repos, err := c.Search(pattern)
	if err != nil {
		return fmt.Errorf("failed to search cache: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(repos) == 0 {
		fmt.Fprintf(out, "No repositories found matching: %s\n", pattern)
		return nil
	}

	fmt.Fprintf(out, "Found %d repositories matching '%s':\n\n", len(repos), pattern)
	fmt.Fprint(out, ui.RenderRepoDetails(repos))

	return nil
}
