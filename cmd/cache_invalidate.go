package cmd

import (
	"fmt"

	"github.com/kirksw/ezorg/internal/utils"
	"github.com/spf13/cobra"
)

var invalidateCacheCmd = &cobra.Command{
	Use:   "invalidate [org]",
	Short: "Invalidate cache (all or specific organization)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInvalidateCache,
}

func init() {
	cacheCmd.AddCommand(invalidateCacheCmd)
}

func runInvalidateCache(cmd *cobra.Command, args []string) error {
	_, c, err := loadConfigAndCache()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(args) == 1 {
		org, err := utils.ParseOrgName(args[0])
		if err != nil {
			return err
		}
		if err := c.Invalidate(org); err != nil {
			return fmt.Errorf("failed to invalidate cache for %s: %w", org, err)
		}
		fmt.Fprintf(out, "✓ Cache invalidated for %s\n", org)
		return nil
	}

	orgs, err := c.ListAll()
	if err != nil {
		return fmt.Errorf("failed to list organizations: %w", err)
	}

	if len(orgs) == 0 {
		fmt.Fprintln(out, "No cached organizations found")
		return nil
	}

	for _, org := range orgs {
		if err := c.Invalidate(org); err != nil {
			fmt.Fprintf(out, "Failed to invalidate %s: %v\n", org, err)
			continue
		}
		fmt.Fprintf(out, "✓ Cache invalidated for %s\n", org)
	}

	return nil
}
