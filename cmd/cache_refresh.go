package cmd

import (
	"fmt"

	"github.com/kirksw/ezorg/internal/cache"
	"github.com/kirksw/ezorg/internal/github"
	"github.com/spf13/cobra"
)

var refreshCacheCmd = &cobra.Command{
	Use:   "refresh [org]",
	Short: "Refresh cache for organization(s)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRefreshCache,
}

func init() {
	cacheCmd.AddCommand(refreshCacheCmd)
}

func runRefreshCache(cmd *cobra.Command, args []string) error {
	cfg, c, err := loadConfigAndCache()
	if err != nil {
		return err
	}

	orgs, err := orgsFromArgs(cfg, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, org := range orgs {
		fmt.Fprintf(out, "Refreshing cache for %s...\n", org)

		client := newOrgClient(cfg, org)
		refreshed, total, err := refreshOrg(c, org, forceRefresh, func() ([]github.Repo, error) {
			return fetchRepos(client)
		})
		if err != nil {
			failed++
			fmt.Fprintf(out, "Failed to refresh %s: %v\n", org, err)
			continue
		}

		if refreshed {
			fmt.Fprintf(out, "✓ Cached %d repositories from %s\n", total, org)
		} else {
			fmt.Fprintf(out, "✓ %s is up to date (%d repositories)\n", org, total)
		}
	}

	if failed == len(orgs) {
		return fmt.Errorf("failed to refresh %d organization(s)", failed)
	}
	return nil
}

// refreshOrg refetches org unless its cache is still fresh and force is unset.
func refreshOrg(
	c *cache.OrgCache,
	org string,
	force bool,
	fetchAll func() ([]github.Repo, error),
) (refreshed bool, total int, err error) {
	if !force {
		if cached, err := c.Get(org); err == nil {
			return false, len(cached.Repos), nil
		}
	}

	repos, err := fetchAll()
	if err != nil {
		return false, 0, err
	}
	if err := c.Set(org, repos); err != nil {
		return false, 0, err
	}
	return true, len(repos), nil
}
