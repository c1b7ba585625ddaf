package cmd

import (
	"fmt"

	"github.com/kirksw/ezorg/internal/cache"
	"github.com/kirksw/ezorg/internal/config"
	"github.com/kirksw/ezorg/internal/ui"
	"github.com/spf13/cobra"
)

var reposCmd = &cobra.Command{
	Use:   "repos [org...]",
	Short: "List repository names for organization(s)",
	Long:  `List repository names in the order GitHub returns them. Without arguments the organizations from the config file are used.`,
	RunE:  runRepos,
}

var (
	licenseKey  string
	useCache    bool
	plainOutput bool
)

func init() {
	rootCmd.AddCommand(reposCmd)

	reposCmd.Flags().StringVarP(&licenseKey, "license", "l", "", "only list repos with this license key (e.g. apache-2.0)")
	reposCmd.Flags().BoolVar(&useCache, "cached", false, "serve from the on-disk cache, refreshing it when missing or expired")
	reposCmd.Flags().BoolVar(&plainOutput, "plain", false, "print bare names, one per line")
}

func runRepos(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	orgs, err := orgsFromArgs(cfg, args)
	if err != nil {
		return err
	}

	license := licenseKey
	if !cmd.Flags().Changed("license") {
		license = cfg.GetDefaultLicense()
	}

	var c *cache.OrgCache
	if useCache {
		c = newCache(cfg)
	}

	out := cmd.OutOrStdout()
	for _, org := range orgs {
		var names []string
		if c != nil {
			names, err = cachedRepoNames(cfg, c, org, license)
		} else {
			names, err = newOrgClient(cfg, org).PublicRepos(license)
		}
		if err != nil {
			return fmt.Errorf("failed to list repos for %s: %w", org, err)
		}

		fmt.Fprint(out, ui.RenderRepoNames(org, license, names, plainOutput))
	}

	return nil
}

func cachedRepoNames(cfg *config.Config, c *cache.OrgCache, org, license string) ([]string, error) {
	cached, err := c.Get(org)
	if err == nil {
		logger.Debug("cache hit", "org", org, "repos", len(cached.Repos))
		return repoNames(cached.Repos, license), nil
	}

	logger.Debug("cache miss", "org", org, "reason", err)
	repos, err := fetchRepos(newOrgClient(cfg, org))
	if err != nil {
		return nil, err
	}
	if err := c.Set(org, repos); err != nil {
		logger.Warn("failed to update cache", "org", org, "error", err)
	}
	return repoNames(repos, license), nil
}
