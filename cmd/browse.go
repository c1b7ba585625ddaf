package cmd

import (
	"fmt"

	"github.com/kirksw/ezorg/internal/cache"
	"github.com/kirksw/ezorg/internal/github"
	"github.com/kirksw/ezorg/internal/ui"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse [org...]",
	Short: "Interactively browse cached repositories",
	RunE:  runBrowse,
}

var browseLicense string

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().StringVarP(&browseLicense, "license", "l", "", "only offer repos with this license key")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, c, err := loadConfigAndCache()
	if err != nil {
		return err
	}

	// With no args and no configured orgs, browse whatever is already cached.
	var orgs []string
	if len(args) > 0 || len(cfg.GetOrganizations()) > 0 {
		orgs, err = orgsFromArgs(cfg, args)
		if err != nil {
			return err
		}
	}

	for _, org := range orgs {
		client := newOrgClient(cfg, org)
		if _, _, err := refreshOrg(c, org, false, func() ([]github.Repo, error) {
			return fetchRepos(client)
		}); err != nil {
			logger.Warn("automatic cache refresh failed", "org", org, "error", err)
		}
	}

	repos, err := browseRepos(c, orgs)
	if err != nil {
		return err
	}

	if len(repos) == 0 {
		return fmt.Errorf("no cached repositories; run `ezorg cache refresh <org>` first")
	}

	license := browseLicense
	if !cmd.Flags().Changed("license") {
		license = cfg.GetDefaultLicense()
	}

	result, err := ui.RunBrowse(repos, license)
	if err != nil {
		return err
	}
	if result == nil || result.Cancelled || result.Repo == nil {
		return nil
	}

	url := result.Repo.HTMLURL
	if url == "" {
		url = fmt.Sprintf("https://github.com/%s", result.Repo.FullName)
	}
	fmt.Fprintln(cmd.OutOrStdout(), url)
	return nil
}

// browseRepos collects the cached repos of orgs, stale entries included. With
// no orgs it returns every fresh cached org.
func browseRepos(c *cache.OrgCache, orgs []string) ([]github.Repo, error) {
	if len(orgs) == 0 {
		repos, err := c.GetAllRepos()
		if err != nil {
			return nil, fmt.Errorf("failed to load cached repos: %w", err)
		}
		return repos, nil
	}

	var repos []github.Repo
	for _, org := range orgs {
		cached, err := c.GetStale(org)
		if err != nil {
			continue
		}
		repos = append(repos, cached.Repos...)
	}
	return repos, nil
}
