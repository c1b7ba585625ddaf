package cmd

import (
	"fmt"

	"github.com/kirksw/ezorg/internal/config"
	"github.com/kirksw/ezorg/internal/github"
	"github.com/kirksw/ezorg/internal/utils"
)

func newOrgClient(cfg *config.Config, org string) *github.OrgClient {
	fetcher := github.NewHTTPFetcher(cfg.GetGitHubToken(), cfg.GetTimeout(), logger)
	return github.NewOrgClient(org, fetcher,
		github.WithBaseURL(cfg.GetAPIURL()),
		github.WithLogger(logger),
	)
}

// fetchRepos lists the org's repositories as typed records. Records without
// a name are dropped, matching PublicRepos.
func fetchRepos(client *github.OrgClient) ([]github.Repo, error) {
	records, err := client.ReposPayload()
	if err != nil {
		return nil, err
	}

	repos := make([]github.Repo, 0, len(records))
	for _, record := range records {
		repo := github.RepoFromRecord(record)
		if repo.Name == "" {
			continue
		}
		if repo.FullName == "" {
			repo.FullName = client.Name() + "/" + repo.Name
		}
		repos = append(repos, repo)
	}
	return repos, nil
}

// repoNames applies the same license rule as github.HasLicense to cached repos.
func repoNames(repos []github.Repo, license string) []string {
	names := make([]string, 0, len(repos))
	for _, repo := range repos {
		if license != "" && repo.License != license {
			continue
		}
		names = append(names, repo.Name)
	}
	return names
}

// orgsFromArgs returns the validated orgs named on the command line, or the
// configured ones when none are given.
func orgsFromArgs(cfg *config.Config, args []string) ([]string, error) {
	orgs := args
	if len(orgs) == 0 {
		orgs = cfg.GetOrganizations()
	}
	if len(orgs) == 0 {
		return nil, fmt.Errorf("no organizations specified in config or as argument")
	}
	return utils.ParseOrgNames(orgs)
}
