// Package github lists an organization's repositories through the GitHub REST API.
package github

import (
	"fmt"
	"log/slog"
	"strings"
)

const DefaultBaseURL = "https://api.github.com"

// OrgClient reads metadata and repositories for a single organization.
// The org metadata and the repos URL derived from it are fetched once and
// kept for the life of the client. The repository list is fetched on every
// call. OrgClient is not safe for concurrent use.
type OrgClient struct {
	org     string
	fetcher Fetcher
	baseURL string
	logger  *slog.Logger

	orgPayload Object
	orgLoaded  bool
	reposURL   string
	urlLoaded  bool
}

type Option func(*OrgClient)

// WithBaseURL points the client at a different API root, e.g. GitHub
// Enterprise or a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *OrgClient) {
		if baseURL != "" {
			c.baseURL = strings.TrimSuffix(baseURL, "/")
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *OrgClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewOrgClient(org string, fetcher Fetcher, opts ...Option) *OrgClient {
	c := &OrgClient{
		org:     org,
		fetcher: fetcher,
		baseURL: DefaultBaseURL,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *OrgClient) Name() string {
	return c.org
}

// OrgURL is the metadata endpoint for the client's organization.
func (c *OrgClient) OrgURL() string {
	return fmt.Sprintf("%s/orgs/%s", c.baseURL, c.org)
}

// Org returns the organization metadata. The first successful call fetches
// it; later calls return the cached document without touching the network.
func (c *OrgClient) Org() (Object, error) {
	if c.orgLoaded {
		return c.orgPayload, nil
	}

	url := c.OrgURL()
	c.logger.Debug("fetching org metadata", "org", c.org, "url", url)

	payload, err := c.fetcher.GetJSON(url)
	if err != nil {
		return nil, err
	}

	obj, ok := asObject(payload)
	if !ok {
		return nil, fmt.Errorf("%w: org metadata for %s is %T, want object", ErrUnexpectedPayload, c.org, payload)
	}

	c.orgPayload = obj
	c.orgLoaded = true
	return obj, nil
}

// PublicReposURL returns the repos_url field of the org metadata.
func (c *OrgClient) PublicReposURL() (string, error) {
	if c.urlLoaded {
		return c.reposURL, nil
	}

	org, err := c.Org()
	if err != nil {
		return "", err
	}

	url, ok := org["repos_url"].(string)
	if !ok {
		return "", &FieldError{Field: "repos_url"}
	}

	c.reposURL = url
	c.urlLoaded = true
	return url, nil
}

// ReposPayload fetches the raw repository records. Each call fetches again.
func (c *OrgClient) ReposPayload() ([]Object, error) {
	url, err := c.PublicReposURL()
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetching repos", "org", c.org, "url", url)

	payload, err := c.fetcher.GetJSON(url)
	if err != nil {
		return nil, err
	}

	items, ok := payload.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: repos for %s is %T, want array", ErrUnexpectedPayload, c.org, payload)
	}

	records := make([]Object, 0, len(items))
	for _, item := range items {
		obj, ok := asObject(item)
		if !ok {
			continue
		}
		records = append(records, obj)
	}
	return records, nil
}

// PublicRepos returns repository names in the order the API lists them.
// When license is non-empty only repos whose license key matches are kept.
func (c *OrgClient) PublicRepos(license string) ([]string, error) {
	records, err := c.ReposPayload()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(records))
	for _, record := range records {
		name, ok := record["name"].(string)
		if !ok {
			continue
		}
		if license != "" && !HasLicense(record, license) {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// HasLicense reports whether repo carries a license object whose key equals
// licenseKey exactly. A record without license data does not match.
func HasLicense(repo Object, licenseKey string) bool {
	license, ok := asObject(repo["license"])
	if !ok {
		return false
	}
	key, ok := license["key"].(string)
	return ok && key == licenseKey
}

func asObject(v any) (Object, bool) {
	switch t := v.(type) {
	case Object:
		return t, true
	case map[string]any:
		return Object(t), true
	default:
		return nil, false
	}
}
