package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/fido"
	"github.com/spf13/afero"

	"github.com/kirksw/ezorg/internal/github"
)

const DefaultTTL = 24 * time.Hour

const (
	memorySize = 256
	memoryTTL  = 10 * time.Minute
)

type OrgCache struct {
	fs       afero.Fs
	cacheDir string
	ttl      time.Duration
	memory   *fido.Cache[string, memoryEntry]
}

type CacheMetadata struct {
	LastRefreshed time.Time     `json:"last_refreshed"`
	TTL           time.Duration `json:"ttl"`
	RepoCount     int           `json:"repo_count"`
}

// memoryEntry mirrors what is on disk for one org. A zero entry marks an
// invalidated org.
type memoryEntry struct {
	cached   github.CachedOrg
	metadata CacheMetadata
}

func (e memoryEntry) valid() bool { return e.cached.Org != "" }

// clone returns a copy of the cached org whose Repos slice callers may modify
// without touching the memory layer.
func (e memoryEntry) clone() *github.CachedOrg {
	cached := e.cached
	cached.Repos = append([]github.Repo(nil), e.cached.Repos...)
	return &cached
}

// New returns a cache rooted at dir on the host filesystem. If dir cannot be
// created the system temp dir is used instead.
func New(dir string) *OrgCache {
	fs := afero.NewOsFs()
	if err := fs.MkdirAll(dir, 0755); err != nil {
		dir = filepath.Join(os.TempDir(), "ezorg")
		_ = fs.MkdirAll(dir, 0755)
	}
	return NewWithFs(fs, dir)
}

func NewWithFs(fs afero.Fs, dir string) *OrgCache {
	return &OrgCache{
		fs:       fs,
		cacheDir: dir,
		ttl:      DefaultTTL,
		memory: fido.New[string, memoryEntry](
			fido.Size(memorySize),
			fido.TTL(memoryTTL),
		),
	}
}

func (c *OrgCache) SetTTL(ttl time.Duration) {
	if ttl > 0 {
		c.ttl = ttl
	}
}

func (c *OrgCache) TTL() time.Duration {
	return c.ttl
}

func (c *OrgCache) Dir() string {
	return c.cacheDir
}

// Get returns the cached repos for org, failing if they are missing or expired.
func (c *OrgCache) Get(org string) (*github.CachedOrg, error) {
	entry, err := c.load(org)
	if err != nil {
		return nil, err
	}

	if expired(entry.metadata) {
		return nil, fmt.Errorf("cache expired for org: %s", org)
	}

	return entry.clone(), nil
}

// GetStale returns the cached repos for org regardless of age.
func (c *OrgCache) GetStale(org string) (*github.CachedOrg, error) {
	entry, err := c.load(org)
	if err != nil {
		return nil, err
	}

	return entry.clone(), nil
}

// Set stores repos for org in the order given.
func (c *OrgCache) Set(org string, repos []github.Repo) error {
	now := time.Now()
	cached := github.CachedOrg{
		Org:      org,
		Repos:    append([]github.Repo(nil), repos...),
		CachedAt: now,
		TTL:      c.ttl.String(),
	}

	data, err := json.MarshalIndent(cached, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	if err := afero.WriteFile(c.fs, c.orgPath(org), data, 0644); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}

	metadata := CacheMetadata{
		LastRefreshed: now,
		TTL:           c.ttl,
		RepoCount:     len(repos),
	}

	metaData, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	if err := afero.WriteFile(c.fs, c.metadataPath(org), metaData, 0644); err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}

	c.memory.Set(org, memoryEntry{cached: cached, metadata: metadata})
	return nil
}

func (c *OrgCache) Refresh(org string, fetchRepos func() ([]github.Repo, error)) error {
	repos, err := fetchRepos()
	if err != nil {
		return fmt.Errorf("failed to fetch repos: %w", err)
	}

	return c.Set(org, repos)
}

func (c *OrgCache) Invalidate(org string) error {
	c.memory.Set(org, memoryEntry{})

	if err := c.fs.Remove(c.orgPath(org)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete cache: %w", err)
	}

	if err := c.fs.Remove(c.metadataPath(org)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete metadata: %w", err)
	}

	return nil
}

func (c *OrgCache) Search(pattern string) ([]github.Repo, error) {
	var allRepos []github.Repo

	orgs, err := c.ListAll()
	if err != nil {
		return nil, err
	}

	lowerPattern := strings.ToLower(pattern)
	for _, org := range orgs {
		cached, err := c.Get(org)
		if err != nil {
			continue
		}

		for _, repo := range cached.Repos {
			if strings.Contains(repo.FullName, pattern) ||
				strings.Contains(repo.Name, pattern) ||
				strings.Contains(strings.ToLower(repo.Description), lowerPattern) {
				allRepos = append(allRepos, repo)
			}
		}
	}

	return allRepos, nil
}

func (c *OrgCache) ListAll() ([]string, error) {
	var orgs []string

	entries, err := afero.ReadDir(c.fs, c.cacheDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		if strings.HasSuffix(entry.Name(), ".meta.json") {
			continue
		}

		org := strings.TrimSuffix(entry.Name(), ".json")
		orgs = append(orgs, org)
	}

	return orgs, nil
}

func (c *OrgCache) GetAllRepos() ([]github.Repo, error) {
	var allRepos []github.Repo
	seen := make(map[string]struct{})

	orgs, err := c.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list orgs: %w", err)
	}

	for _, org := range orgs {
		cached, err := c.Get(org)
		if err != nil {
			continue
		}
		for _, repo := range cached.Repos {
			key := repo.FullName
			if key == "" {
				key = org + "/" + repo.Name
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			allRepos = append(allRepos, repo)
		}
	}

	return allRepos, nil
}

func (c *OrgCache) IsExpired(org string) bool {
	entry, err := c.load(org)
	if err != nil {
		return true
	}
	return expired(entry.metadata)
}

// load returns the entry for org from memory, falling back to disk. A missing
// or unreadable metadata file yields zero metadata, which counts as expired.
func (c *OrgCache) load(org string) (memoryEntry, error) {
	if entry, ok := c.memory.Get(org); ok && entry.valid() {
		return entry, nil
	}

	data, err := afero.ReadFile(c.fs, c.orgPath(org))
	if err != nil {
		if os.IsNotExist(err) {
			return memoryEntry{}, fmt.Errorf("org not cached: %s", org)
		}
		return memoryEntry{}, fmt.Errorf("failed to read cache: %w", err)
	}

	var cached github.CachedOrg
	if err := json.Unmarshal(data, &cached); err != nil {
		return memoryEntry{}, fmt.Errorf("failed to unmarshal cache: %w", err)
	}

	entry := memoryEntry{cached: cached}
	if metaData, err := afero.ReadFile(c.fs, c.metadataPath(org)); err == nil {
		if err := json.Unmarshal(metaData, &entry.metadata); err != nil {
			entry.metadata = CacheMetadata{}
		}
	}

	if entry.metadata.LastRefreshed.IsZero() {
		return entry, nil
	}

	if entry.cached.Org == "" {
		entry.cached.Org = org
	}
	c.memory.Set(org, entry)
	return entry, nil
}

func expired(metadata CacheMetadata) bool {
	if metadata.LastRefreshed.IsZero() {
		return true
	}
	return time.Since(metadata.LastRefreshed) > metadata.TTL
}

func (c *OrgCache) orgPath(org string) string {
	return filepath.Join(c.cacheDir, fmt.Sprintf("%s.json", org))
}

func (c *OrgCache) metadataPath(org string) string {
	return filepath.Join(c.cacheDir, fmt.Sprintf("%s.meta.json", org))
}
