package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DefaultAPIURL   = "https://api.github.com"
	DefaultTimeout  = 30 * time.Second
	DefaultCacheDir = "~/.cache/ezorg"
	DefaultCacheTTL = 24 * time.Hour
)

type Config struct {
	Organizations OrganizationConfig `toml:"organizations"`
	GitHub        GitHubConfig       `toml:"github"`
	Filter        FilterConfig       `toml:"filter"`
	Cache         CacheConfig        `toml:"cache"`
}

type OrganizationConfig struct {
	Orgs []string `toml:"orgs"`
}

type GitHubConfig struct {
	Token   string `toml:"token"`
	APIURL  string `toml:"api_url"`
	Timeout string `toml:"timeout"`
}

type FilterConfig struct {
	License string `toml:"license"`
}

type CacheConfig struct {
	Dir string `toml:"dir"`
	TTL string `toml:"ttl"`
}

// LoadEnv reads KEY=value pairs from path into the process environment.
// Variables that are already set are left alone and a missing file is ignored.
func LoadEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func Load(path string) (*Config, error) {
	configPath, err := FindConfigPath(path)
	if err != nil {
		return &Config{}, nil
	}

	return LoadFile(configPath)
}

func FindConfigPath(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	configPaths := []string{
		"./config.toml",
		filepath.Join(homeDir, ".config", "ezorg", "config.toml"),
		filepath.Join(homeDir, ".ezorg.toml"),
	}

	for _, p := range configPaths {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("no config file found")
}

func LoadFile(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the duration fields so bad values fail at load time.
func (c *Config) Validate() error {
	if c.GitHub.Timeout != "" {
		if _, err := time.ParseDuration(c.GitHub.Timeout); err != nil {
			return fmt.Errorf("invalid github.timeout %q: %w", c.GitHub.Timeout, err)
		}
	}
	if c.Cache.TTL != "" {
		if _, err := time.ParseDuration(c.Cache.TTL); err != nil {
			return fmt.Errorf("invalid cache.ttl %q: %w", c.Cache.TTL, err)
		}
	}
	return nil
}

func (c *Config) GetOrganizations() []string {
	return c.Organizations.Orgs
}

func (c *Config) GetAPIURL() string {
	if c.GitHub.APIURL == "" {
		return DefaultAPIURL
	}
	return strings.TrimSuffix(c.GitHub.APIURL, "/")
}

func (c *Config) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.GitHub.Timeout)
	if err != nil || d <= 0 {
		return DefaultTimeout
	}
	return d
}

func (c *Config) GetCacheTTL() time.Duration {
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil || d <= 0 {
		return DefaultCacheTTL
	}
	return d
}

func (c *Config) GetCacheDir() string {
	dir := c.Cache.Dir
	if dir == "" {
		dir = DefaultCacheDir
	}
	return expandHome(dir)
}

func (c *Config) GetDefaultLicense() string {
	return strings.TrimSpace(c.Filter.License)
}

var (
	ghTokenCache   string
	ghTokenCached  bool
	ghTokenCacheMu sync.RWMutex
)

func getGitHubCLIAuthToken() (string, error) {
	ghTokenCacheMu.RLock()
	if ghTokenCached {
		token := ghTokenCache
		ghTokenCacheMu.RUnlock()
		return token, nil
	}
	ghTokenCacheMu.RUnlock()

	cmd := exec.Command("gh", "auth", "token")
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}

	token := strings.TrimSpace(string(output))

	ghTokenCacheMu.Lock()
	ghTokenCache = token
	ghTokenCached = true
	ghTokenCacheMu.Unlock()

	return token, nil
}

// GetGitHubToken prefers the config file, then the gh CLI, then GITHUB_TOKEN.
// An empty token is valid: the public endpoints work unauthenticated.
func (c *Config) GetGitHubToken() string {
	if c.GitHub.Token != "" {
		return c.GitHub.Token
	}

	token, err := getGitHubCLIAuthToken()
	if err == nil && token != "" {
		return token
	}

	return os.Getenv("GITHUB_TOKEN")
}

func expandHome(dir string) string {
	if strings.HasPrefix(dir, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, dir[2:])
		}
	}
	return dir
}
