package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFindConfigPath(t *testing.T) {
	homeDir := t.TempDir()

	tests := []struct {
		name     string
		setup    func() string
		wantPath string
		wantErr  bool
	}{
		{
			name: "explicit path missing",
			setup: func() string {
				return filepath.Join(homeDir, "nope.toml")
			},
			wantPath: "",
			wantErr:  true,
		},
		{
			name: "find in config dir",
			setup: func() string {
				configDir := filepath.Join(homeDir, ".config", "ezorg")
				os.MkdirAll(configDir, 0755)
				configPath := filepath.Join(configDir, "config.toml")
				os.WriteFile(configPath, []byte("[organizations]\norgs = []"), 0644)
				return ""
			},
			wantPath: filepath.Join(homeDir, ".config", "ezorg", "config.toml"),
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", homeDir)
			t.Chdir(t.TempDir())

			explicitPath := tt.setup()

			path, err := FindConfigPath(explicitPath)
			if (err != nil) != tt.wantErr {
				t.Errorf("FindConfigPath() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && path != tt.wantPath {
				t.Errorf("FindConfigPath() = %v, want %v", path, tt.wantPath)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.toml")

	configContent := `[organizations]
orgs = ["google", "kubernetes"]

[github]
api_url = "https://ghe.example.com/api/v3/"
timeout = "5s"

[filter]
license = "apache-2.0"

[cache]
dir = "~/cache/ezorg"
ttl = "1h30m"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	orgs := cfg.GetOrganizations()
	if len(orgs) != 2 || orgs[0] != "google" || orgs[1] != "kubernetes" {
		t.Errorf("GetOrganizations() = %v, want [google kubernetes]", orgs)
	}

	if got := cfg.GetAPIURL(); got != "https://ghe.example.com/api/v3" {
		t.Errorf("GetAPIURL() = %v, want trailing slash trimmed", got)
	}

	if got := cfg.GetTimeout(); got != 5*time.Second {
		t.Errorf("GetTimeout() = %v, want 5s", got)
	}

	if got := cfg.GetDefaultLicense(); got != "apache-2.0" {
		t.Errorf("GetDefaultLicense() = %q, want apache-2.0", got)
	}

	if got := cfg.GetCacheTTL(); got != 90*time.Minute {
		t.Errorf("GetCacheTTL() = %v, want 1h30m", got)
	}

	homeDir, _ := os.UserHomeDir()
	if got, want := cfg.GetCacheDir(), filepath.Join(homeDir, "cache/ezorg"); got != want {
		t.Errorf("GetCacheDir() = %v, want %v", got, want)
	}
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}

	if cfg.GetAPIURL() != DefaultAPIURL {
		t.Errorf("GetAPIURL() = %v, want %v", cfg.GetAPIURL(), DefaultAPIURL)
	}
	if cfg.GetTimeout() != DefaultTimeout {
		t.Errorf("GetTimeout() = %v, want %v", cfg.GetTimeout(), DefaultTimeout)
	}
	if cfg.GetCacheTTL() != DefaultCacheTTL {
		t.Errorf("GetCacheTTL() = %v, want %v", cfg.GetCacheTTL(), DefaultCacheTTL)
	}
	if cfg.GetDefaultLicense() != "" {
		t.Errorf("GetDefaultLicense() = %q, want empty", cfg.GetDefaultLicense())
	}
}

func TestLoadFileRejectsBadDurations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "timeout", content: "[github]\ntimeout = \"soon\"\n"},
		{name: "ttl", content: "[cache]\nttl = \"forever\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}
			if _, err := LoadFile(path); err == nil {
				t.Error("LoadFile() error = nil, want error")
			}
		})
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("EZORG_TEST_TOKEN=from_dotenv\n"), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	t.Setenv("EZORG_TEST_TOKEN", "")
	os.Unsetenv("EZORG_TEST_TOKEN")

	if err := LoadEnv(envPath); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if got := os.Getenv("EZORG_TEST_TOKEN"); got != "from_dotenv" {
		t.Errorf("EZORG_TEST_TOKEN = %q, want from_dotenv", got)
	}

	if err := LoadEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("LoadEnv() on missing file error = %v, want nil", err)
	}
}

func TestGetGitHubToken(t *testing.T) {
	t.Cleanup(func() {
		ghTokenCache = ""
		ghTokenCached = false
	})

	t.Run("uses config token first", func(t *testing.T) {
		ghTokenCache = "gh_test_token_12345"
		ghTokenCached = true

		cfg := &Config{GitHub: GitHubConfig{Token: "config_token"}}
		token := cfg.GetGitHubToken()
		if token != "config_token" {
			t.Errorf("GetGitHubToken() = %v, want config_token", token)
		}
	})

	t.Run("uses gh cli token when config is empty", func(t *testing.T) {
		ghTokenCache = "gh_test_token_12345"
		ghTokenCached = true

		cfg := &Config{}
		token := cfg.GetGitHubToken()
		if token != "gh_test_token_12345" {
			t.Errorf("GetGitHubToken() = %v, want gh_test_token_12345", token)
		}
	})

	t.Run("falls back to env var when gh not available", func(t *testing.T) {
		ghTokenCache = ""
		ghTokenCached = false
		t.Setenv("PATH", "")
		t.Setenv("GITHUB_TOKEN", "env_token")

		cfg := &Config{}
		token := cfg.GetGitHubToken()
		if token != "env_token" {
			t.Errorf("GetGitHubToken() = %v, want env_token", token)
		}
	})

	t.Run("returns empty string when no token available", func(t *testing.T) {
		ghTokenCache = ""
		ghTokenCached = false
		t.Setenv("PATH", "")
		t.Setenv("GITHUB_TOKEN", "")

		cfg := &Config{}
		token := cfg.GetGitHubToken()
		if token != "" {
			t.Errorf("GetGitHubToken() = %v, want empty string", token)
		}
	})
}
