package cmd

import (
	"fmt"
	"time"

	"github.com/kirksw/ezorg/internal/cache"
	"github.com/kirksw/ezorg/internal/config"
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage repository cache",
}

var (
	forceRefresh bool
	ttlString    string
)

func init() {
	rootCmd.AddCommand(cacheCmd)

	cacheCmd.PersistentFlags().BoolVar(&forceRefresh, "force", false, "force refresh even if not expired")
	cacheCmd.PersistentFlags().StringVar(&ttlString, "ttl", "", "set custom TTL (e.g., 24h, 1h30m)")
}

func newCache(cfg *config.Config) *cache.OrgCache {
	c := cache.New(cfg.GetCacheDir())
	c.SetTTL(cfg.GetCacheTTL())
	return c
}

func loadConfigAndCache() (*config.Config, *cache.OrgCache, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	c := newCache(cfg)

	if ttlString != "" {
		duration, err := time.ParseDuration(ttlString)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid TTL format: %w", err)
		}
		c.SetTTL(duration)
	}

	return cfg, c, nil
}
