package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirksw/ezorg/internal/testutil"
)

func TestCacheListCommand(t *testing.T) {
	api := testutil.NewGitHubAPI(t, testutil.GoogleFixture())
	dir := t.TempDir()

	out, err := runCLIInDir(t, dir, api, "", "cache", "list")
	require.NoError(t, err)
	assert.Equal(t, "No cached organizations found\n", out)

	_, err = runCLIInDir(t, dir, api, "", "cache", "refresh", "google")
	require.NoError(t, err)

	out, err = runCLIInDir(t, dir, api, "", "cache", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Cached organizations:")
	assert.Contains(t, out, "google (9 repos, cached: ")
	assert.NotContains(t, out, "expired")
}

func TestCacheSearchCommand(t *testing.T) {
	api := testutil.NewGitHubAPI(t, testutil.GoogleFixture())
	dir := t.TempDir()

	_, err := runCLIInDir(t, dir, api, "", "cache", "refresh", "google")
	require.NoError(t, err)

	out, err := runCLIInDir(t, dir, api, "", "cache", "search", "dagger")
	require.NoError(t, err)
	assert.Contains(t, out, "Found 1 repositories matching 'dagger'")
	assert.Contains(t, out, "google/dagger")
	assert.Contains(t, out, "[apache-2.0]")

	// Descriptions match case-insensitively.
	out, err = runCLIInDir(t, dir, api, "", "cache", "search", "JAVASCRIPT")
	require.NoError(t, err)
	assert.Contains(t, out, "google/traceur-compiler")

	out, err = runCLIInDir(t, dir, api, "", "cache", "search", "no-such-repo")
	require.NoError(t, err)
	assert.Equal(t, "No repositories found matching: no-such-repo\n", out)

	// Served from disk; the repo list was fetched only by the refresh.
	assert.Equal(t, 1, api.Hits("/orgs/google/repos"))
}

func TestCacheInvalidateCommand(t *testing.T) {
	api := testutil.NewGitHubAPI(t, testutil.GoogleFixture())
	dir := t.TempDir()

	_, err := runCLIInDir(t, dir, api, "", "cache", "refresh", "google")
	require.NoError(t, err)

	out, err := runCLIInDir(t, dir, api, "", "cache", "invalidate", "google")
	require.NoError(t, err)
	assert.Equal(t, "✓ Cache invalidated for google\n", out)

	out, err = runCLIInDir(t, dir, api, "", "cache", "list")
	require.NoError(t, err)
	assert.Equal(t, "No cached organizations found\n", out)

	out, err = runCLIInDir(t, dir, api, "", "cache", "invalidate")
	require.NoError(t, err)
	assert.Equal(t, "No cached organizations found\n", out)
}

func TestCacheInvalidateAll(t *testing.T) {
	api := testutil.NewGitHubAPI(t, testutil.GoogleFixture())
	dir := t.TempDir()

	_, err := runCLIInDir(t, dir, api, "", "cache", "refresh", "google")
	require.NoError(t, err)

	out, err := runCLIInDir(t, dir, api, "", "cache", "invalidate")
	require.NoError(t, err)
	assert.Equal(t, "✓ Cache invalidated for google\n", out)

	// The next refresh has to fetch again.
	out, err = runCLIInDir(t, dir, api, "", "cache", "refresh", "google")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "Cached 9 repositories from google"), out)
	assert.Equal(t, 2, api.Hits("/orgs/google/repos"))
}

func TestCacheInvalidateRejectsBadOrg(t *testing.T) {
	api := testutil.NewGitHubAPI(t)

	_, err := runCLI(t, api, "", "cache", "invalidate", "../etc")
	require.Error(t, err)
}
