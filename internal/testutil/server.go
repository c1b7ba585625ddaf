package testutil

import (
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

// NewTestServer starts an httptest.Server, or skips the test if binding a port is not permitted.
func NewTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()

	l, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Skipf("skip: cannot listen in sandbox: %v", err)
	}

	srv := &httptest.Server{
		Listener: l,
		Config:   &http.Server{Handler: handler},
	}
	srv.Start()
	t.Cleanup(srv.Close)
	return srv
}

// Fixture is one organization served by GitHubAPI.
type Fixture struct {
	Org          string
	OrgPayload   map[string]any
	ReposPayload []any
}

// GitHubAPI fakes the /orgs/:org and /orgs/:org/repos endpoints.
// An org payload without repos_url gets the fake's own repos URL filled in.
type GitHubAPI struct {
	URL string

	mu       sync.Mutex
	fixtures map[string]Fixture
	hits     map[string]int
}

func NewGitHubAPI(t *testing.T, fixtures ...Fixture) *GitHubAPI {
	t.Helper()

	api := &GitHubAPI{
		fixtures: make(map[string]Fixture, len(fixtures)),
		hits:     make(map[string]int),
	}
	for _, f := range fixtures {
		api.fixtures[f.Org] = f
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(api.count)
	r.GET("/orgs/:org", api.handleOrg)
	r.GET("/orgs/:org/repos", api.handleRepos)

	srv := NewTestServer(t, r)
	api.URL = srv.URL
	return api
}

// Hits returns how many requests were made to path.
func (a *GitHubAPI) Hits(path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hits[path]
}

func (a *GitHubAPI) count(c *gin.Context) {
	a.mu.Lock()
	a.hits[c.Request.URL.Path]++
	a.mu.Unlock()
	c.Next()
}

func (a *GitHubAPI) fixture(org string) (Fixture, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	f, ok := a.fixtures[org]
	return f, ok
}

func (a *GitHubAPI) handleOrg(c *gin.Context) {
	org := c.Param("org")
	f, ok := a.fixture(org)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
		return
	}

	payload := make(map[string]any, len(f.OrgPayload)+1)
	for k, v := range f.OrgPayload {
		payload[k] = v
	}
	if _, ok := payload["repos_url"]; !ok {
		payload["repos_url"] = a.URL + "/orgs/" + org + "/repos"
	}
	c.JSON(http.StatusOK, payload)
}

func (a *GitHubAPI) handleRepos(c *gin.Context) {
	f, ok := a.fixture(c.Param("org"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
		return
	}
	repos := f.ReposPayload
	if repos == nil {
		repos = []any{}
	}
	c.JSON(http.StatusOK, repos)
}
