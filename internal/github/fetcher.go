package github

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/kirksw/ezorg/internal/version"
)

// Fetcher performs a GET against url and returns the decoded JSON body.
// Objects decode to map[string]any and arrays to []any.
type Fetcher interface {
	GetJSON(url string) (any, error)
}

// FetcherFunc adapts a plain function to the Fetcher interface.
type FetcherFunc func(url string) (any, error)

func (f FetcherFunc) GetJSON(url string) (any, error) { return f(url) }

const defaultTimeout = 30 * time.Second

// maxBodyErrorBytes bounds how much of an error response is kept in HTTPError.
const maxBodyErrorBytes = 4096

// HTTPFetcher is the production Fetcher backed by net/http.
type HTTPFetcher struct {
	token  string
	client *http.Client
	logger *slog.Logger
}

func NewHTTPFetcher(token string, timeout time.Duration, logger *slog.Logger) *HTTPFetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &HTTPFetcher{
		token: token,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (f *HTTPFetcher) GetJSON(url string) (any, error) {
	req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	f.setHeaders(req)

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	f.logger.Debug("fetched", "url", url, "status", resp.StatusCode, "elapsed", time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyErrorBytes))
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: url, Body: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", url, err)
	}

	// Unmarshal rejects trailing data after the first JSON value.
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode response from %s: %w", url, err)
	}

	return payload, nil
}

func (f *HTTPFetcher) setHeaders(req *http.Request) {
	if f.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("token %s", f.token))
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", version.UserAgent())
}
