// Package github fetches the challenge repository list from the published
// gist and raw README contents per repository.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/thomaswright/algorithm-arena/internal/config"
	"github.com/thomaswright/algorithm-arena/internal/source"
)

// challengeToken identifies challenge repositories among the org's repos.
const challengeToken = "weekly-challenge"

const (
	fetchAttempts  = 3
	requestTimeout = 20 * time.Second
)

// Client implements the github source strategy.
type Client struct {
	listURL     string
	org         string
	rawBaseURL  string
	repoBaseURL string
	client      *http.Client
	logger      *slog.Logger
}

var _ source.Source = (*Client)(nil)

// NewClient wires an HTTP client with the configured endpoints.
func NewClient(cfg config.SourceConfig, client *http.Client, log *slog.Logger) *Client {
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	return &Client{
		listURL:     cfg.ListURL,
		org:         cfg.Org,
		rawBaseURL:  strings.TrimSuffix(cfg.RawBaseURL, "/"),
		repoBaseURL: strings.TrimSuffix(cfg.RepoBaseURL, "/"),
		client:      client,
		logger:      log,
	}
}

// Name identifies the strategy inside the registry.
func (c *Client) Name() string {
	return "github"
}

// List returns the slugs of every challenge repository published in the
// gist, preserving gist order.
func (c *Client) List(ctx context.Context) ([]string, error) {
	body, err := c.get(ctx, c.listURL)
	if err != nil {
		return nil, fmt.Errorf("fetch repo list: %w", err)
	}

	var names []string
	if err := json.Unmarshal(body, &names); err != nil {
		return nil, fmt.Errorf("decode repo list: %w", err)
	}

	slugs := make([]string, 0, len(names))
	for _, name := range names {
		if strings.Contains(name, challengeToken) {
			slugs = append(slugs, name)
		}
	}
	return slugs, nil
}

// Readme fetches the raw README for one repository slug.
func (c *Client) Readme(ctx context.Context, slug string) (string, error) {
	url := fmt.Sprintf("%s/%s/%s/main/README.md", c.rawBaseURL, c.org, slug)
	body, err := c.get(ctx, url)
	if err != nil {
		return "", fmt.Errorf("fetch readme %s: %w", slug, err)
	}
	return string(body), nil
}

// RepoURL returns the canonical repository URL for a slug.
func (c *Client) RepoURL(slug string) string {
	return fmt.Sprintf("%s/%s/%s", c.repoBaseURL, c.org, slug)
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			req.Header.Set("User-Agent", "arenaboard/1.0")

			resp, err := c.client.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("unexpected status %s", resp.Status)
			}

			body, err = io.ReadAll(resp.Body)
			return err
		},
		retry.Attempts(fetchAttempts),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			if c.logger != nil {
				c.logger.Debug("retrying fetch", "url", url, "attempt", n+1, "error", err)
			}
		}),
	)
	if err != nil {
		return nil, err
	}
	return body, nil
}
