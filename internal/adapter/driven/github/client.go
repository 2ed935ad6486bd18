// Package github implements the RepoMetadataClient port using the go-github library.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	gh "github.com/google/go-github/v82/github"
	"github.com/gregjones/httpcache"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"

	"github.com/ericfisherdev/portfolio-api/internal/domain/model"
	"github.com/ericfisherdev/portfolio-api/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.RepoMetadataClient = (*Client)(nil)

// Client implements the driven.RepoMetadataClient port using the go-github library.
type Client struct {
	gh *gh.Client
}

// NewClient creates a new GitHub API client with the following transport stack:
//  1. httpcache (ETag-based conditional request caching)
//  2. go-github-ratelimit (secondary rate limit middleware, sleeps on 429)
//  3. go-github (GitHub REST API client with PAT auth)
func NewClient(token string) *Client {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	rateLimitClient := github_ratelimit.NewClient(cacheTransport)
	client := gh.NewClient(rateLimitClient).WithAuthToken(token)

	return &Client{gh: client}
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and base URL.
// This constructor is intended for testing, allowing injection of an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string) (*Client, error) {
	client := gh.NewClient(httpClient)

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	client.BaseURL = u

	return &Client{gh: client}, nil
}

// FetchRepo retrieves the star count and last push time for a repository.
func (c *Client) FetchRepo(ctx context.Context, owner, repo string) (*model.RepoMetadata, error) {
	repository, _, err := c.gh.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("fetching repository %s/%s: %w", owner, repo, err)
	}

	meta := &model.RepoMetadata{
		Owner: owner,
		Name:  repo,
		Stars: repository.GetStargazersCount(),
	}
	if pushed := repository.GetPushedAt(); !pushed.IsZero() {
		meta.LastPushedAt = pushed.Time.UTC()
	}

	return meta, nil
}
