package update

import (
	"context"
	"fmt"
	"os"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// Client implements ReleaseClient using the real GitHub API
type Client struct {
	client *github.Client
}

var (
	ErrGitHubTokenNotFound = fmt.Errorf("GITHUB_TOKEN or GH_TOKEN environment variable not found")
)

// NewClient creates a new GitHub API client with token auth
func NewClient(token string) *Client {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)

	return &Client{
		client: github.NewClient(tc),
	}
}

// NewClientFromEnv creates a GitHub client using the token from environment variables
func NewClientFromEnv() (*Client, error) {
	token := os.Getenv("GH_TOKEN")
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	if token == "" {
		return nil, ErrGitHubTokenNotFound
	}

	return NewClient(token), nil
}

// NewClientWithoutAuth creates a GitHub client without authentication.
// Sufficient for release lookups against public repositories.
func NewClientWithoutAuth() *Client {
	return &Client{
		client: github.NewClient(nil),
	}
}

func (c *Client) GetLatestRelease(ctx context.Context, owner, repo string) (*Release, error) {
	release, _, err := c.client.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest release: %w", err)
	}

	converted := &Release{
		TagName: release.GetTagName(),
		Name:    release.GetName(),
		HTMLURL: release.GetHTMLURL(),
	}
	if release.PublishedAt != nil {
		converted.PublishedAt = release.PublishedAt.Time
	}

	return converted, nil
}
