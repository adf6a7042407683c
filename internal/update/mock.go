package update

import (
	"context"
	"fmt"
)

// MockClient implements ReleaseClient for testing
type MockClient struct {
	releases map[string]*Release
}

// NewMockClient creates a new MockClient
func NewMockClient() *MockClient {
	return &MockClient{
		releases: make(map[string]*Release),
	}
}

// SetLatestRelease configures the release returned for owner/repo.
func (m *MockClient) SetLatestRelease(owner, repo string, release *Release) {
	m.releases[owner+"/"+repo] = release
}

func (m *MockClient) GetLatestRelease(ctx context.Context, owner, repo string) (*Release, error) {
	release, ok := m.releases[owner+"/"+repo]
	if !ok {
		return nil, fmt.Errorf("no release found for %s/%s", owner, repo)
	}
	return release, nil
}
