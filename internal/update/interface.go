package update

import (
	"context"
	"time"
)

// ReleaseClient provides the slice of the GitHub API the update check needs
type ReleaseClient interface {
	GetLatestRelease(ctx context.Context, owner, repo string) (*Release, error)
}

// Release represents a published GitHub release
type Release struct {
	TagName     string
	Name        string
	HTMLURL     string
	PublishedAt time.Time
}
