package update

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

const (
	defaultOwner = "jakoblorz"
	defaultRepo  = "phxforge"
)

// Check is the result of comparing the running build against the latest
// published release.
type Check struct {
	CurrentVersion string
	LatestVersion  string
	URL            string
	Outdated       bool
}

// CheckLatest fetches the latest release and compares it against the running
// version. Development builds ("dev") are never reported as outdated.
func CheckLatest(ctx context.Context, client ReleaseClient, currentVersion string) (*Check, error) {
	release, err := client.GetLatestRelease(ctx, defaultOwner, defaultRepo)
	if err != nil {
		return nil, fmt.Errorf("update check failed: %w", err)
	}

	latest := strings.TrimPrefix(release.TagName, "v")

	check := &Check{
		CurrentVersion: currentVersion,
		LatestVersion:  latest,
		URL:            release.HTMLURL,
	}

	if currentVersion == "dev" {
		return check, nil
	}

	if semver.Compare("v"+latest, "v"+currentVersion) > 0 {
		check.Outdated = true
	}

	return check, nil
}
