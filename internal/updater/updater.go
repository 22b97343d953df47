// Package updater checks GitHub releases for a newer version of the binary.
// It only checks; installation is left to the user's package manager.
package updater

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/mod/semver"

	"github.com/stellarview/apod/internal/httpclient"
)

const (
	defaultOwner      = "stellarview"
	defaultRepo       = "apod"
	defaultAPIBaseURL = "https://api.github.com"
	userAgent         = "apod-updater"
)

// Client checks GitHub releases.
type Client struct {
	Owner      string
	Repo       string
	APIBaseURL string
	HTTP       *httpclient.Client
}

// CheckResult describes update availability.
type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
	ReleaseURL      string
	ReleaseNotes    string
}

type githubRelease struct {
	TagName string `json:"tag_name"`
	Name    string `json:"name"`
	Body    string `json:"body"`
	HTMLURL string `json:"html_url"`
}

// NewClient creates a GitHub-backed updater client.
func NewClient() *Client {
	return &Client{
		Owner:      defaultOwner,
		Repo:       defaultRepo,
		APIBaseURL: defaultAPIBaseURL,
		HTTP:       httpclient.NewWithTimeout(60 * time.Second),
	}
}

// Check fetches the latest release and compares it against currentVersion.
// Non-semver versions (like the "dev" build default) always report an
// update as available when they differ from the latest tag.
func (c *Client) Check(ctx context.Context, currentVersion string) (CheckResult, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.APIBaseURL, c.Owner, c.Repo)

	var release githubRelease
	resp, err := c.HTTP.GetJSONCtx(ctx, url, &release,
		httpclient.WithHeader("Accept", "application/vnd.github+json"),
		httpclient.WithHeader("User-Agent", userAgent),
	)
	if err != nil {
		return CheckResult{}, fmt.Errorf("checking latest release: %w", err)
	}
	if resp.StatusCode != 200 {
		return CheckResult{}, fmt.Errorf("checking latest release: status %d (%s)",
			resp.StatusCode, httpclient.SummarizeBody(resp.Body))
	}
	if resp.JSONErr != nil {
		return CheckResult{}, fmt.Errorf("checking latest release: %w", resp.JSONErr)
	}
	if release.TagName == "" {
		return CheckResult{}, fmt.Errorf("checking latest release: response has no tag_name")
	}

	current := normalizeVersion(currentVersion)
	latest := normalizeVersion(release.TagName)

	available := false
	if cmp, comparable := compareVersions(current, latest); comparable {
		available = cmp < 0
	} else {
		available = current == "" || current != latest
	}

	return CheckResult{
		CurrentVersion:  currentVersion,
		LatestVersion:   release.TagName,
		UpdateAvailable: available,
		ReleaseURL:      release.HTMLURL,
		ReleaseNotes:    release.Body,
	}, nil
}

func normalizeVersion(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "v")
	return v
}

// compareVersions compares two normalized versions with semver. The second
// return value is false when either side is not valid semver.
func compareVersions(current, target string) (int, bool) {
	currentSemver := "v" + current
	targetSemver := "v" + target
	if !semver.IsValid(currentSemver) || !semver.IsValid(targetSemver) {
		return 0, false
	}
	return semver.Compare(currentSemver, targetSemver), true
}
