package release

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lexget/lexidict/internal/model"
)

const (
	defaultTimeout = 10 * time.Second
	acceptHeader   = "application/vnd.github.v3+json"
)

// Client fetches release metadata from the feed endpoint. Transport errors
// never propagate: they are logged and surfaced as the empty value of each
// query so a flaky network cannot crash the startup sequence.
type Client struct {
	url     string
	appName string // executable artifacts are named "<appName>..."
	suffix  string // platform executable suffix matched against asset names
	http    *http.Client
	logger  *log.Logger
}

// NewClient creates a feed client for the given endpoint. An asset is a
// downloadable artifact when its name starts with appName and ends in the
// platform executable suffix; the prefix keeps sidecar assets (checksums,
// archives) from matching on platforms whose suffix is empty.
func NewClient(feedURL, appName, suffix string, logger *log.Logger) *Client {
	return &Client{
		url:     feedURL,
		appName: appName,
		suffix:  suffix,
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  logger,
	}
}

func (c *Client) fetchReleases() ([]model.Release, error) {
	req, err := http.NewRequest(http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request release feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("release feed returned %s", resp.Status)
	}

	var releases []model.Release
	if err := json.NewDecoder(resp.Body).Decode(&releases); err != nil {
		return nil, fmt.Errorf("decode release feed: %w", err)
	}
	return releases, nil
}

// LatestRelease returns the first release in the feed (the feed is newest
// first) or nil when the feed is empty or unreachable.
func (c *Client) LatestRelease() *model.Release {
	c.logger.Info("fetching latest release")

	releases, err := c.fetchReleases()
	if err != nil {
		c.logger.Error("release feed request failed", "error", err)
		return nil
	}
	if len(releases) == 0 {
		return nil
	}
	return &releases[0]
}

// AllVersions returns the set of published versions, each tag stripped of a
// single leading "v". Any failure yields the empty set.
func (c *Client) AllVersions() map[string]struct{} {
	c.logger.Info("fetching all release versions")

	versions := map[string]struct{}{}
	releases, err := c.fetchReleases()
	if err != nil {
		c.logger.Error("release feed request failed", "error", err)
		return versions
	}
	for i := range releases {
		versions[releases[i].Version()] = struct{}{}
	}
	return versions
}

// UpdateInfo resolves the latest release together with the first asset that
// looks like the platform executable. AssetURL stays empty when no asset
// matches, which callers must treat as "no actionable update" even if a
// newer version nominally exists.
func (c *Client) UpdateInfo() model.UpdateInfo {
	c.logger.Info("retrieving update information")

	release := c.LatestRelease()
	if release == nil {
		c.logger.Warn("no release data available")
		return model.UpdateInfo{}
	}

	info := model.UpdateInfo{Release: release, Version: release.Version()}
	for _, asset := range release.Assets {
		if c.isExecutableArtifact(asset.Name) && asset.BrowserDownloadURL != "" {
			c.logger.Info("executable artifact found", "name", asset.Name, "url", asset.BrowserDownloadURL)
			info.AssetURL = asset.BrowserDownloadURL
			return info
		}
	}

	c.logger.Warn("no matching artifact in latest release", "app", c.appName, "suffix", c.suffix)
	return info
}

func (c *Client) isExecutableArtifact(name string) bool {
	return strings.HasPrefix(name, c.appName) && strings.HasSuffix(name, c.suffix)
}
