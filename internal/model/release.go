package model

import "strings"

// Asset is a downloadable file attached to a release.
type Asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// Release is one published version in the release feed. Instances are
// immutable once decoded; they live for one update-check cycle.
type Release struct {
	TagName string  `json:"tag_name"`
	Body    string  `json:"body"`
	Assets  []Asset `json:"assets"`
}

// Version returns the release tag with a single leading "v" stripped.
func (r *Release) Version() string {
	return strings.TrimPrefix(r.TagName, "v")
}

// UpdateInfo bundles the latest release with its resolved artifact URL and
// stripped version. AssetURL is empty when no artifact matched the platform
// executable suffix.
type UpdateInfo struct {
	Release  *Release
	AssetURL string
	Version  string
}
