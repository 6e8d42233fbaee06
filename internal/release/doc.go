package release

// Package release queries the hosted release feed and decides upgrade
// eligibility: latest release, the full published version set, and whether
// the running version is discontinued.
