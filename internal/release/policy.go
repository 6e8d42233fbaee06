package release

import (
	"github.com/charmbracelet/log"

	"github.com/lexget/lexidict/internal/model"
)

// Policy compares the running version against the feed to decide between
// "update available", "no update", and "current version withdrawn".
type Policy struct {
	feed   Feed
	logger *log.Logger
}

// NewPolicy creates a version policy over the given feed.
func NewPolicy(feed Feed, logger *log.Logger) *Policy {
	return &Policy{feed: feed, logger: logger}
}

// IsDiscontinued reports whether current is absent from the feed's version
// set. A feed failure yields an empty set, so a transient network error
// makes every version look discontinued; callers must treat discontinuation
// as "force the update flow" and fail soft when no artifact resolves.
func (p *Policy) IsDiscontinued(current string) bool {
	p.logger.Info("verifying version support", "version", current)

	if _, ok := p.feed.AllVersions()[current]; ok {
		p.logger.Info("version is still supported", "version", current)
		return false
	}
	p.logger.Warn("version is discontinued", "version", current)
	return true
}

// HasUpdate reports whether the feed's latest version is strictly newer than
// current and an artifact URL resolved. The comparison is plain string
// ordering: "1.0.10" sorts below "1.0.9", so release tags must be kept
// lexicographically consistent with upgrade order.
func (p *Policy) HasUpdate(current string) (model.UpdateInfo, bool) {
	info := p.feed.UpdateInfo()
	if info.AssetURL == "" {
		p.logger.Warn("no downloadable update found")
		return info, false
	}

	if info.Version > current {
		p.logger.Info("update available", "current", current, "latest", info.Version)
		return info, true
	}

	p.logger.Info("application is up to date", "version", current)
	return info, false
}
