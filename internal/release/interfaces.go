package release

import (
	"github.com/lexget/lexidict/internal/model"
)

// Feed defines the release feed queries used by the version policy and the
// update flow.
type Feed interface {
	LatestRelease() *model.Release
	AllVersions() map[string]struct{}
	UpdateInfo() model.UpdateInfo
}
