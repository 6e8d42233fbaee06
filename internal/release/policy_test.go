package release

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lexget/lexidict/internal/logging"
	"github.com/lexget/lexidict/internal/model"
)

// fakeFeed implements Feed with canned responses.
type fakeFeed struct {
	latest   *model.Release
	versions map[string]struct{}
	info     model.UpdateInfo
}

func (f *fakeFeed) LatestRelease() *model.Release    { return f.latest }
func (f *fakeFeed) AllVersions() map[string]struct{} { return f.versions }
func (f *fakeFeed) UpdateInfo() model.UpdateInfo     { return f.info }

func TestIsDiscontinued(t *testing.T) {
	feed := &fakeFeed{versions: map[string]struct{}{"1.0.0": {}, "2.0.0": {}}}
	policy := NewPolicy(feed, logging.Nop().Update)

	assert.False(t, policy.IsDiscontinued("1.0.0"))
	assert.False(t, policy.IsDiscontinued("2.0.0"))
	assert.True(t, policy.IsDiscontinued("0.9.0"))
}

func TestIsDiscontinued_EmptyVersionSet(t *testing.T) {
	// A feed failure yields the empty set, which makes every version look
	// discontinued. The forced-update path fails soft downstream.
	feed := &fakeFeed{versions: map[string]struct{}{}}
	policy := NewPolicy(feed, logging.Nop().Update)

	assert.True(t, policy.IsDiscontinued("1.0.0"))
}

func TestHasUpdate(t *testing.T) {
	release := &model.Release{TagName: "v2.0.0"}

	tests := []struct {
		name     string
		current  string
		info     model.UpdateInfo
		expected bool
	}{
		{
			name:     "newer version with artifact",
			current:  "1.0.0",
			info:     model.UpdateInfo{Release: release, AssetURL: "http://x/App.exe", Version: "2.0.0"},
			expected: true,
		},
		{
			name:     "same version",
			current:  "2.0.0",
			info:     model.UpdateInfo{Release: release, AssetURL: "http://x/App.exe", Version: "2.0.0"},
			expected: false,
		},
		{
			name:     "older feed version",
			current:  "3.0.0",
			info:     model.UpdateInfo{Release: release, AssetURL: "http://x/App.exe", Version: "2.0.0"},
			expected: false,
		},
		{
			name:     "newer version without artifact",
			current:  "1.0.0",
			info:     model.UpdateInfo{Release: release, Version: "2.0.0"},
			expected: false,
		},
		{
			name:     "no release data",
			current:  "1.0.0",
			info:     model.UpdateInfo{},
			expected: false,
		},
		{
			// Plain string ordering: "1.0.10" < "1.0.9". Pinned, not fixed.
			name:     "lexicographic ordering of multi-digit patch",
			current:  "1.0.9",
			info:     model.UpdateInfo{Release: release, AssetURL: "http://x/App.exe", Version: "1.0.10"},
			expected: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			policy := NewPolicy(&fakeFeed{info: test.info}, logging.Nop().Update)

			info, ok := policy.HasUpdate(test.current)
			assert.Equal(t, test.expected, ok)
			assert.Equal(t, test.info, info)
		})
	}
}

func TestHasUpdate_LexicographicContract(t *testing.T) {
	// has_update(a, b) must equal (b > a) for any version strings whenever an
	// artifact resolved.
	pairs := []struct {
		current, latest string
	}{
		{"1.0.0", "2.0.0"},
		{"2.0.0", "1.0.0"},
		{"1.0.0", "1.0.0"},
		{"1.0.9", "1.0.10"},
		{"0.9", "0.10"},
		{"abc", "abd"},
	}

	for _, pair := range pairs {
		info := model.UpdateInfo{
			Release:  &model.Release{TagName: "v" + pair.latest},
			AssetURL: "http://x/App.exe",
			Version:  pair.latest,
		}
		policy := NewPolicy(&fakeFeed{info: info}, logging.Nop().Update)

		_, ok := policy.HasUpdate(pair.current)
		assert.Equalf(t, pair.latest > pair.current, ok, "current=%q latest=%q", pair.current, pair.latest)
	}
}
