package config

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyDictionaryDir = "dictionary_directory"
	KeyFeedOwner     = "release_feed_owner"
	KeyFeedRepo      = "release_feed_repo"
	KeyFeedURL       = "release_feed_url"
	KeyWindowWidth   = "window_width"
	KeyWindowHeight  = "window_height"
)

// Default values
const (
	DefaultFeedOwner = "lexget"
	DefaultFeedRepo  = "lexidict"

	DefaultWindowWidth  = 640
	DefaultWindowHeight = 480

	feedURLFormat = "https://api.github.com/repos/%s/%s/releases"
)

// Settings manages application configuration
type Settings struct {
	app   fyne.App
	paths *Paths
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App, paths *Paths) *Settings {
	return &Settings{app: app, paths: paths}
}

// GetDictionaryDirectory returns the directory scanned for dictionaries
func (s *Settings) GetDictionaryDirectory() string {
	dir := s.app.Preferences().String(KeyDictionaryDir)
	if dir == "" {
		dir = s.paths.DictionariesDir()
		s.SetDictionaryDirectory(dir)
	}
	return dir
}

// SetDictionaryDirectory sets the directory scanned for dictionaries
func (s *Settings) SetDictionaryDirectory(dir string) {
	s.app.Preferences().SetString(KeyDictionaryDir, dir)
}

// GetFeedOwner returns the release feed owner
func (s *Settings) GetFeedOwner() string {
	return s.app.Preferences().StringWithFallback(KeyFeedOwner, DefaultFeedOwner)
}

// GetFeedRepo returns the release feed repository
func (s *Settings) GetFeedRepo() string {
	return s.app.Preferences().StringWithFallback(KeyFeedRepo, DefaultFeedRepo)
}

// GetFeedURL returns the release feed endpoint. An explicit URL preference
// overrides the owner/repo pair.
func (s *Settings) GetFeedURL() string {
	if url := s.app.Preferences().String(KeyFeedURL); url != "" {
		return url
	}
	return fmt.Sprintf(feedURLFormat, s.GetFeedOwner(), s.GetFeedRepo())
}

// SetFeedURL overrides the release feed endpoint
func (s *Settings) SetFeedURL(url string) {
	s.app.Preferences().SetString(KeyFeedURL, url)
}

// GetWindowSize returns the last saved window size
func (s *Settings) GetWindowSize() (width, height int) {
	width = s.app.Preferences().IntWithFallback(KeyWindowWidth, DefaultWindowWidth)
	height = s.app.Preferences().IntWithFallback(KeyWindowHeight, DefaultWindowHeight)
	return width, height
}

// SetWindowSize saves the window size for the next session
func (s *Settings) SetWindowSize(width, height int) {
	s.app.Preferences().SetInt(KeyWindowWidth, width)
	s.app.Preferences().SetInt(KeyWindowHeight, height)
}
