package update

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/lexget/lexidict/internal/model"
	"github.com/lexget/lexidict/internal/platform"
)

// Manager owns the download lifecycle for a single update attempt and fans
// the worker's notifications out to its own observers verbatim, so UI and
// non-UI callers can subscribe without depending on the worker. Register
// callbacks before calling StartUpdate; the manager is single use, like its
// worker.
type Manager struct {
	info   model.UpdateInfo
	worker *worker
	logger *log.Logger

	onProgress func(percent int)
	onStatus   func(message string)
	onComplete func()
	onRestart  func()
}

// NewManager builds a manager for one resolved update. The artifact is
// written into destDir as "<appName>_<version><executable suffix>".
func NewManager(appName string, info model.UpdateInfo, destDir string, fs afero.Fs, logger *log.Logger) *Manager {
	destPath := filepath.Join(destDir, fmt.Sprintf("%s_%s%s", appName, info.Version, platform.ExecutableSuffix()))

	m := &Manager{
		info:   info,
		logger: logger,
	}

	m.worker = newWorker(info.AssetURL, destPath, fs, logger)
	m.worker.onProgress = func(percent int) {
		if m.onProgress != nil {
			m.onProgress(percent)
		}
	}
	m.worker.onStatus = func(message string) {
		if m.onStatus != nil {
			m.onStatus(message)
		}
	}
	m.worker.onComplete = func() {
		if m.onComplete != nil {
			m.onComplete()
		}
	}

	return m
}

// SetProgressCallback registers the observer for progress percentages.
func (m *Manager) SetProgressCallback(fn func(percent int)) {
	m.onProgress = fn
}

// SetStatusCallback registers the observer for failure status messages.
func (m *Manager) SetStatusCallback(fn func(message string)) {
	m.onStatus = fn
}

// SetCompleteCallback registers the observer fired once on download success.
func (m *Manager) SetCompleteCallback(fn func()) {
	m.onComplete = fn
}

// SetRestartCallback registers the observer fired by CloseApplication.
func (m *Manager) SetRestartCallback(fn func()) {
	m.onRestart = fn
}

// DestPath returns where the downloaded artifact is written.
func (m *Manager) DestPath() string {
	return m.worker.task.DestPath
}

// Version returns the version being downloaded.
func (m *Manager) Version() string {
	return m.info.Version
}

// Changelog returns the release notes for the version being downloaded.
func (m *Manager) Changelog() string {
	if m.info.Release == nil {
		return ""
	}
	return m.info.Release.Body
}

// StartUpdate begins the artifact download without blocking.
func (m *Manager) StartUpdate() {
	m.logger.Info("initiating update process", "version", m.info.Version)
	m.worker.start()
}

// CloseApplication signals that the caller decided to restart. The manager
// never restarts on its own; it only raises the restart callback.
func (m *Manager) CloseApplication() {
	m.logger.Info("restart requested")
	if m.onRestart != nil {
		m.onRestart()
	}
}
