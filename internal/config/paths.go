package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/lexget/lexidict/internal/logging"
)

// Application metadata
const (
	AppName   = "LexiDict"
	AppID     = "com.lexget.lexidict"
	Developer = "lexget"
)

// Directory and file names under the runtime root
const (
	dataDirName  = "data"
	logsDirName  = "logs"
	dictsDirName = "dicts"
	cacheName    = "dictionary.json"

	dirPermissions  = 0o755
	filePermissions = 0o644
)

// emptyCache seeds the definition cache so the first read always succeeds.
var emptyCache = []byte("{}")

// DefaultRoot returns the per-user runtime root for application data.
func DefaultRoot() (string, error) {
	cfgDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(cfgDir, AppName), nil
}

// Paths lays out the runtime directory structure: data, logs, and bundled
// dictionaries. EnsureStructure must be called before the files are used.
type Paths struct {
	fs   afero.Fs
	root string
}

// NewPaths creates a Paths rooted at the given directory.
func NewPaths(fs afero.Fs, root string) *Paths {
	return &Paths{fs: fs, root: root}
}

// RuntimeDir returns the runtime root directory.
func (p *Paths) RuntimeDir() string {
	return p.root
}

// DataDir returns the directory holding the definition cache.
func (p *Paths) DataDir() string {
	return filepath.Join(p.root, dataDirName)
}

// LogsDir returns the directory holding the per-category log files.
func (p *Paths) LogsDir() string {
	return filepath.Join(p.root, logsDirName)
}

// DictionariesDir returns the default directory scanned for dictionaries.
func (p *Paths) DictionariesDir() string {
	return filepath.Join(p.root, dictsDirName)
}

// CacheFile returns the path of the persisted definition cache.
func (p *Paths) CacheFile() string {
	return filepath.Join(p.DataDir(), cacheName)
}

// LogFiles returns the per-category log file paths.
func (p *Paths) LogFiles() map[string]string {
	return map[string]string{
		logging.CategoryApp:    filepath.Join(p.LogsDir(), "app.log"),
		logging.CategoryDict:   filepath.Join(p.LogsDir(), "dictionary.log"),
		logging.CategoryUpdate: filepath.Join(p.LogsDir(), "update.log"),
		logging.CategoryConfig: filepath.Join(p.LogsDir(), "config.log"),
	}
}

// EnsureStructure creates the runtime directories, seeds an empty definition
// cache if none exists, and touches the log files.
func (p *Paths) EnsureStructure() error {
	for _, dir := range []string{p.DataDir(), p.LogsDir(), p.DictionariesDir()} {
		if err := p.fs.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	if exists, err := afero.Exists(p.fs, p.CacheFile()); err != nil {
		return fmt.Errorf("stat %s: %w", p.CacheFile(), err)
	} else if !exists {
		if err := afero.WriteFile(p.fs, p.CacheFile(), emptyCache, filePermissions); err != nil {
			return fmt.Errorf("seed %s: %w", p.CacheFile(), err)
		}
	}

	for _, path := range p.LogFiles() {
		f, err := p.fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePermissions)
		if err != nil {
			return fmt.Errorf("touch %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", path, err)
		}
	}

	return nil
}
