package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/lexget/lexidict/internal/config"
	"github.com/lexget/lexidict/internal/dict"
	"github.com/lexget/lexidict/internal/logging"
	"github.com/lexget/lexidict/internal/model"
	"github.com/lexget/lexidict/internal/platform"
	"github.com/lexget/lexidict/internal/release"
	"github.com/lexget/lexidict/internal/ui"
	"github.com/lexget/lexidict/internal/update"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

// devRuntimeDir is used instead of the user config dir for dev builds, so a
// working tree never pollutes the installed layout.
const devRuntimeDir = "runtime"

func main() {
	fs := afero.NewOsFs()

	root := devRuntimeDir
	if version != "dev" {
		var err error
		if root, err = config.DefaultRoot(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to resolve runtime directory: %v\n", err)
			os.Exit(1)
		}
	}

	paths := config.NewPaths(fs, root)
	if err := paths.EnsureStructure(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create runtime structure: %v\n", err)
		os.Exit(1)
	}

	loggers, err := logging.New(paths.LogFiles(), version == "dev")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log files: %v\n", err)
		os.Exit(1)
	}
	defer loggers.Close()

	loggers.App.Info("starting", "app", config.AppName, "version", version)

	myApp := app.NewWithID(config.AppID)
	settings := config.NewSettings(myApp, paths)

	store := dict.NewStore(fs, paths.CacheFile(), loggers.Dict)
	store.Load()

	dictDir := settings.GetDictionaryDirectory()
	if err := platform.CreateDirectoryIfNotExists(dictDir); err != nil {
		loggers.Config.Warn("failed to ensure dictionary directory", "dir", dictDir, "error", err)
	}

	// A missing or unreadable corpus degrades to cache-only lookups.
	var corpus dict.Corpus
	if c, err := dict.OpenCorpus(dictDir, loggers.Dict); err != nil {
		loggers.Dict.Warn("corpus unavailable, running cache-only", "error", err)
	} else {
		corpus = c
	}

	dictSvc := dict.NewService(corpus, store, loggers.Dict)

	window := myApp.NewWindow(fmt.Sprintf("%s v%s", config.AppName, version))
	width, height := settings.GetWindowSize()
	window.Resize(fyne.NewSize(float32(width), float32(height)))
	window.SetCloseIntercept(func() {
		size := window.Canvas().Size()
		settings.SetWindowSize(int(size.Width), int(size.Height))
		window.Close()
	})

	ui.NewRootUI(window, dictSvc, settings, loggers.App)

	go checkForUpdates(window, settings, fs, loggers.Update)

	window.ShowAndRun()
}

// checkForUpdates gates startup on the release feed. A discontinued version
// forces the update flow; otherwise a newer release is offered and any feed
// failure silently means "no update".
func checkForUpdates(window fyne.Window, settings *config.Settings, fs afero.Fs, logger *log.Logger) {
	if version == "dev" {
		logger.Info("development build, skipping update check")
		return
	}

	feed := release.NewClient(settings.GetFeedURL(), config.AppName, platform.ExecutableSuffix(), logger)
	policy := release.NewPolicy(feed, logger)

	if policy.IsDiscontinued(version) {
		info := feed.UpdateInfo()
		if info.AssetURL == "" {
			logger.Error("version discontinued with no update artifact, cannot continue")
			os.Exit(1)
		}
		offerUpdate(window, info, fs, logger, true)
		return
	}

	if info, ok := policy.HasUpdate(version); ok {
		offerUpdate(window, info, fs, logger, false)
	}
}

// offerUpdate wires a download manager to the update dialog. On restart
// confirmation the handoff script replaces the running executable and the
// process exits.
func offerUpdate(window fyne.Window, info model.UpdateInfo, fs afero.Fs, logger *log.Logger, forced bool) {
	exe, err := os.Executable()
	if err != nil {
		logger.Error("cannot resolve current executable", "error", err)
		if forced {
			os.Exit(1)
		}
		return
	}

	mgr := update.NewManager(config.AppName, info, filepath.Dir(exe), fs, logger)

	handoff := update.NewHandoff(fs, logger)
	mgr.SetRestartCallback(func() {
		handoff.Apply(exe, mgr.DestPath())
	})

	onDecline := func() {}
	if forced {
		onDecline = func() {
			logger.Warn("forced update declined, exiting")
			os.Exit(0)
		}
	}

	fyne.Do(func() {
		ui.ShowUpdateDialog(window, mgr, forced, onDecline)
	})
}
