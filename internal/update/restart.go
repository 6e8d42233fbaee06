package update

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

const scriptPermissions = 0o755

// Launcher starts the handoff script detached from the current process.
type Launcher interface {
	StartDetached(name string, args ...string) error
}

type execLauncher struct{}

func (execLauncher) StartDetached(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Handoff replaces the running executable after process exit by generating a
// small platform script next to it: the script waits two seconds for the
// process to release its file locks, deletes the old executable, launches the
// new one detached, and deletes itself.
type Handoff struct {
	fs       afero.Fs
	launcher Launcher
	logger   *log.Logger
	exit     func(code int)
}

// NewHandoff creates a handoff using the real process launcher and os.Exit.
func NewHandoff(fs afero.Fs, logger *log.Logger) *Handoff {
	return &Handoff{
		fs:       fs,
		launcher: execLauncher{},
		logger:   logger,
		exit:     os.Exit,
	}
}

// Apply writes and launches the replacement script, then terminates the
// current process with exit code 0. It does not return. A script failure is
// logged but the process still exits: staying alive on the old executable is
// not an option once the caller has committed to the restart.
func (h *Handoff) Apply(currentExe, newExe string) {
	if err := h.apply(currentExe, newExe); err != nil {
		h.logger.Error("self-replacement handoff failed", "error", err)
	}
	h.exit(0)
}

func (h *Handoff) apply(currentExe, newExe string) error {
	scriptPath := filepath.Join(filepath.Dir(currentExe), scriptName)

	script := replaceScript(currentExe, newExe)
	if err := afero.WriteFile(h.fs, scriptPath, []byte(script), scriptPermissions); err != nil {
		return fmt.Errorf("write handoff script: %w", err)
	}
	h.logger.Info("handoff script written", "path", scriptPath)

	name, args := scriptCommand(scriptPath)
	if err := h.launcher.StartDetached(name, args...); err != nil {
		return fmt.Errorf("launch handoff script: %w", err)
	}
	h.logger.Info("handing off to replacement script", "old", currentExe, "new", newExe)
	return nil
}
