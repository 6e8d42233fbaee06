package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0o755
)

// Command constants
const (
	OpenCommand        = "open"
	ExplorerCommand    = "explorer"
	XDGOpenCommand     = "xdg-open"
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// WindowsExecutableSuffix is the artifact suffix matched on Windows.
const WindowsExecutableSuffix = ".exe"

// ExecutableSuffix returns the platform executable suffix used to match
// downloadable artifacts and name the replacement binary. Windows binaries
// carry ".exe"; other platforms have no suffix.
func ExecutableSuffix() string {
	if runtime.GOOS == OSWindows {
		return WindowsExecutableSuffix
	}
	return ""
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// RevealInFileManager opens the system file manager with the given file
// highlighted where the platform supports it.
func RevealInFileManager(filePath string) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, WindowsSelectParam, absPath).Run()
	case OSLinux:
		// File selection is not standardized on Linux; open the parent directory.
		return exec.Command(XDGOpenCommand, filepath.Dir(absPath)).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}
