//go:build windows

package update

import "fmt"

const scriptName = "replace_self.bat"

// replaceScript builds the batch script that deletes the old executable,
// starts the new one detached, and removes itself. Paths are double quoted
// so directories containing spaces survive the shell.
func replaceScript(currentExe, newExe string) string {
	return fmt.Sprintf("@echo off\r\n"+
		"timeout /t 2 > NUL\r\n"+
		"del \"%s\" > NUL 2>&1\r\n"+
		"start \"\" \"%s\"\r\n"+
		"del \"%%~f0\"\r\n", currentExe, newExe)
}

func scriptCommand(scriptPath string) (string, []string) {
	return "cmd", []string{"/c", scriptPath}
}
