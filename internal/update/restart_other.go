//go:build !windows

package update

import "fmt"

const scriptName = "replace_self.sh"

// replaceScript builds the shell script that deletes the old executable,
// starts the new one detached, and removes itself. Paths are double quoted
// so directories containing spaces survive the shell.
func replaceScript(currentExe, newExe string) string {
	return fmt.Sprintf("#!/bin/sh\n"+
		"sleep 2\n"+
		"rm -f \"%s\"\n"+
		"\"%s\" &\n"+
		"rm -f \"$0\"\n", currentExe, newExe)
}

func scriptCommand(scriptPath string) (string, []string) {
	return "/bin/sh", []string{scriptPath}
}
