package cmd

import (
	"fmt"
	"os"
	"strings"
)

func stderrPrintLnf(message string, args ...interface{}) error {
	if !strings.HasSuffix(message, "\n") {
		message += "\n"
	}
	_, err := fmt.Fprintf(os.Stderr, message, args...)
	return err
}

// isPipedInput returns true if there is no input device, which means the user **may** be providing input via a pipe.
func isPipedInput() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}

	if fi.Mode()&os.ModeCharDevice != 0 {
		return false
	}

	// a named pipe or regular file (redirection) carries a run document
	return fi.Mode()&os.ModeNamedPipe != 0 || fi.Mode().IsRegular()
}
