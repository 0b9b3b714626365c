package cmd

import (
	"os"
	"os/signal"
	"syscall"
)

// setupSignals relays interruptions of the process; the returned function stops the relay.
func setupSignals() (<-chan os.Signal, func()) {
	c := make(chan os.Signal, 1) // Note: A buffered channel is recommended for this; see https://golang.org/pkg/os/signal/#Notify

	interruptions := []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
	}

	signal.Notify(c, interruptions...)

	return c, func() { signal.Stop(c) }
}
