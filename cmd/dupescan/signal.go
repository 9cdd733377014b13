package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// setupSignalHandler sets up signal handling for graceful shutdown.
// Returns a channel that will be closed when a shutdown signal is received.
func setupSignalHandler(w io.Writer) <-chan struct{} {
	shutdown := make(chan struct{})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		fmt.Fprintf(w, "\nReceived signal: %v, stopping scan...\n", sig)

		// Close the shutdown channel to notify all listeners
		close(shutdown)
		signal.Stop(sigChan)
	}()

	return shutdown
}
