// Package main provides the go-queues walkthrough CLI.
//
// Usage:
//
//	queues-demo <command>
//
// Commands:
//
//	queue    - Unbounded Queue walkthrough
//	buf      - Bounded Buffer walkthrough
//	cbuf     - CircularBuffer walkthrough
//	cbuf-def - CircularBuffer with default values walkthrough
package main

import (
	"fmt"
	"os"

	"github.com/huynhanx03/go-queues/cmd/queues-demo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
