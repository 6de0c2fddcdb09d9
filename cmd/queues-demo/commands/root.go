package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "queues-demo",
	Short: "Scripted walkthroughs of the go-queues container types",
	Long: `Scripted walkthroughs of the go-queues container types.

Each command builds a container, drives it through its typical
lifecycle via the public API and prints every operation with its
result, including the deliberate error cases.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(queueCmd, bufCmd, cbufCmd, cbufDefCmd)
}

// step prints the walkthrough line being executed.
func step(format string, args ...any) {
	fmt.Printf("\n"+format+"\n", args...)
}

// report prints the outcome of the previous step.
func report(format string, args ...any) {
	fmt.Printf("> "+format+"\n", args...)
}
