package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// reportedError has already been written to stderr in its own format.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(newRootCmd(), os.Stderr))
}

func run(cmd *cobra.Command, stderr io.Writer) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	var reported reportedError
	if !errors.As(err, &reported) {
		fmt.Fprintln(stderr, "riskctl:", err)
	}
	return 1
}

func newRootCmd() *cobra.Command {
	var tablePath string

	root := &cobra.Command{
		Use:           "riskctl",
		Short:         "Operate the Wellsure health risk scorer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&tablePath, "table", os.Getenv("RISK_TABLE_PATH"), "scoring table YAML overlay")

	root.AddCommand(newScoreCmd(&tablePath))
	root.AddCommand(newTableCmd(&tablePath))
	root.AddCommand(newTokenCmd())
	return root
}
