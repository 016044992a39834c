// Package cmdtest runs cobra commands in tests.
package cmdtest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// Result holds the output of a command run.
type Result struct {
	Stdout, Stderr []byte
	Err            error
}

// Execute runs cmd with the given arguments and standard input.
func Execute(cmd *cobra.Command, args []string, input string) Result {
	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes(), Err: err}
}

// Run runs cmd with the given arguments and returns its standard output.
// The test fails if the command returns an error.
func Run(t *testing.T, cmd *cobra.Command, args []string) []byte {
	t.Helper()
	return RunWithInput(t, cmd, args, "")
}

// RunWithInput is like Run, but feeds input to the command.
func RunWithInput(t *testing.T, cmd *cobra.Command, args []string, input string) []byte {
	t.Helper()
	res := Execute(cmd, args, input)
	if res.Err != nil {
		t.Fatalf("%s %s returned unexpected error: %v\nstderr:\n%s", cmd.Name(), strings.Join(args, " "), res.Err, res.Stderr)
	}
	return res.Stdout
}
