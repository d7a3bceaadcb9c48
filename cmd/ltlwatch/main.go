// Command ltlwatch drives the ltl package's online evaluator with a named
// scenario's formula over a user-supplied YAML trace fixture, from the
// command line.
package main

import "os"

func main() {
	os.Exit(run())
}

func run() int {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		return GetExitCode(err)
	}
	return ExitSuccess
}
