// Command geministore drives a sketch.Matrix from the command line:
// ingesting a dataset, running ad-hoc queries against it, and
// replaying it through the accuracy benchmark harness.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
