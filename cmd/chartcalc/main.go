package main

import (
	"fmt"
	"os"
)

// main is the application composition root.
// It wires config, logging and the house engine behind cobra commands.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
