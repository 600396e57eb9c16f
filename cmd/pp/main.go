package main

import (
	"os"
)

// version is set at build time.
var version = "dev"

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	cmd.Version = version
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
