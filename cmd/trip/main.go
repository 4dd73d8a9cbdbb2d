package main

import (
	"os"
	"trip-route-cli/internal/cli"
)

// main is the application composition root. Command wiring lives in
// internal/cli so it can be exercised by tests.
func main() {
	os.Exit(cli.Execute())
}
