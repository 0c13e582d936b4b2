// The main package for the mdcrawl executable.
package main

import (
	"github.com/mdcrawl/mdcrawl/cmd"
)

// main is the entry point of the application.
// It defers all execution to the Cobra CLI library.
func main() {
	cmd.Execute()
}
