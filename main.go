// The main package for the tubelens executable.
package main

import (
	"github.com/pverhoeven/tubelens/cmd"
)

// main is the entry point of the application.
// It defers all execution to the Cobra CLI library.
func main() {
	cmd.Execute()
}
