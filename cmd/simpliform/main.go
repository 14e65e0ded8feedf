// Package main provides the CLI entrypoint for simpliform.
//
// simpliform runs form definitions against input documents:
//   - Loads a YAML definition of field kinds, expressions and disables
//   - Evaluates a YAML input through the resulting form
//   - Prints the processed output and the messages of every invalid field
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	err := newRootCmd().Execute()
	switch {
	case err == nil:
	case errors.Is(err, errInvalid):
		os.Exit(1)
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
}
