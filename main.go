// Package main is the entry point for the prism CLI.
package main

import "prism.dev/pkg/prism/cmd"

func main() {
	cmd.Execute()
}
