package main

import "github.com/embedgen/embedgen/cmd"

// main is the entry point of the embedgen CLI application.
// It executes the root command which handles argument parsing and generation.
func main() {
	cmd.Execute()
}
