// Package main is the entry point for the comment-header CLI.
package main

import "commentheader.dev/pkg/commentheader/cmd"

func main() {
	cmd.Execute()
}
