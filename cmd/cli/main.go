package main

import (
	"fmt"
	"os"

	"github.com/crucial707/twitter-crud/cmd/cli/posts"
	"github.com/crucial707/twitter-crud/cmd/cli/root"
	"github.com/crucial707/twitter-crud/cmd/cli/users"
)

func main() {
	rootCmd := root.GetRoot()
	users.Init(rootCmd)
	posts.Init(rootCmd)

	// Execute the root Cobra command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
