package main

import (
	"fmt"
	"os"
)

func main() {
	rootCmd := NewRootCommand()

	// Add commands
	rootCmd.AddCommand(NewCompletionCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
