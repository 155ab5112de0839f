package main

import (
	"github.com/spf13/cobra"
)

// sourceCompletions limits --source suggestions to Qt Designer (.ui) files.
func sourceCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"ui"}, cobra.ShellCompDirectiveFilterFileExt
}

// destinationCompletions limits --destination suggestions to directories.
func destinationCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return nil, cobra.ShellCompDirectiveFilterDirs
}
