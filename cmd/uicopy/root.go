package main

import (
	"os"

	"github.com/gingerrexayers/uicopy-go/internal/uicopy/commands"
	"github.com/gingerrexayers/uicopy-go/internal/uicopy/lib"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root 'uicopy' command, which performs the copy itself.
func NewRootCommand() *cobra.Command {
	var source string
	var destination string

	cmd := &cobra.Command{
		Use:   "uicopy",
		Short: "Copy a single file into a directory, replacing any previous copy.",
		Long: `Copies the source file into the destination directory under its original
name. The directory is created if it does not exist and a file with the same
name already in it is replaced.

Paths come from the flags, then from UICOPY_SOURCE and UICOPY_DESTINATION,
then from the built-in defaults.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := lib.LoadConfig(os.LookupEnv)
			if cmd.Flags().Changed("source") {
				cfg.Source = source
			}
			if cmd.Flags().Changed("destination") {
				cfg.Destination = destination
			}

			// The outcome is only reported on the console; the exit status stays 0.
			commands.Run(cfg, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", lib.DefaultSource, "The file to copy")
	cmd.Flags().StringVarP(&destination, "destination", "d", lib.DefaultDestination, "The directory to copy the file into")

	_ = cmd.RegisterFlagCompletionFunc("source", sourceCompletions)
	_ = cmd.RegisterFlagCompletionFunc("destination", destinationCompletions)

	return cmd
}
