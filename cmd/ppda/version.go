package main

import (
	"fmt"

	"github.com/aretw0/ppda"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ppda",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ppda version %s\n", ppda.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
