package main

import (
	"fmt"

	automaton "github.com/geange/automaton-tree"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of automaton-tree",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "automaton-tree version %s\n", automaton.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
