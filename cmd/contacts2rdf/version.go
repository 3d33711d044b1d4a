package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of contacts2rdf",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("contacts2rdf %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
