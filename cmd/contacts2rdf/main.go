// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the contacts2rdf CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the contacts2rdf CLI.
var rootCmd = &cobra.Command{
	Use:   "contacts2rdf",
	Short: "Convert iOS AddressBook contacts to RDF N-Triples",
	Long: `contacts2rdf reads contact records from an iOS AddressBook SQLite
database and emits them as an RDF graph in N-Triples format, using the FOAF
and vCard vocabularies where possible.

The export subcommand performs the conversion; inspect summarizes a store
without converting it; phone normalizes a single phone number.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./contacts2rdf.yaml or ~/.config/contacts2rdf/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("contacts2rdf")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "contacts2rdf"))
		}
	}

	viper.SetEnvPrefix("CONTACTS2RDF")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
