package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/contacts2rdf/internal/export"
	"github.com/pdiddy/contacts2rdf/internal/ntriples"
	"github.com/pdiddy/contacts2rdf/internal/store"
	"github.com/pdiddy/contacts2rdf/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export [store]",
	Short: "Export contacts from an AddressBook database as N-Triples",
	Long: `Export opens an iOS AddressBook SQLite database read-only, converts
every contact to RDF triples, and writes one N-Triples line per fact to the
output file or standard output.

When no store path is given, export looks for an AddressBook copy inside
the local iTunes/MobileSync device backups.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	storePath, err := resolveStorePath(args)
	if err != nil {
		return err
	}

	cfg := exportConfigFromFlags(cmd)

	s, err := store.Open(storePath)
	if err != nil {
		return err
	}
	defer s.Close()

	// The output file is created only after the store opens and validates,
	// so a bad store never leaves a partial output file behind.
	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" {
		outPath = viper.GetString("output")
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	bw := bufio.NewWriter(out)
	summary, err := export.Run(context.Background(), s, ntriples.NewWriter(bw), cfg)
	if err != nil {
		bw.Flush()
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ntriples.ErrWrite, err)
	}

	fmt.Fprintf(os.Stderr, "exported %d contact(s), %d triple(s)\n", summary.Contacts, summary.Triples)
	return nil
}

// resolveStorePath returns the explicit store argument or falls back to a
// located MobileSync backup copy.
func resolveStorePath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if path, ok := store.Locate(); ok {
		fmt.Fprintln(os.Stderr, "Using AddressBook backup:", path)
		return path, nil
	}
	return "", fmt.Errorf("no store path given and no MobileSync backup found")
}

// exportConfigFromFlags builds the run configuration, falling back to viper
// keys for flags left unset.
func exportConfigFromFlags(cmd *cobra.Command) types.ExportConfig {
	countryCode, _ := cmd.Flags().GetString("country-code")
	if countryCode == "" {
		countryCode = viper.GetString("country_code")
	}
	normalize, _ := cmd.Flags().GetBool("normalize-phones")
	subjectBase, _ := cmd.Flags().GetString("subject-base")
	if subjectBase == "" {
		subjectBase = viper.GetString("subject_base")
	}

	return types.ExportConfig{
		CountryCode:     countryCode,
		NormalizePhones: normalize,
		SubjectBase:     subjectBase,
	}
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "output .nt file (default: standard output)")
	exportCmd.Flags().String("country-code", "", "country calling code for rewriting local phone numbers (e.g. 1, 44)")
	exportCmd.Flags().Bool("normalize-phones", false, "normalize phone numbers before building tel: IRIs")
	exportCmd.Flags().String("subject-base", "", "mint contact subjects as IRIs under this base instead of blank nodes")

	rootCmd.AddCommand(exportCmd)
}
