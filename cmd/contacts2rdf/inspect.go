package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/contacts2rdf/internal/store"
	"github.com/pdiddy/contacts2rdf/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [store]",
	Short: "Summarize the contacts in an AddressBook database",
	Long: `Inspect opens an AddressBook database read-only and prints a
per-contact summary table: row ID, name, and field counts. With --format
yaml or --format json it dumps the full typed records instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	storePath, err := resolveStorePath(args)
	if err != nil {
		return err
	}

	s, err := store.Open(storePath)
	if err != nil {
		return err
	}
	defer s.Close()

	contacts, err := s.Contacts(context.Background())
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "table", "":
		printContactTable(contacts)
	case "yaml":
		data, err := yaml.Marshal(contacts)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		os.Stdout.Write(data)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(contacts)
	default:
		return fmt.Errorf("unsupported format %q: use table, yaml, or json", format)
	}
	return nil
}

func printContactTable(contacts []types.Contact) {
	if len(contacts) == 0 {
		fmt.Println("No contacts found.")
		return
	}

	fmt.Fprintf(os.Stdout, "%-6s  %-40s  %-6s  %-6s  %s\n",
		"ID", "Name", "Phones", "Emails", "Addresses")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 72))

	for _, c := range contacts {
		phones, emails, addresses := c.Counts()
		fmt.Fprintf(os.Stdout, "%-6d  %-40s  %-6d  %-6d  %d\n",
			c.ID, truncate(c.Name(), 40), phones, emails, addresses)
	}

	fmt.Fprintf(os.Stdout, "\n%d contact(s)\n", len(contacts))
}

// truncate shortens s to at most max runes, ending with "..." when cut.
// Truncating on runes keeps multibyte names intact.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

func init() {
	inspectCmd.Flags().String("format", "table", "output format: table, yaml, or json")

	rootCmd.AddCommand(inspectCmd)
}
