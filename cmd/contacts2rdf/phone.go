package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/contacts2rdf/internal/phone"
)

var phoneCmd = &cobra.Command{
	Use:   "phone <number>",
	Short: "Normalize a phone number",
	Long: `Phone strips formatting characters from a phone number, detects
international dialing prefixes, and with --country-code rewrites local
numbers to international +<code> form.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		countryCode, _ := cmd.Flags().GetString("country-code")
		if countryCode == "" {
			countryCode = viper.GetString("country_code")
		}
		digitsOnly, _ := cmd.Flags().GetBool("digits-only")

		normalized, ok := phone.Normalize(args[0], countryCode, digitsOnly)
		if !ok {
			return fmt.Errorf("invalid phone number: %q", args[0])
		}
		fmt.Println(normalized)
		return nil
	},
}

func init() {
	phoneCmd.Flags().String("country-code", "", "country calling code for rewriting local numbers (e.g. 1, 44)")
	phoneCmd.Flags().Bool("digits-only", false, "reject numbers containing non-digit characters")

	rootCmd.AddCommand(phoneCmd)
}
