// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExportConfig holds settings for one export run.
type ExportConfig struct {
	// CountryCode is the international calling code used to rewrite local
	// phone numbers (e.g. "1", "44"). Empty disables the rewrite.
	CountryCode string `json:"country_code,omitempty" yaml:"country_code,omitempty"`

	// NormalizePhones strips formatting characters from phone numbers and
	// detects international prefixes before building tel: IRIs.
	NormalizePhones bool `json:"normalize_phones" yaml:"normalize_phones"`

	// SubjectBase, when set, mints contact subjects as IRIs under this base
	// instead of document-scoped blank nodes.
	SubjectBase string `json:"subject_base,omitempty" yaml:"subject_base,omitempty"`
}
