// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vocab defines the RDF vocabulary used for contact export: FOAF for
// personal data, the W3C vCard ontology for postal address components, the
// GeoNames ontology for country codes, and an Apple ABPerson namespace for
// fields with no published equivalent.
package vocab

import "strings"

// Namespace base IRIs.
const (
	RDF   = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	FOAF  = "http://xmlns.com/foaf/0.1/"
	ABP   = "http://www.apple.com/ABPerson#"
	VCard = "http://www.w3.org/2006/vcard/ns#"
	GN    = "http://www.geonames.org/ontology#"
)

// prefixes maps qname prefixes to namespace base IRIs.
var prefixes = map[string]string{
	"rdf":   RDF,
	"foaf":  FOAF,
	"abp":   ABP,
	"vcard": VCard,
	"gn":    GN,
}

// ExpandQName converts a prefixed name ("foaf:phone") to a full IRI. Input
// with an unknown prefix or no prefix at all is returned unchanged, so
// callers may pass absolute IRIs through.
func ExpandQName(qname string) string {
	prefix, local, ok := strings.Cut(qname, ":")
	if !ok {
		return qname
	}
	base, ok := prefixes[prefix]
	if !ok {
		return qname
	}
	return base + local
}

// entryKeyQNames maps ABMultiValueEntryKey ROWIDs to address component
// predicates.
var entryKeyQNames = map[int64]string{
	1: "vcard:street-address",
	2: "vcard:country-name",
	3: "vcard:postal-code",
	4: "vcard:locality",
	5: "vcard:region",
	6: "gn:countryCode",
}

// EntryKeyIRI returns the predicate IRI for an address entry key, or ""
// when the key has no known mapping.
func EntryKeyIRI(key int64) string {
	qname, ok := entryKeyQNames[key]
	if !ok {
		return ""
	}
	return ExpandQName(qname)
}

// CleanLabel strips Apple's _$!<...>!$_ wrapper from a multi-value label,
// returning the inner name ("Mobile", "Work"). Unwrapped labels pass
// through unchanged.
func CleanLabel(label string) string {
	if strings.HasPrefix(label, "_$!<") && strings.HasSuffix(label, ">!$_") && len(label) > 8 {
		return label[4 : len(label)-4]
	}
	return label
}

// LabelTypeIRI returns the abp: class IRI for a cleaned label, or "" when
// the label cannot form a valid IRI fragment (empty, or containing
// whitespace or IRI-delimiter characters).
func LabelTypeIRI(label string) string {
	if label == "" || strings.ContainsAny(label, " \t\n\r<>\"{}|^`\\") {
		return ""
	}
	return ABP + label
}
