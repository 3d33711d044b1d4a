// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package phone normalizes phone numbers by stripping formatting
// characters, detecting international dialing prefixes, and optionally
// rewriting local numbers to international form for a given country
// calling code.
package phone

import (
	"strings"
	"unicode"
)

// formatting characters removed before any other processing. The unicode
// entries cover the non-breaking space, non-breaking hyphen, and the LRE/PDF
// bidi marks iOS embeds in stored numbers.
const formattingChars = "<>()-\u2011 \t\n\u00a0\u202a\u202c"

// callingPrefixes are international dialing prefixes, checked longest
// first.
var callingPrefixes = []string{"0011", "000", "001", "010", "011", "00", "+"}

// noTrunkPrefix lists country calling codes whose numbering plans use no
// local trunk prefix.
var noTrunkPrefix = map[string]bool{
	"420": true, "45": true, "372": true, "30": true, "39": true,
	"371": true, "352": true, "356": true, "377": true, "977": true,
	"47": true, "968": true, "48": true, "351": true, "378": true,
	"34": true, "3906698": true,
}

// TrunkPrefix returns the local trunk prefix for a country calling code:
// "1" for the North American Numbering Plan, "8" for the Russian world,
// "06" for Hungary, "" for plans without one, and "0" for most of Africa,
// Asia, and Europe.
func TrunkPrefix(countryCode string) string {
	switch {
	case countryCode == "":
		return ""
	case countryCode[0] == '1':
		return "1"
	case countryCode[0] == '7':
		return "8"
	case countryCode == "36":
		return "06"
	case noTrunkPrefix[countryCode]:
		return ""
	}
	return "0"
}

// Normalize strips formatting characters and a tel: scheme from number,
// detects international prefixes, and, when countryCode is given, rewrites
// local numbers to +<countryCode><subscriber> form after removing the local
// trunk prefix. Numbers identified as international are prefixed with "+".
// Short numbers and numbers containing "*" or "#" are treated as special
// and returned without a country rewrite.
//
// When digitsOnly is true, input that contains anything besides digits and
// the characters "+*#" after stripping yields ("", false).
func Normalize(number, countryCode string, digitsOnly bool) (string, bool) {
	n := strings.ToLower(number)
	n = strings.Map(func(r rune) rune {
		if strings.ContainsRune(formattingChars, r) {
			return -1
		}
		return r
	}, n)
	n = strings.TrimPrefix(n, "tel:")

	special := len(n) < 5 || strings.ContainsAny(n, "*#")

	if digitsOnly {
		for _, r := range n {
			if !unicode.IsDigit(r) && !strings.ContainsRune("+*#", r) {
				return "", false
			}
		}
	}

	international := false
	for _, p := range callingPrefixes {
		if strings.HasPrefix(n, p) {
			n = n[len(p):]
			international = true
			break
		}
	}
	if !international {
		international = len(n) >= 11
	}

	if !international && !special && countryCode != "" {
		trunk := TrunkPrefix(countryCode)
		if strings.HasPrefix(n, trunk) {
			n = countryCode + n[len(trunk):]
			international = true
		}
	}

	if international && !special {
		return "+" + n, true
	}
	return n, true
}
