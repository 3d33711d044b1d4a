// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		number      string
		countryCode string
		digitsOnly  bool
		want        string
		wantOK      bool
	}{
		{
			name:   "strips formatting characters",
			number: "+1 (555) 123-4567",
			want:   "+15551234567",
			wantOK: true,
		},
		{
			name:   "strips tel scheme",
			number: "tel:+15551234567",
			want:   "+15551234567",
			wantOK: true,
		},
		{
			name:   "double zero prefix is international",
			number: "0044 20 7946 0958",
			want:   "+442079460958",
			wantOK: true,
		},
		{
			name:   "north american 011 prefix is international",
			number: "011 44 20 7946 0958",
			want:   "+442079460958",
			wantOK: true,
		},
		{
			name:   "eleven digits without prefix is international",
			number: "15551234567",
			want:   "+15551234567",
			wantOK: true,
		},
		{
			name:        "local number rewritten under country code",
			number:      "0722 123 456",
			countryCode: "40",
			want:        "+40722123456",
			wantOK:      true,
		},
		{
			name:        "hungarian trunk prefix 06 replaced",
			number:      "06 1 234 5678",
			countryCode: "36",
			want:        "+3612345678",
			wantOK:      true,
		},
		{
			name:        "local number without country code stays local",
			number:      "0722 123 456",
			want:        "0722123456",
			wantOK:      true,
		},
		{
			name:        "short special number untouched",
			number:      "112",
			countryCode: "40",
			want:        "112",
			wantOK:      true,
		},
		{
			name:        "service code with hash untouched",
			number:      "*100#",
			countryCode: "40",
			want:        "*100#",
			wantOK:      true,
		},
		{
			name:       "digits only accepts plus and digits",
			number:     "+1 555 123 4567",
			digitsOnly: true,
			want:       "+15551234567",
			wantOK:     true,
		},
		{
			name:       "digits only rejects letters",
			number:     "1-800-FLOWERS",
			digitsOnly: true,
			wantOK:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.number, tt.countryCode, tt.digitsOnly)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTrunkPrefix(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"", ""},
		{"1", "1"},
		{"1242", "1"},
		{"7", "8"},
		{"36", "06"},
		{"45", ""},
		{"39", ""},
		{"40", "0"},
		{"44", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, TrunkPrefix(tt.code))
		})
	}
}
