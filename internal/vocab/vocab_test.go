package vocab

import "testing"

func TestExpandQName(t *testing.T) {
	tests := []struct {
		name  string
		qname string
		want  string
	}{
		{"foaf", "foaf:phone", "http://xmlns.com/foaf/0.1/phone"},
		{"rdf", "rdf:type", "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"},
		{"vcard", "vcard:street-address", "http://www.w3.org/2006/vcard/ns#street-address"},
		{"abp", "abp:Note", "http://www.apple.com/ABPerson#Note"},
		{"gn", "gn:countryCode", "http://www.geonames.org/ontology#countryCode"},
		{"unknown prefix passes through", "dc:title", "dc:title"},
		{"absolute iri passes through", "http://example.org/p", "http://example.org/p"},
		{"no colon passes through", "name", "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandQName(tt.qname); got != tt.want {
				t.Errorf("ExpandQName(%q) = %q, want %q", tt.qname, got, tt.want)
			}
		})
	}
}

func TestEntryKeyIRI(t *testing.T) {
	if got := EntryKeyIRI(1); got != "http://www.w3.org/2006/vcard/ns#street-address" {
		t.Errorf("EntryKeyIRI(1) = %q", got)
	}
	if got := EntryKeyIRI(6); got != "http://www.geonames.org/ontology#countryCode" {
		t.Errorf("EntryKeyIRI(6) = %q", got)
	}
	if got := EntryKeyIRI(99); got != "" {
		t.Errorf("EntryKeyIRI(99) = %q, want empty", got)
	}
}

func TestCleanLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"_$!<Mobile>!$_", "Mobile"},
		{"_$!<Work>!$_", "Work"},
		{"iPhone", "iPhone"},
		{"", ""},
		{"_$!<>!$_", "_$!<>!$_"},
	}

	for _, tt := range tests {
		if got := CleanLabel(tt.in); got != tt.want {
			t.Errorf("CleanLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLabelTypeIRI(t *testing.T) {
	if got := LabelTypeIRI("Mobile"); got != "http://www.apple.com/ABPerson#Mobile" {
		t.Errorf("LabelTypeIRI(Mobile) = %q", got)
	}
	for _, bad := range []string{"", "two words", "a<b", "a\"b", "a\nb"} {
		if got := LabelTypeIRI(bad); got != "" {
			t.Errorf("LabelTypeIRI(%q) = %q, want empty", bad, got)
		}
	}
}
