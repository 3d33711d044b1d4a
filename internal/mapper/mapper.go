// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mapper converts contact records into RDF triples. The mapping is
// a pure function of its input: given the same contact, it produces the
// same triples in the same order, so repeated exports of an unchanged
// store are byte-identical.
package mapper

import (
	"fmt"
	"strings"

	"github.com/pdiddy/contacts2rdf/internal/ntriples"
	"github.com/pdiddy/contacts2rdf/internal/phone"
	"github.com/pdiddy/contacts2rdf/internal/vocab"
	"github.com/pdiddy/contacts2rdf/pkg/types"
)

// Options control phone handling and subject identity.
type Options struct {
	// CountryCode enables rewriting local phone numbers to international
	// form under this country calling code.
	CountryCode string

	// NormalizePhones applies phone.Normalize to numbers before building
	// tel: IRIs. Implied by a non-empty CountryCode.
	NormalizePhones bool

	// SubjectBase mints contact subjects as IRIs under this base instead of
	// blank nodes.
	SubjectBase string
}

// personField pairs an ABPerson value accessor with its predicate. The
// omit hook filters store sentinel values.
type personField struct {
	predicate string
	value     func(types.Contact) string
	omit      func(types.Contact) bool
}

// personFields fixes the emission order of single-valued contact triples.
var personFields = []personField{
	{"foaf:firstName", func(c types.Contact) string { return c.First }, nil},
	{"foaf:middleName", func(c types.Contact) string { return c.Middle }, nil},
	{"foaf:lastName", func(c types.Contact) string { return c.Last }, nil},
	{"abp:FirstPhonetic", func(c types.Contact) string { return c.FirstPhonetic }, nil},
	{"abp:MiddlePhonetic", func(c types.Contact) string { return c.MiddlePhonetic }, nil},
	{"abp:LastPhonetic", func(c types.Contact) string { return c.LastPhonetic }, nil},
	{"foaf:nick", func(c types.Contact) string { return c.Nickname }, nil},
	{"abp:Prefix", func(c types.Contact) string { return c.Prefix }, nil},
	{"abp:Suffix", func(c types.Contact) string { return c.Suffix }, nil},
	{"abp:Organization", func(c types.Contact) string { return c.Organization }, nil},
	{"abp:Department", func(c types.Contact) string { return c.Department }, nil},
	{"foaf:title", func(c types.Contact) string { return c.JobTitle }, nil},
	{"abp:Note", func(c types.Contact) string { return c.Note }, nil},
	{"foaf:birthday", func(c types.Contact) string { return c.Birthday }, nil},
	{"abp:DisplayName", func(c types.Contact) string { return c.DisplayName }, nil},
	{"abp:guid", func(c types.Contact) string { return c.GUID }, nil},
	{"foaf:img", func(c types.Contact) string { return c.ImageURI }, nil},
	{"abp:CompositeNameFallback", func(c types.Contact) string { return c.CompositeNameFallback }, nil},
	{"abp:ExternalIdentifier", func(c types.Contact) string { return c.ExternalIdentifier }, nil},
	{"abp:ExternalModificationTag", func(c types.Contact) string { return c.ExternalModificationTag }, nil},
	{"abp:ExternalUUID", func(c types.Contact) string { return c.ExternalUUID }, nil},
	{"abp:ExternalRepresentation", func(c types.Contact) string { return c.ExternalRepresentation }, nil},
	{"abp:PhonemeData", func(c types.Contact) string { return c.PhonemeData }, nil},
	{"abp:CreationDate", func(c types.Contact) string { return c.CreationDate }, nil},
	{"abp:ModificationDate", func(c types.Contact) string { return c.ModificationDate }, nil},
	{"abp:Kind", func(c types.Contact) string { return fmt.Sprintf("%d", c.Kind) },
		func(c types.Contact) bool { return c.Kind == 0 }},
	{"abp:StoreID", func(c types.Contact) string { return fmt.Sprintf("%d", c.StoreID) },
		func(c types.Contact) bool { return c.StoreID == 0 }},
	{"abp:PersonLink", func(c types.Contact) string { return fmt.Sprintf("%d", c.PersonLink) },
		func(c types.Contact) bool { return c.PersonLink == -1 }},
}

// Subject returns the subject term for a contact: a blank node _:p<ID>, or
// an IRI under SubjectBase when configured.
func (o Options) Subject(id int64) ntriples.Term {
	if o.SubjectBase != "" {
		return ntriples.IRI(fmt.Sprintf("%sp%d", o.SubjectBase, id))
	}
	return ntriples.BlankNode(fmt.Sprintf("p%d", id))
}

// addressSubject returns the sub-resource term for one address field,
// deterministic given (contact id, field uid).
func (o Options) addressSubject(contactID, uid int64) ntriples.Term {
	if o.SubjectBase != "" {
		return ntriples.IRI(fmt.Sprintf("%sp%dad%d", o.SubjectBase, contactID, uid))
	}
	return ntriples.BlankNode(fmt.Sprintf("p%dad%d", contactID, uid))
}

// MapContact converts one contact and its multi-value fields into an
// ordered sequence of triples. Null and empty source values are omitted;
// everything else is passed through, malformed or not, as a best-effort
// literal so that no stored fact is silently lost.
func MapContact(c types.Contact, opts Options) []ntriples.Triple {
	subject := opts.Subject(c.ID)
	var out []ntriples.Triple

	for _, f := range personFields {
		v := f.value(c)
		if v == "" || (f.omit != nil && f.omit(c)) {
			continue
		}
		out = append(out, ntriples.Triple{
			Subject:   subject,
			Predicate: ntriples.IRI(vocab.ExpandQName(f.predicate)),
			Object:    ntriples.Literal{Value: v},
		})
	}

	for _, mv := range c.Fields {
		switch mv.Property {
		case types.PropertyPhone:
			out = append(out, mapPhone(subject, mv, opts)...)
		case types.PropertyEmail:
			out = append(out, mapEmail(subject, mv)...)
		case types.PropertyAddress:
			out = append(out, mapAddress(subject, c.ID, mv, opts)...)
		default:
			out = append(out, mapRaw(subject, mv)...)
		}
	}
	return out
}

// fieldValue returns the multi-value's own value, falling back to its first
// entry value when the row itself is empty, so a fact stored only in the
// entry table is not lost.
func fieldValue(mv types.MultiValueField) string {
	if mv.Value != "" {
		return mv.Value
	}
	for _, e := range mv.Entries {
		if e.Value != "" {
			return e.Value
		}
	}
	return ""
}

func mapPhone(subject ntriples.Term, mv types.MultiValueField, opts Options) []ntriples.Triple {
	number := fieldValue(mv)
	if number == "" {
		return nil
	}
	if opts.NormalizePhones || opts.CountryCode != "" {
		number, _ = phone.Normalize(number, opts.CountryCode, false)
	} else {
		number = strings.ReplaceAll(number, " ", "")
	}

	tel := ntriples.IRI("tel:" + number)
	out := []ntriples.Triple{{
		Subject:   subject,
		Predicate: ntriples.IRI(vocab.ExpandQName("foaf:phone")),
		Object:    tel,
	}}
	if typeIRI := vocab.LabelTypeIRI(mv.Label); typeIRI != "" {
		out = append(out, ntriples.Triple{
			Subject:   tel,
			Predicate: ntriples.IRI(vocab.ExpandQName("rdf:type")),
			Object:    ntriples.IRI(typeIRI),
		})
	}
	return out
}

func mapEmail(subject ntriples.Term, mv types.MultiValueField) []ntriples.Triple {
	addr := strings.ReplaceAll(fieldValue(mv), " ", "")
	if addr == "" {
		return nil
	}
	return []ntriples.Triple{{
		Subject:   subject,
		Predicate: ntriples.IRI(vocab.ExpandQName("foaf:mbox")),
		Object:    ntriples.IRI("mailto:" + addr),
	}}
}

func mapAddress(subject ntriples.Term, contactID int64, mv types.MultiValueField, opts Options) []ntriples.Triple {
	if len(mv.Entries) == 0 && mv.Value == "" {
		return nil
	}
	node := opts.addressSubject(contactID, mv.UID)
	out := []ntriples.Triple{{
		Subject:   subject,
		Predicate: ntriples.IRI(vocab.ExpandQName("vcard:address")),
		Object:    node,
	}}
	for _, e := range mv.Entries {
		predicate := vocab.EntryKeyIRI(e.Key)
		if predicate == "" {
			continue
		}
		out = append(out, ntriples.Triple{
			Subject:   node,
			Predicate: ntriples.IRI(predicate),
			Object:    ntriples.Literal{Value: e.Value},
		})
	}
	// A flat value with no structured entries still carries the address.
	if len(mv.Entries) == 0 {
		out = append(out, ntriples.Triple{
			Subject:   node,
			Predicate: ntriples.IRI(vocab.ExpandQName("vcard:street-address")),
			Object:    ntriples.Literal{Value: mv.Value},
		})
	}
	return out
}

// mapRaw emits unknown multi-value kinds under a generated abp:prop_<N>
// predicate rather than dropping them.
func mapRaw(subject ntriples.Term, mv types.MultiValueField) []ntriples.Triple {
	v := fieldValue(mv)
	if v == "" {
		return nil
	}
	return []ntriples.Triple{{
		Subject:   subject,
		Predicate: ntriples.IRI(vocab.ABP + fmt.Sprintf("prop_%d", mv.Property)),
		Object:    ntriples.Literal{Value: v},
	}}
}
