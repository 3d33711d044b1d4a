// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ntriples

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeLiteral(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"double quote", `say "hi"`, `say \"hi\"`},
		{"backslash", `C:\temp`, `C:\\temp`},
		{"newline", "line1\nline2", `line1\nline2`},
		{"carriage return", "a\r\nb", `a\r\nb`},
		{"tab", "a\tb", `a\tb`},
		{"non-ascii passes through", "Dvořák 北京", "Dvořák 北京"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeLiteral(tt.in))
		})
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	inputs := []string{
		"plain",
		`quotes "and" more "quotes"`,
		`back\slash \\ doubled`,
		"multi\nline\r\nwith\ttabs",
		"mixed \"\\\n end",
		"Dvořák 北京 🙂",
	}

	for _, in := range inputs {
		assert.Equal(t, in, UnescapeLiteral(EscapeLiteral(in)), "round trip of %q", in)
	}
}

func TestTermSyntax(t *testing.T) {
	tests := []struct {
		name string
		term Term
		want string
	}{
		{"iri", IRI("http://example.org/a"), "<http://example.org/a>"},
		{"blank node", BlankNode("p12"), "_:p12"},
		{"plain literal", Literal{Value: "hi"}, `"hi"`},
		{"language tagged", Literal{Value: "bonjour", Lang: "fr"}, `"bonjour"@fr`},
		{"typed", Literal{Value: "42", Datatype: "http://www.w3.org/2001/XMLSchema#integer"}, `"42"^^<http://www.w3.org/2001/XMLSchema#integer>`},
		{"literal with quote", Literal{Value: `a"b`}, `"a\"b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.term.NTriples())
		})
	}
}

func TestTripleString(t *testing.T) {
	tr := Triple{
		Subject:   BlankNode("p1"),
		Predicate: IRI("http://xmlns.com/foaf/0.1/name"),
		Object:    Literal{Value: "Ada"},
	}
	assert.Equal(t, `_:p1 <http://xmlns.com/foaf/0.1/name> "Ada" .`, tr.String())
}

func TestWriter(t *testing.T) {
	var buf strings.Builder
	w := NewWriter(&buf)

	triples := []Triple{
		{BlankNode("p1"), IRI("http://xmlns.com/foaf/0.1/firstName"), Literal{Value: "Ada"}},
		{BlankNode("p1"), IRI("http://xmlns.com/foaf/0.1/phone"), IRI("tel:+15550100")},
	}
	for _, tr := range triples {
		require.NoError(t, w.Write(tr))
	}

	want := `_:p1 <http://xmlns.com/foaf/0.1/firstName> "Ada" .
_:p1 <http://xmlns.com/foaf/0.1/phone> <tel:+15550100> .
`
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 2, w.Count())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestWriterSinkFailure(t *testing.T) {
	w := NewWriter(failingWriter{})
	err := w.Write(Triple{BlankNode("p1"), IRI("http://example.org/p"), Literal{Value: "v"}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWrite), "error should wrap ErrWrite")
	assert.Equal(t, 0, w.Count())
}
