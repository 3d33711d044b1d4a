// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ntriples models RDF terms and serializes triples in the N-Triples
// line format: one triple per line, UTF-8, each line terminated by a single
// newline.
package ntriples

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrWrite reports that the output sink rejected a write. Output already
// flushed is left intact; every emitted line is independently meaningful.
var ErrWrite = errors.New("write failure")

// Term is an RDF term in subject, predicate, or object position.
type Term interface {
	// NTriples returns the term in N-Triples surface syntax.
	NTriples() string
}

// IRI is an absolute IRI reference.
type IRI string

func (i IRI) NTriples() string {
	return "<" + string(i) + ">"
}

// BlankNode is a document-scoped node label, without the "_:" prefix.
type BlankNode string

func (b BlankNode) NTriples() string {
	return "_:" + string(b)
}

// Literal is a literal value with an optional language tag or datatype IRI.
// At most one of Lang and Datatype may be set.
type Literal struct {
	Value    string
	Lang     string
	Datatype string
}

func (l Literal) NTriples() string {
	s := `"` + EscapeLiteral(l.Value) + `"`
	switch {
	case l.Lang != "":
		return s + "@" + l.Lang
	case l.Datatype != "":
		return s + "^^<" + l.Datatype + ">"
	}
	return s
}

// Triple is one (subject, predicate, object) fact.
type Triple struct {
	Subject   Term
	Predicate IRI
	Object    Term
}

// String returns the triple as one N-Triples line without the trailing
// newline.
func (t Triple) String() string {
	return t.Subject.NTriples() + " " + t.Predicate.NTriples() + " " + t.Object.NTriples() + " ."
}

// literalEscaper rewrites the characters the N-Triples grammar requires to
// be escaped inside a quoted literal. Other characters, including non-ASCII,
// pass through as UTF-8.
var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// EscapeLiteral escapes a literal value for embedding between double quotes.
func EscapeLiteral(s string) string {
	return literalEscaper.Replace(s)
}

// UnescapeLiteral reverses EscapeLiteral. It tolerates a trailing lone
// backslash by passing it through.
func UnescapeLiteral(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Writer emits triples to an output sink, one line at a time. It holds no
// buffer of its own, so arbitrarily large graphs stream in constant memory.
type Writer struct {
	w     io.Writer
	count int
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write emits one triple as one line. A sink error wraps ErrWrite.
func (w *Writer) Write(t Triple) error {
	if _, err := io.WriteString(w.w, t.String()+"\n"); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	w.count++
	return nil
}

// Count returns the number of triples written so far.
func (w *Writer) Count() int {
	return w.count
}
