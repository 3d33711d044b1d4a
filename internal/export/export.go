// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export drives the contact-to-RDF pipeline: stream contacts from
// the store, map each to triples, and emit N-Triples to the output sink.
// One contact is fully mapped and written before the next is read, so the
// run holds at most one contact in memory.
package export

import (
	"context"

	"github.com/pdiddy/contacts2rdf/internal/mapper"
	"github.com/pdiddy/contacts2rdf/internal/ntriples"
	"github.com/pdiddy/contacts2rdf/internal/store"
	"github.com/pdiddy/contacts2rdf/pkg/types"
)

// Summary holds counts from one export run.
type Summary struct {
	Contacts int
	Triples  int
}

// Run exports every contact in s to w as N-Triples. It returns the summary
// of what was written; on error, output already flushed is left in place.
func Run(ctx context.Context, s *store.Store, w *ntriples.Writer, cfg types.ExportConfig) (Summary, error) {
	opts := mapper.Options{
		CountryCode:     cfg.CountryCode,
		NormalizePhones: cfg.NormalizePhones,
		SubjectBase:     cfg.SubjectBase,
	}

	var summary Summary
	err := s.ForEachContact(ctx, func(c types.Contact) error {
		for _, t := range mapper.MapContact(c, opts) {
			if err := w.Write(t); err != nil {
				return err
			}
		}
		summary.Contacts++
		return nil
	})
	summary.Triples = w.Count()
	return summary, err
}
