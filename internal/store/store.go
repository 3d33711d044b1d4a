// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store reads contact records from an iOS AddressBook SQLite
// database. The store is opened read-only, its schema is validated once at
// open time, and contacts stream out one at a time in native row order.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/contacts2rdf/internal/vocab"
	"github.com/pdiddy/contacts2rdf/pkg/types"
)

// ErrUnreadable reports a store file that is missing, not a valid SQLite
// database, or otherwise unreadable.
var ErrUnreadable = errors.New("store unreadable")

// ErrSchema reports a readable database that is missing expected
// AddressBook tables or columns.
var ErrSchema = errors.New("schema mismatch")

// requiredTables are the AddressBook tables the reader queries.
var requiredTables = []string{
	"ABPerson",
	"ABMultiValue",
	"ABMultiValueLabel",
	"ABMultiValueEntry",
	"ABMultiValueEntryKey",
}

// personColumns are the ABPerson columns the reader requires, in scan order.
var personColumns = []string{
	"First", "Middle", "Last",
	"FirstPhonetic", "MiddlePhonetic", "LastPhonetic",
	"Nickname", "Prefix", "Suffix",
	"Organization", "Department", "JobTitle",
	"Note", "Birthday", "DisplayName", "guid",
	"CreationDate", "ModificationDate",
	"Kind", "StoreID", "PersonLink",
}

// optionalColumns are ABPerson columns that later schema revisions added.
// They are selected when present; older stores without them still open.
var optionalColumns = []string{
	"ImageURI", "CompositeNameFallback",
	"ExternalIdentifier", "ExternalModificationTag", "ExternalUUID",
	"ExternalRepresentation", "PhonemeData",
}

// Store is an open, validated, read-only contact database.
type Store struct {
	db   *sql.DB
	path string

	// extras holds the optionalColumns present in this store, in
	// optionalColumns order.
	extras []string
}

// Open opens the AddressBook database at path read-only and validates its
// schema. It fails with ErrUnreadable when the file is missing or not a
// SQLite database, and with ErrSchema when expected tables or columns are
// absent. The source file is never mutated.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrUnreadable, path, err)
	}

	s := &Store{db: db, path: path}
	if err := s.validateSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) validateSchema() error {
	for _, table := range requiredTables {
		var count int
		err := s.db.QueryRow(
			`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&count)
		if err != nil {
			// A scan failure here means the file is not a usable database.
			return fmt.Errorf("%w: reading %s: %v", ErrUnreadable, s.path, err)
		}
		if count == 0 {
			return fmt.Errorf("%w: missing table %s", ErrSchema, table)
		}
	}

	rows, err := s.db.Query(`SELECT name FROM pragma_table_info('ABPerson')`)
	if err != nil {
		return fmt.Errorf("%w: reading ABPerson columns: %v", ErrUnreadable, err)
	}
	defer rows.Close()

	have := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("%w: reading ABPerson columns: %v", ErrUnreadable, err)
		}
		have[name] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: reading ABPerson columns: %v", ErrUnreadable, err)
	}

	var missing []string
	for _, col := range personColumns {
		if !have[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: ABPerson missing columns %v", ErrSchema, missing)
	}

	for _, col := range optionalColumns {
		if have[col] {
			s.extras = append(s.extras, col)
		}
	}
	return nil
}

// CountContacts returns the number of ABPerson rows.
func (s *Store) CountContacts(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM ABPerson`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting contacts: %w", err)
	}
	return n, nil
}

// ForEachContact streams contacts in ROWID order, invoking fn for each
// contact with its multi-value fields attached. Iteration stops on the
// first error fn returns.
func (s *Store) ForEachContact(ctx context.Context, fn func(types.Contact) error) error {
	query := "SELECT ROWID"
	for _, col := range personColumns {
		query += ", " + col
	}
	for _, col := range s.extras {
		query += ", " + col
	}
	query += " FROM ABPerson ORDER BY ROWID"

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("querying contacts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		c, err := scanContact(rows, s.extras)
		if err != nil {
			return err
		}
		c.Fields, err = s.multiValues(ctx, c.ID)
		if err != nil {
			return err
		}
		if err := fn(c); err != nil {
			return err
		}
	}
	return rows.Err()
}

// Contacts loads all contacts into memory. Intended for inspection, not for
// the streaming export path.
func (s *Store) Contacts(ctx context.Context) ([]types.Contact, error) {
	var out []types.Contact
	err := s.ForEachContact(ctx, func(c types.Contact) error {
		out = append(out, c)
		return nil
	})
	return out, err
}

func scanContact(rows *sql.Rows, extras []string) (types.Contact, error) {
	var c types.Contact
	text := make([]sql.NullString, 18)
	var kind, storeID, personLink sql.NullInt64
	extraText := make([]sql.NullString, len(extras))

	dest := make([]any, 0, len(personColumns)+len(extras)+1)
	dest = append(dest, &c.ID)
	for i := range text {
		dest = append(dest, &text[i])
	}
	dest = append(dest, &kind, &storeID, &personLink)
	for i := range extraText {
		dest = append(dest, &extraText[i])
	}

	if err := rows.Scan(dest...); err != nil {
		return c, fmt.Errorf("scanning contact: %w", err)
	}

	for i, field := range []*string{
		&c.First, &c.Middle, &c.Last,
		&c.FirstPhonetic, &c.MiddlePhonetic, &c.LastPhonetic,
		&c.Nickname, &c.Prefix, &c.Suffix,
		&c.Organization, &c.Department, &c.JobTitle,
		&c.Note, &c.Birthday, &c.DisplayName, &c.GUID,
		&c.CreationDate, &c.ModificationDate,
	} {
		if text[i].Valid {
			*field = text[i].String
		}
	}
	c.Kind = kind.Int64
	c.StoreID = storeID.Int64
	c.PersonLink = personLink.Int64
	if !personLink.Valid {
		c.PersonLink = -1
	}

	for i, col := range extras {
		if !extraText[i].Valid {
			continue
		}
		switch col {
		case "ImageURI":
			c.ImageURI = extraText[i].String
		case "CompositeNameFallback":
			c.CompositeNameFallback = extraText[i].String
		case "ExternalIdentifier":
			c.ExternalIdentifier = extraText[i].String
		case "ExternalModificationTag":
			c.ExternalModificationTag = extraText[i].String
		case "ExternalUUID":
			c.ExternalUUID = extraText[i].String
		case "ExternalRepresentation":
			c.ExternalRepresentation = extraText[i].String
		case "PhonemeData":
			c.PhonemeData = extraText[i].String
		}
	}
	return c, nil
}

// multiValues loads the multi-value rows for one contact, grouped by row
// UID with address entries attached, in ascending UID and entry order.
func (s *Store) multiValues(ctx context.Context, personID int64) ([]types.MultiValueField, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT mv.UID, mv.property, mvl.value, mv.value,
		       mve.key, mvek.value, mve.value
		FROM ABMultiValue mv
		LEFT JOIN ABMultiValueLabel mvl ON mvl.ROWID = mv.label
		LEFT JOIN ABMultiValueEntry mve ON mve.parent_id = mv.UID
		LEFT JOIN ABMultiValueEntryKey mvek ON mvek.ROWID = mve.key
		WHERE mv.record_id = ?
		ORDER BY mv.UID, mve.ROWID`, personID)
	if err != nil {
		return nil, fmt.Errorf("querying multi-values for contact %d: %w", personID, err)
	}
	defer rows.Close()

	var fields []types.MultiValueField
	for rows.Next() {
		var (
			uid      int64
			property sql.NullInt64
			label    sql.NullString
			value    sql.NullString
			entryKey sql.NullInt64
			keyName  sql.NullString
			entryVal sql.NullString
		)
		if err := rows.Scan(&uid, &property, &label, &value, &entryKey, &keyName, &entryVal); err != nil {
			return nil, fmt.Errorf("scanning multi-value for contact %d: %w", personID, err)
		}
		if !property.Valid {
			continue
		}

		if len(fields) == 0 || fields[len(fields)-1].UID != uid {
			fields = append(fields, types.MultiValueField{
				UID:      uid,
				Property: types.PropertyKind(property.Int64),
				Label:    vocab.CleanLabel(label.String),
				Value:    value.String,
			})
		}
		if entryKey.Valid && entryVal.String != "" {
			f := &fields[len(fields)-1]
			f.Entries = append(f.Entries, types.AddressEntry{
				Key:     entryKey.Int64,
				KeyName: keyName.String,
				Value:   entryVal.String,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading multi-values for contact %d: %w", personID, err)
	}
	return fields, nil
}
