// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PropertyKind identifies the kind of an ABMultiValue row. The AddressBook
// schema encodes these as small integers in the property column.
type PropertyKind int64

const (
	PropertyPhone   PropertyKind = 3
	PropertyEmail   PropertyKind = 4
	PropertyAddress PropertyKind = 5
	PropertyRinger  PropertyKind = 16
)

// Contact is one ABPerson row. Text fields hold the empty string when the
// source column is NULL; integer fields keep the store's sentinel values
// (Kind/StoreID 0, PersonLink -1) so the mapper can decide what to omit.
type Contact struct {
	// ID is the ABPerson ROWID, unique within one store.
	ID int64 `json:"id" yaml:"id"`

	First  string `json:"first,omitempty" yaml:"first,omitempty"`
	Middle string `json:"middle,omitempty" yaml:"middle,omitempty"`
	Last   string `json:"last,omitempty" yaml:"last,omitempty"`

	FirstPhonetic  string `json:"first_phonetic,omitempty" yaml:"first_phonetic,omitempty"`
	MiddlePhonetic string `json:"middle_phonetic,omitempty" yaml:"middle_phonetic,omitempty"`
	LastPhonetic   string `json:"last_phonetic,omitempty" yaml:"last_phonetic,omitempty"`

	Nickname string `json:"nickname,omitempty" yaml:"nickname,omitempty"`
	Prefix   string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Suffix   string `json:"suffix,omitempty" yaml:"suffix,omitempty"`

	Organization string `json:"organization,omitempty" yaml:"organization,omitempty"`
	Department   string `json:"department,omitempty" yaml:"department,omitempty"`
	JobTitle     string `json:"job_title,omitempty" yaml:"job_title,omitempty"`

	Note     string `json:"note,omitempty" yaml:"note,omitempty"`
	Birthday string `json:"birthday,omitempty" yaml:"birthday,omitempty"`

	DisplayName string `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	GUID        string `json:"guid,omitempty" yaml:"guid,omitempty"`

	// CreationDate and ModificationDate are Apple epoch timestamps, carried
	// as the store's textual form rather than reinterpreted.
	CreationDate     string `json:"creation_date,omitempty" yaml:"creation_date,omitempty"`
	ModificationDate string `json:"modification_date,omitempty" yaml:"modification_date,omitempty"`

	Kind       int64 `json:"kind,omitempty" yaml:"kind,omitempty"`
	StoreID    int64 `json:"store_id,omitempty" yaml:"store_id,omitempty"`
	PersonLink int64 `json:"person_link,omitempty" yaml:"person_link,omitempty"`

	// Columns added by later AddressBook schema revisions; empty when the
	// store predates them.
	ImageURI                string `json:"image_uri,omitempty" yaml:"image_uri,omitempty"`
	CompositeNameFallback   string `json:"composite_name_fallback,omitempty" yaml:"composite_name_fallback,omitempty"`
	ExternalIdentifier      string `json:"external_identifier,omitempty" yaml:"external_identifier,omitempty"`
	ExternalModificationTag string `json:"external_modification_tag,omitempty" yaml:"external_modification_tag,omitempty"`
	ExternalUUID            string `json:"external_uuid,omitempty" yaml:"external_uuid,omitempty"`
	ExternalRepresentation  string `json:"external_representation,omitempty" yaml:"external_representation,omitempty"`
	PhonemeData             string `json:"phoneme_data,omitempty" yaml:"phoneme_data,omitempty"`

	// Fields holds the contact's multi-valued rows (phones, emails,
	// addresses) in ascending UID order.
	Fields []MultiValueField `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Name returns a display name for the contact: DisplayName if set, otherwise
// the non-empty name components joined with spaces, otherwise Organization.
func (c Contact) Name() string {
	if c.DisplayName != "" {
		return c.DisplayName
	}
	name := ""
	for _, part := range []string{c.Prefix, c.First, c.Middle, c.Last, c.Suffix} {
		if part == "" {
			continue
		}
		if name != "" {
			name += " "
		}
		name += part
	}
	if name == "" {
		return c.Organization
	}
	return name
}

// MultiValueField is one ABMultiValue row together with its resolved label
// and, for postal addresses, its ABMultiValueEntry components.
type MultiValueField struct {
	// UID is the ABMultiValue row identifier, unique within one store.
	UID int64 `json:"uid" yaml:"uid"`

	// Property is the field kind (phone, email, address, ...).
	Property PropertyKind `json:"property" yaml:"property"`

	// Label is the resolved ABMultiValueLabel value with Apple's
	// _$!<...>!$_ wrapper stripped (e.g. "Mobile", "Work"). Empty when the
	// row carries no label.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// Value is the field value (phone number, email address). Empty for
	// structured addresses, whose data lives in Entries.
	Value string `json:"value,omitempty" yaml:"value,omitempty"`

	// Entries holds address components in entry row order.
	Entries []AddressEntry `json:"entries,omitempty" yaml:"entries,omitempty"`
}

// AddressEntry is one ABMultiValueEntry row: a keyed component of a
// structured multi-value such as a postal address.
type AddressEntry struct {
	// Key is the ABMultiValueEntryKey ROWID (1 street, 2 country, 3 postal
	// code, 4 locality, 5 region, 6 country code).
	Key int64 `json:"key" yaml:"key"`

	// KeyName is the resolved entry key name from the store, when present.
	KeyName string `json:"key_name,omitempty" yaml:"key_name,omitempty"`

	Value string `json:"value" yaml:"value"`
}

// Counts returns the number of phone, email, and address fields.
func (c Contact) Counts() (phones, emails, addresses int) {
	for _, f := range c.Fields {
		switch f.Property {
		case PropertyPhone:
			phones++
		case PropertyEmail:
			emails++
		case PropertyAddress:
			addresses++
		}
	}
	return phones, emails, addresses
}
