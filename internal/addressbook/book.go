package addressbook

import "sort"

// AddressBook owns all contact records, keyed by name. At most one record
// exists per name. The zero value is not usable; construct with New or
// let the storage layer deserialize one.
type AddressBook struct {
	Records map[string]*Record `json:"records"`
}

// New creates an empty address book
func New() *AddressBook {
	return &AddressBook{
		Records: make(map[string]*Record),
	}
}

// AddRecord inserts the record under its name, replacing any existing
// record with the same name (last write wins, no merge).
func (b *AddressBook) AddRecord(record *Record) {
	b.Records[record.Name] = record
}

// Find returns the record with the exact name, or nil if none exists
func (b *AddressBook) Find(name string) *Record {
	return b.Records[name]
}

// Delete removes the record with the given name.
// Deleting a missing name is a silent no-op.
func (b *AddressBook) Delete(name string) {
	delete(b.Records, name)
}

// Len returns the number of records in the book
func (b *AddressBook) Len() int {
	return len(b.Records)
}

// Names returns all contact names in sorted order
func (b *AddressBook) Names() []string {
	names := make([]string, 0, len(b.Records))
	for name := range b.Records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns every record, sorted by name. The underlying map has no
// order, so sorting keeps listings and reports stable between runs.
func (b *AddressBook) List() []*Record {
	records := make([]*Record, 0, len(b.Records))
	for _, name := range b.Names() {
		records = append(records, b.Records[name])
	}
	return records
}
