package addressbook

import (
	"fmt"
	"strings"
)

// Record is a single contact: a name, an ordered list of phone numbers and
// an optional birthday. The name is the record's identity and never changes
// after construction. Duplicate phones are allowed; insertion order is
// preserved for display.
type Record struct {
	Name     string        `json:"name"`
	Phones   []PhoneNumber `json:"phones"`
	Birthday *BirthdayDate `json:"birthday,omitempty"`
}

// NewRecord creates a record with the given name, no phones and no birthday
func NewRecord(name string) *Record {
	return &Record{
		Name:   name,
		Phones: []PhoneNumber{},
	}
}

// AddPhone validates raw and appends it to the phone list.
// On ErrInvalidPhone the list is left unchanged.
func (r *Record) AddPhone(raw string) error {
	phone, err := NewPhoneNumber(raw)
	if err != nil {
		return err
	}

	r.Phones = append(r.Phones, phone)
	return nil
}

// RemovePhone removes every phone equal to raw.
// Removing a phone that is not present is a silent no-op.
func (r *Record) RemovePhone(raw string) {
	kept := r.Phones[:0]
	for _, p := range r.Phones {
		if p.String() != raw {
			kept = append(kept, p)
		}
	}
	r.Phones = kept
}

// EditPhone replaces the first phone equal to oldRaw with newRaw, keeping
// its position in the list. Returns ErrPhoneNotFound when oldRaw is absent
// and ErrInvalidPhone when newRaw fails validation; in both cases the list
// is left unchanged.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	for i, p := range r.Phones {
		if p.String() == oldRaw {
			phone, err := NewPhoneNumber(newRaw)
			if err != nil {
				return err
			}
			r.Phones[i] = phone
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrPhoneNotFound, oldRaw)
}

// FindPhone returns the first phone equal to raw, or nil if none matches
func (r *Record) FindPhone(raw string) *PhoneNumber {
	for i, p := range r.Phones {
		if p.String() == raw {
			return &r.Phones[i]
		}
	}
	return nil
}

// SetBirthday parses raw and stores it, overwriting any previous value.
// On ErrInvalidBirthday the current birthday is left unchanged.
func (r *Record) SetBirthday(raw string) error {
	birthday, err := ParseBirthday(raw)
	if err != nil {
		return err
	}

	r.Birthday = &birthday
	return nil
}

// String renders the contact as a single human-readable line
func (r *Record) String() string {
	phones := make([]string, len(r.Phones))
	for i, p := range r.Phones {
		phones[i] = p.String()
	}

	line := fmt.Sprintf("Contact name: %s, phones: %s", r.Name, strings.Join(phones, "; "))
	if r.Birthday != nil {
		line += fmt.Sprintf(", birthday: %s", r.Birthday)
	}
	return line
}
