package addressbook

import "errors"

// Sentinel errors returned by record and book operations. Callers match
// them with errors.Is and decide how to present each kind.
var (
	// ErrInvalidPhone is returned when a raw phone string is not exactly 10 digits
	ErrInvalidPhone = errors.New("phone number must be 10 digits")

	// ErrInvalidBirthday is returned when a raw birthday string is malformed
	// or names a date that does not exist on the calendar
	ErrInvalidBirthday = errors.New("invalid date format, use DD.MM.YYYY")

	// ErrPhoneNotFound is returned when an edit targets a phone absent from the record
	ErrPhoneNotFound = errors.New("phone not found")

	// ErrContactNotFound is returned when a lookup by name yields no record
	ErrContactNotFound = errors.New("contact not found")
)
