package addressbook

import "fmt"

// PhoneNumber is a validated phone number: exactly 10 decimal digits.
// Values are only produced by NewPhoneNumber, so a PhoneNumber held by a
// Record is always valid.
type PhoneNumber string

// ValidatePhone reports whether raw is exactly 10 decimal digits.
// No sign, no separators, no leading "+".
func ValidatePhone(raw string) bool {
	if len(raw) != 10 {
		return false
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// NewPhoneNumber validates raw and returns it as a PhoneNumber.
// Returns ErrInvalidPhone when validation fails.
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	if !ValidatePhone(raw) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
	}
	return PhoneNumber(raw), nil
}

// String returns the phone number digits
func (p PhoneNumber) String() string {
	return string(p)
}
