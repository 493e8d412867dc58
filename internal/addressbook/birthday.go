package addressbook

import (
	"encoding/json"
	"fmt"
	"time"
)

// BirthdayFormat is the only accepted birthday layout: zero-padded DD.MM.YYYY
const BirthdayFormat = "02.01.2006"

// BirthdayDate is a calendar date (year, month, day) with no time-of-day
// component. It is only produced by ParseBirthday, so a stored value always
// formats back to the exact DD.MM.YYYY string it was parsed from.
type BirthdayDate struct {
	t time.Time
}

// ParseBirthday parses a strict DD.MM.YYYY string into a BirthdayDate.
// Malformed strings and calendar-invalid dates (e.g. 31.02.2024) both
// return ErrInvalidBirthday. The parsed value is additionally formatted
// back and compared against the input, so only strings the type itself
// would render are accepted (round-trip law).
func ParseBirthday(raw string) (BirthdayDate, error) {
	t, err := time.Parse(BirthdayFormat, raw)
	if err != nil {
		return BirthdayDate{}, fmt.Errorf("%w: %q", ErrInvalidBirthday, raw)
	}
	if t.Format(BirthdayFormat) != raw {
		return BirthdayDate{}, fmt.Errorf("%w: %q", ErrInvalidBirthday, raw)
	}
	return BirthdayDate{t: t}, nil
}

// Day returns the day of month (1-31)
func (b BirthdayDate) Day() int {
	return b.t.Day()
}

// Month returns the calendar month
func (b BirthdayDate) Month() time.Month {
	return b.t.Month()
}

// Year returns the birth year
func (b BirthdayDate) Year() int {
	return b.t.Year()
}

// String formats the date back to DD.MM.YYYY
func (b BirthdayDate) String() string {
	return b.t.Format(BirthdayFormat)
}

// MarshalJSON implements json.Marshaler, writing the DD.MM.YYYY string
func (b BirthdayDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON implements json.Unmarshaler, accepting only DD.MM.YYYY
func (b *BirthdayDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseBirthday(s)
	if err != nil {
		return err
	}

	*b = parsed
	return nil
}
