package addressbook

import (
	"errors"
	"testing"
)

func TestRecordAddPhone(t *testing.T) {
	record := NewRecord("Alice")

	if err := record.AddPhone("1234567890"); err != nil {
		t.Fatalf("AddPhone() error = %v", err)
	}

	if len(record.Phones) != 1 {
		t.Fatalf("Phones count = %d, want 1", len(record.Phones))
	}
	if record.Phones[0].String() != "1234567890" {
		t.Errorf("Phones[0] = %q, want %q", record.Phones[0], "1234567890")
	}
	if record.Birthday != nil {
		t.Errorf("Birthday = %v, want nil", record.Birthday)
	}
}

func TestRecordAddPhoneInvalid(t *testing.T) {
	record := NewRecord("Alice")
	if err := record.AddPhone("1234567890"); err != nil {
		t.Fatalf("AddPhone() error = %v", err)
	}

	err := record.AddPhone("123")

	if !errors.Is(err, ErrInvalidPhone) {
		t.Errorf("AddPhone(\"123\") error = %v, want ErrInvalidPhone", err)
	}
	if len(record.Phones) != 1 {
		t.Errorf("Phones count = %d after failed add, want 1", len(record.Phones))
	}
}

func TestRecordAddPhoneDuplicatesAllowed(t *testing.T) {
	record := NewRecord("Alice")

	for i := 0; i < 2; i++ {
		if err := record.AddPhone("1234567890"); err != nil {
			t.Fatalf("AddPhone() error = %v", err)
		}
	}

	if len(record.Phones) != 2 {
		t.Errorf("Phones count = %d, want 2 (duplicates allowed)", len(record.Phones))
	}
}

func TestRecordRemovePhone(t *testing.T) {
	tests := []struct {
		name   string
		phones []string
		remove string
		want   []string
	}{
		{
			name:   "Removes single match",
			phones: []string{"1234567890", "0987654321"},
			remove: "1234567890",
			want:   []string{"0987654321"},
		},
		{
			name:   "Removes all matches",
			phones: []string{"1234567890", "0987654321", "1234567890"},
			remove: "1234567890",
			want:   []string{"0987654321"},
		},
		{
			name:   "Missing phone is a no-op",
			phones: []string{"1234567890"},
			remove: "5555555555",
			want:   []string{"1234567890"},
		},
		{
			name:   "Empty list is a no-op",
			phones: []string{},
			remove: "1234567890",
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := NewRecord("Alice")
			for _, p := range tt.phones {
				if err := record.AddPhone(p); err != nil {
					t.Fatalf("AddPhone(%q) error = %v", p, err)
				}
			}

			record.RemovePhone(tt.remove)

			if len(record.Phones) != len(tt.want) {
				t.Fatalf("Phones count = %d, want %d", len(record.Phones), len(tt.want))
			}
			for i, want := range tt.want {
				if record.Phones[i].String() != want {
					t.Errorf("Phones[%d] = %q, want %q", i, record.Phones[i], want)
				}
			}
		})
	}
}

func TestRecordEditPhonePreservesPosition(t *testing.T) {
	record := NewRecord("Alice")
	for _, p := range []string{"1111111111", "2222222222", "3333333333"} {
		if err := record.AddPhone(p); err != nil {
			t.Fatalf("AddPhone(%q) error = %v", p, err)
		}
	}

	if err := record.EditPhone("2222222222", "9999999999"); err != nil {
		t.Fatalf("EditPhone() error = %v", err)
	}

	want := []string{"1111111111", "9999999999", "3333333333"}
	for i, w := range want {
		if record.Phones[i].String() != w {
			t.Errorf("Phones[%d] = %q, want %q", i, record.Phones[i], w)
		}
	}
}

func TestRecordEditPhoneFirstMatchOnly(t *testing.T) {
	record := NewRecord("Alice")
	for _, p := range []string{"1111111111", "1111111111"} {
		if err := record.AddPhone(p); err != nil {
			t.Fatalf("AddPhone(%q) error = %v", p, err)
		}
	}

	if err := record.EditPhone("1111111111", "9999999999"); err != nil {
		t.Fatalf("EditPhone() error = %v", err)
	}

	if record.Phones[0].String() != "9999999999" {
		t.Errorf("Phones[0] = %q, want %q", record.Phones[0], "9999999999")
	}
	if record.Phones[1].String() != "1111111111" {
		t.Errorf("Phones[1] = %q, want %q (second duplicate untouched)", record.Phones[1], "1111111111")
	}
}

func TestRecordEditPhoneNotFound(t *testing.T) {
	record := NewRecord("Alice")
	if err := record.AddPhone("1234567890"); err != nil {
		t.Fatalf("AddPhone() error = %v", err)
	}

	err := record.EditPhone("5555555555", "9999999999")

	if !errors.Is(err, ErrPhoneNotFound) {
		t.Errorf("EditPhone() error = %v, want ErrPhoneNotFound", err)
	}
	if len(record.Phones) != 1 || record.Phones[0].String() != "1234567890" {
		t.Errorf("Phones = %v after failed edit, want unchanged [1234567890]", record.Phones)
	}
}

func TestRecordEditPhoneInvalidNewValue(t *testing.T) {
	record := NewRecord("Alice")
	if err := record.AddPhone("1234567890"); err != nil {
		t.Fatalf("AddPhone() error = %v", err)
	}

	err := record.EditPhone("1234567890", "bad")

	if !errors.Is(err, ErrInvalidPhone) {
		t.Errorf("EditPhone() error = %v, want ErrInvalidPhone", err)
	}
	if record.Phones[0].String() != "1234567890" {
		t.Errorf("Phones[0] = %q after failed edit, want old value intact", record.Phones[0])
	}
}

func TestRecordFindPhone(t *testing.T) {
	record := NewRecord("Alice")
	for _, p := range []string{"1234567890", "0987654321"} {
		if err := record.AddPhone(p); err != nil {
			t.Fatalf("AddPhone(%q) error = %v", p, err)
		}
	}

	found := record.FindPhone("0987654321")
	if found == nil {
		t.Fatal("FindPhone() = nil, want match")
	}
	if found.String() != "0987654321" {
		t.Errorf("FindPhone() = %q, want %q", found, "0987654321")
	}

	if missing := record.FindPhone("5555555555"); missing != nil {
		t.Errorf("FindPhone() = %v for absent phone, want nil", missing)
	}
}

func TestRecordSetBirthday(t *testing.T) {
	record := NewRecord("Alice")

	if err := record.SetBirthday("15.06.1990"); err != nil {
		t.Fatalf("SetBirthday() error = %v", err)
	}
	if record.Birthday == nil || record.Birthday.String() != "15.06.1990" {
		t.Errorf("Birthday = %v, want 15.06.1990", record.Birthday)
	}

	// Re-setting overwrites
	if err := record.SetBirthday("01.01.2000"); err != nil {
		t.Fatalf("SetBirthday() error = %v", err)
	}
	if record.Birthday.String() != "01.01.2000" {
		t.Errorf("Birthday = %v after overwrite, want 01.01.2000", record.Birthday)
	}
}

func TestRecordSetBirthdayInvalid(t *testing.T) {
	record := NewRecord("Alice")
	if err := record.SetBirthday("15.06.1990"); err != nil {
		t.Fatalf("SetBirthday() error = %v", err)
	}

	err := record.SetBirthday("31.02.2024")

	if !errors.Is(err, ErrInvalidBirthday) {
		t.Errorf("SetBirthday() error = %v, want ErrInvalidBirthday", err)
	}
	if record.Birthday == nil || record.Birthday.String() != "15.06.1990" {
		t.Errorf("Birthday = %v after failed set, want previous value intact", record.Birthday)
	}
}

func TestRecordString(t *testing.T) {
	record := NewRecord("Alice")
	for _, p := range []string{"1234567890", "0987654321"} {
		if err := record.AddPhone(p); err != nil {
			t.Fatalf("AddPhone(%q) error = %v", p, err)
		}
	}

	want := "Contact name: Alice, phones: 1234567890; 0987654321"
	if got := record.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if err := record.SetBirthday("15.06.1990"); err != nil {
		t.Fatalf("SetBirthday() error = %v", err)
	}

	want += ", birthday: 15.06.1990"
	if got := record.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
