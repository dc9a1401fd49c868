package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-01-02"); !ok {
		t.Error("IsValidDate(2024-01-02) = false, want true")
	}
	for _, s := range []string{"2024-13-01", "2024-01-32", "02-01-2024", "2024/01/02", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	if !IsNumeric("29805150112345") {
		t.Error("IsNumeric(digits) = false, want true")
	}
	for _, s := range []string{"", "12a4", " 123", "1.5"} {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "full_name", Message: "full_name is required"},
		{Field: "start_date", Message: "start_date is required"},
	}
	m := errs.ToMap()
	if len(m) != 2 || m["full_name"] == "" || m["start_date"] == "" {
		t.Errorf("ToMap() = %v, want both fields present", m)
	}
}
