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

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-06-10", "2024-02-29", "1999-12-31"}
	invalid := []string{"2025-13-01", "2025-06-31", "10-06-2025", "2025/06/10", "", "yesterday"}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "08:00", "23:59"}
	invalid := []string{"24:00", "08:60", "8:00:00", "08:00:30", "0800", ""}
	for _, c := range valid {
		if _, ok := IsValidClock(c); !ok {
			t.Errorf("IsValidClock(%q) = false, want true", c)
		}
	}
	for _, c := range invalid {
		if _, ok := IsValidClock(c); ok {
			t.Errorf("IsValidClock(%q) = true, want false", c)
		}
	}
}

func TestIsValidPassport(t *testing.T) {
	valid := []string{"0912345678", "AB-123456", "V12345"}
	invalid := []string{"", "1234", "09 12345678", "0912345678901234567890123456789012345678901234567890X"}
	for _, p := range valid {
		if !IsValidPassport(p) {
			t.Errorf("IsValidPassport(%q) = false, want true", p)
		}
	}
	for _, p := range invalid {
		if IsValidPassport(p) {
			t.Errorf("IsValidPassport(%q) = true, want false", p)
		}
	}
}
