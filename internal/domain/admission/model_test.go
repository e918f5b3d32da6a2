package admission

import (
	"errors"
	"testing"
)

func TestCategories_MenuOrder(t *testing.T) {
	want := []string{"General", "Emergency", "Insurance", "ICU", "Diagnostic"}
	got := Categories()
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i, c := range got {
		if c.String() != want[i] {
			t.Errorf("category %d = %s, want %s", i, c, want[i])
		}
		if int(c) != i+1 {
			t.Errorf("category %s has menu value %d, want %d", c, int(c), i+1)
		}
	}
}

func TestCategory_ZeroValueInvalid(t *testing.T) {
	var c Category
	if c.Valid() {
		t.Error("expected zero category to be invalid")
	}
	if c.String() != "Category(0)" {
		t.Errorf("String() = %q, want %q", c.String(), "Category(0)")
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"1", General},
		{"2", Emergency},
		{" 3 ", Insurance},
		{"4", ICU},
		{"5", Diagnostic},
		{"general", General},
		{"ICU", ICU},
		{"icu", ICU},
		{"Diagnostic", Diagnostic},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if err != nil {
			t.Errorf("ParseCategory(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseCategory_Invalid(t *testing.T) {
	for _, in := range []string{"0", "6", "-1", "", "maternity"} {
		if _, err := ParseCategory(in); !errors.Is(err, ErrInvalidCategory) {
			t.Errorf("ParseCategory(%q) error = %v, want ErrInvalidCategory", in, err)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2860, "2860"},
		{1500, "1500"},
		{2861.5, "2861.5"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
