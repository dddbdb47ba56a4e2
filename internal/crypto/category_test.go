package crypto

import (
	"strings"
	"testing"
)

func TestCategoriesAreDisjoint(t *testing.T) {
	seen := make(map[rune]Category)
	for _, c := range Categories() {
		if c.Chars() == "" {
			t.Errorf("%s has an empty character set", c)
		}
		for _, r := range c.Chars() {
			if prev, ok := seen[r]; ok {
				t.Errorf("character %q appears in both %s and %s", r, prev, c)
			}
			seen[r] = c
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		r      rune
		want   Category
		wantOK bool
	}{
		{r: 'Q', want: Uppercase, wantOK: true},
		{r: 'q', want: Lowercase, wantOK: true},
		{r: '7', want: Digit, wantOK: true},
		{r: '%', want: Symbol, wantOK: true},
		{r: '!', wantOK: false},
		{r: 'é', wantOK: false},
	}

	for _, tt := range tests {
		got, ok := Classify(tt.r)
		if ok != tt.wantOK {
			t.Errorf("Classify(%q) ok = %v, want %v", tt.r, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.r, got, tt.want)
		}
	}
}

func TestCategorySet(t *testing.T) {
	s := NewCategorySet(Symbol, Uppercase, Symbol)

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if got := s.Categories(); len(got) != 2 || got[0] != Uppercase || got[1] != Symbol {
		t.Errorf("Categories() = %v, want [upper symbol]", got)
	}
	if s.Chars() != uppercaseChars+symbolChars {
		t.Errorf("Chars() = %q", s.Chars())
	}
	if s.Without(Symbol).Has(Symbol) {
		t.Error("Without(Symbol) still has Symbol")
	}
	if AllCategories.Len() != 4 {
		t.Errorf("AllCategories.Len() = %d, want 4", AllCategories.Len())
	}
	if s.String() != "upper,symbol" {
		t.Errorf("String() = %q", s.String())
	}
}

func TestParseCategorySet(t *testing.T) {
	s, err := ParseCategorySet([]string{"Upper", " digits ", "", "upper"})
	if err != nil {
		t.Fatalf("ParseCategorySet() unexpected error: %v", err)
	}
	if s != NewCategorySet(Uppercase, Digit) {
		t.Errorf("ParseCategorySet() = %s, want upper,digit", s)
	}

	_, err = ParseCategorySet([]string{"emoji"})
	if err == nil || !strings.Contains(err.Error(), "emoji") {
		t.Errorf("ParseCategorySet() error = %v, want unknown category error", err)
	}
}
