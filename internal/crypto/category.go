package crypto

import (
	"fmt"
	"strings"
)

// Category is a class of characters a password can be drawn from.
type Category uint8

const (
	Uppercase Category = iota
	Lowercase
	Digit
	Symbol

	numCategories
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	symbolChars    = "@#$%^&*"
)

var (
	categoryChars = [numCategories]string{uppercaseChars, lowercaseChars, digitChars, symbolChars}
	categoryNames = [numCategories]string{"upper", "lower", "digit", "symbol"}
)

// Categories lists every category in enumeration order.
func Categories() []Category {
	return []Category{Uppercase, Lowercase, Digit, Symbol}
}

// Chars returns the ordered character set of the category.
func (c Category) Chars() string {
	if c >= numCategories {
		return ""
	}
	return categoryChars[c]
}

func (c Category) String() string {
	if c >= numCategories {
		return fmt.Sprintf("category(%d)", uint8(c))
	}
	return categoryNames[c]
}

// ParseCategory accepts the String form of a category plus a few common aliases.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "upper", "uppercase":
		return Uppercase, nil
	case "lower", "lowercase":
		return Lowercase, nil
	case "digit", "digits", "number", "numbers", "0-9":
		return Digit, nil
	case "symbol", "symbols":
		return Symbol, nil
	}
	return 0, fmt.Errorf("unknown character category %q", s)
}

// Classify reports which category r belongs to. It returns false for characters
// outside every category.
func Classify(r rune) (Category, bool) {
	for _, c := range Categories() {
		if strings.ContainsRune(c.Chars(), r) {
			return c, true
		}
	}
	return 0, false
}

// CategorySet is a set of categories. Iteration is always in enumeration order.
type CategorySet uint8

// AllCategories has every category enabled.
const AllCategories = CategorySet(1<<numCategories - 1)

// NewCategorySet builds a set from cats; duplicates collapse.
func NewCategorySet(cats ...Category) CategorySet {
	var s CategorySet
	for _, c := range cats {
		s = s.With(c)
	}
	return s
}

// ParseCategorySet parses category names such as "upper,digit".
func ParseCategorySet(names []string) (CategorySet, error) {
	var s CategorySet
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		c, err := ParseCategory(name)
		if err != nil {
			return 0, err
		}
		s = s.With(c)
	}
	return s, nil
}

// With returns s with c added. Unknown categories are ignored.
func (s CategorySet) With(c Category) CategorySet {
	if c >= numCategories {
		return s
	}
	return s | 1<<c
}

// Without returns s with c removed.
func (s CategorySet) Without(c Category) CategorySet {
	if c >= numCategories {
		return s
	}
	return s &^ (1 << c)
}

// Has reports whether c is in the set.
func (s CategorySet) Has(c Category) bool {
	return c < numCategories && s&(1<<c) != 0
}

// Len returns the number of categories in the set.
func (s CategorySet) Len() int {
	n := 0
	for _, c := range Categories() {
		if s.Has(c) {
			n++
		}
	}
	return n
}

// Categories returns the members of the set in enumeration order.
func (s CategorySet) Categories() []Category {
	cats := make([]Category, 0, numCategories)
	for _, c := range Categories() {
		if s.Has(c) {
			cats = append(cats, c)
		}
	}
	return cats
}

// Chars returns the union of the character sets of all members.
func (s CategorySet) Chars() string {
	var sb strings.Builder
	for _, c := range s.Categories() {
		sb.WriteString(c.Chars())
	}
	return sb.String()
}

// Names returns the String form of each member.
func (s CategorySet) Names() []string {
	cats := s.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.String()
	}
	return names
}

func (s CategorySet) String() string {
	return strings.Join(s.Names(), ",")
}
