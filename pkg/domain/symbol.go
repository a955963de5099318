package domain

import (
	"strings"
	"unicode/utf8"
)

// Symbol is an opaque token. Two symbols are equal iff their text is equal,
// and the text is also the canonical display form.
type Symbol string

const (
	// NoSymbol encodes "none" in the push slot of a transition.
	// It is never a valid input or stack symbol.
	NoSymbol Symbol = ""

	// Bottom is the bottom-of-stack marker. It is always present at the base
	// of the stack and can never be popped.
	Bottom Symbol = "⊥"
)

// String returns the display form of the symbol.
func (s Symbol) String() string {
	return string(s)
}

// IsNone reports whether s is the NoSymbol placeholder.
func (s Symbol) IsNone() bool {
	return s == NoSymbol
}

// Symbols converts a list of raw tokens into symbols.
func Symbols(tokens ...string) []Symbol {
	out := make([]Symbol, len(tokens))
	for i, t := range tokens {
		out[i] = Symbol(t)
	}
	return out
}

// String is an ordered sequence of symbols.
type String []Symbol

// NewString creates a String holding a copy of the given symbols.
func NewString(symbols ...Symbol) String {
	s := make(String, len(symbols))
	copy(s, symbols)
	return s
}

// Tokenize splits text into a String.
// With an empty separator every rune becomes a symbol; otherwise the text is
// split on sep and empty fields are dropped.
func Tokenize(text, sep string) String {
	if sep == "" {
		s := make(String, 0, utf8.RuneCountInString(text))
		for _, r := range text {
			s = append(s, Symbol(string(r)))
		}
		return s
	}

	fields := strings.Split(text, sep)
	s := make(String, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		s = append(s, Symbol(f))
	}
	return s
}

// Append adds a symbol at the end of the string.
func (s *String) Append(sym Symbol) {
	*s = append(*s, sym)
}

// Len returns the number of symbols.
func (s String) Len() int {
	return len(s)
}

// String concatenates the display forms of all symbols.
func (s String) String() string {
	var sb strings.Builder
	for _, sym := range s {
		sb.WriteString(sym.String())
	}
	return sb.String()
}

// Join concatenates the display forms using sep between symbols.
func (s String) Join(sep string) string {
	parts := make([]string, len(s))
	for i, sym := range s {
		parts[i] = sym.String()
	}
	return strings.Join(parts, sep)
}
