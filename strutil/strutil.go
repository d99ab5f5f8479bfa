// Package strutil supplies the string normalization helpers the standard
// library lacks: ASCII-only case mapping, whitespace condensing, last-match
// replacement and erasure, balanced-surround stripping, and delimiter-set
// splitting.
package strutil

import (
	"strings"
	"unicode"
)

// DefaultDelimiters is the delimiter set used by Split: whitespace, commas,
// semicolons, and colons.
const DefaultDelimiters = "\t,;: "

// UpperASCII returns s with ASCII lowercase letters upper-cased. All other
// bytes, including non-ASCII sequences, are left untouched. It is a cheap
// alternative to strings.ToUpper when inputs are known to be ASCII.
func UpperASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - ('a' - 'A')
		}

		return r
	}, s)
}

// LowerASCII returns s with ASCII uppercase letters lower-cased. All other
// bytes, including non-ASCII sequences, are left untouched.
func LowerASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}

		return r
	}, s)
}

// ReplaceSpace returns s with every contiguous whitespace run replaced by
// with, and leading/trailing whitespace removed.
func ReplaceSpace(s, with string) string {
	return strings.Join(strings.Fields(s), with)
}

// Condense collapses each contiguous whitespace run in s to a single space
// and trims the ends:
//
//	Condense("    Hello   World!  ") == "Hello World!"
func Condense(s string) string {
	return ReplaceSpace(s, " ")
}

// ReplaceLast returns s with the final occurrence of target replaced.
// The standard library only offers first-N replacement.
func ReplaceLast(s, target, replacement string) string {
	p := strings.LastIndex(s, target)
	if p < 0 {
		return s
	}

	return s[:p] + replacement + s[p+len(target):]
}

// EraseFirst returns s with the first occurrence of target removed.
func EraseFirst(s, target string) string {
	return strings.Replace(s, target, "", 1)
}

// EraseLast returns s with the final occurrence of target removed.
func EraseLast(s, target string) string {
	return ReplaceLast(s, target, "")
}

// EraseAll returns s with every occurrence of target removed.
func EraseAll(s, target string) string {
	return strings.ReplaceAll(s, target, "")
}

// RemoveSurrounds strips balanced surrounding pairs from s, repeatedly, so
// "(text)" and "<<<text>>>" both reduce to "text". The recognized pairs are
// (), [], {}, <>, and any identical leading/trailing character. Stripping
// stops as soon as the first character is alphanumeric or the ends do not
// match.
func RemoveSurrounds(s string) string {
	for len(s) > 1 {
		first := s[0]
		if isAlnum(first) {
			return s
		}

		last := s[len(s)-1]

		var match bool

		switch first {
		case '(':
			match = last == ')'
		case '[':
			match = last == ']'
		case '{':
			match = last == '}'
		case '<':
			match = last == '>'
		default:
			match = last == first
		}

		if !match {
			return s
		}

		s = s[1 : len(s)-1]
	}

	return s
}

// Standardize normalizes a string for loose comparisons: whitespace is
// condensed, ASCII letters are upper-cased, balanced surrounds are stripped,
// and the ends are trimmed again:
//
//	Standardize("[ hallo   world ]  ") == "HALLO WORLD"
func Standardize(s string) string {
	s = Condense(s)
	s = UpperASCII(s)
	s = RemoveSurrounds(s)

	return strings.TrimSpace(s)
}

// SplitAny tokenizes s on every character in delims, dropping empty tokens
// (consecutive delimiters produce nothing).
func SplitAny(s, delims string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(delims, r)
	})
}

// Split tokenizes s on the DefaultDelimiters set:
//
//	Split("Hello, World") == []string{"Hello", "World"}
func Split(s string) []string {
	return SplitAny(s, DefaultDelimiters)
}

// isAlnum reports whether b is an ASCII letter or digit.
func isAlnum(b byte) bool {
	return unicode.IsLetter(rune(b)) || unicode.IsDigit(rune(b))
}
