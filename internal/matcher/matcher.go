// Package matcher resolves free-text axis labels to the section that carries
// the same heading, ignoring superficial Arabic orthographic variation.
package matcher

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const (
	alef        = 'ا'
	alefMadda   = 'آ'
	alefHamza   = 'أ'
	alefHamzaLo = 'إ'
	alefMaqsura = 'ى'
	yeh         = 'ي'
)

// unifyAlef maps the hamza/madda carrying Alef forms onto the bare Alef.
var unifyAlef = runes.Map(func(r rune) rune {
	switch r {
	case alefMadda, alefHamza, alefHamzaLo:
		return alef
	}
	return r
})

// dropSpace deletes every whitespace rune, including the BOM which browsers
// also treat as whitespace.
var dropSpace = runes.Remove(runes.Predicate(isSpace))

var maqsuraToYeh = runes.Map(func(r rune) rune {
	if r == alefMaqsura {
		return yeh
	}
	return r
})

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// Normalize returns the canonical form of a label. The result is only meant
// for equality comparison and is never shown to a user.
//
// Steps run in a fixed order: Alef unification, whitespace removal,
// Alef Maqsura to Yeh, and a final trim.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	// A fresh chain per call: transform.Chain keeps internal buffers and is
	// not safe for concurrent use.
	t := transform.Chain(unifyAlef, dropSpace, maqsuraToYeh)
	out, _, _ := transform.String(t, text)
	return strings.TrimFunc(out, isSpace)
}

// Equivalent reports whether two labels share a canonical form.
func Equivalent(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// FindMatchingSection scans sections in order and returns the first one whose
// heading normalizes to the same canonical form as label. heading reports the
// heading of a section; an absent heading should be returned as "".
//
// The second result is false when nothing matches. That is the common case
// for stray clicks and is not an error.
func FindMatchingSection[S any](label string, sections []S, heading func(S) string) (S, bool) {
	i, ok := find(Normalize(label), len(sections), func(i int) string {
		return heading(sections[i])
	})
	if !ok {
		var zero S
		return zero, false
	}
	return sections[i], true
}

// Index is FindMatchingSection over plain headings. It returns the position
// of the first matching heading, or -1 and false.
func Index(label string, headings []string) (int, bool) {
	return find(Normalize(label), len(headings), func(i int) string {
		return headings[i]
	})
}

func find(canonical string, n int, heading func(int) string) (int, bool) {
	for i := 0; i < n; i++ {
		if Normalize(heading(i)) == canonical {
			return i, true
		}
	}
	return -1, false
}
