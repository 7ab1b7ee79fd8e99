package anglicize

import (
	"bytes"
	"strings"
)

// Capitalization of multi-letter spellings cannot be decided one character
// at a time: Щ is a single capital letter but spells "Sch", which is wrong
// inside an ALL-CAPS word. The first title-shaped spelling of a run is
// therefore held back until the next item shows whether the word continues
// in capitals (re-case the whole run upper) or not (keep Title-Case).
// Literal spaces may bridge words of one ALL-CAPS phrase.

// holdXlat routes a spelling produced by the matcher through the
// capitalization state machine.
func (a *Anglicize) holdXlat(xlat string) {
	if a.caps {
		if len(a.held) > 0 {
			if isTitle(xlat) {
				// Two capitalized spellings in a row: the run
				// is ALL-CAPS from here on.
				word := append(a.held, xlat...)
				a.held = nil
				a.out = append(a.out, bytes.ToUpper(word)...)

				return
			}

			a.out = append(a.out, a.held...)
			a.held = nil
		} else if isTitle(xlat) {
			a.out = append(a.out, strings.ToUpper(xlat)...)

			return
		}

		a.caps = false
		a.out = append(a.out, xlat...)

		return
	}

	if isTitle(xlat) {
		a.caps = true
		a.held = append([]byte(nil), xlat...)

		return
	}

	a.out = append(a.out, xlat...)
}

// holdByte routes a literal byte through the capitalization state machine.
func (a *Anglicize) holdByte(b byte) {
	if a.caps {
		if len(a.held) > 0 {
			if b == ' ' {
				a.held = append(a.held, b)

				return
			}

			a.caps = false
			a.out = append(a.out, a.held...)
			a.held = nil
		} else if b != ' ' {
			a.caps = false
		}
	}

	a.out = append(a.out, b)
}

// isTitle reports whether a spelling is title-shaped: an uppercase Latin
// letter followed only by lowercase ones. Spellings with a second capital
// (the Greek diphthong ΟΥ -> "OU") or no letters at all bypass the
// capitalization layer.
func isTitle(s string) bool {
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return false
	}

	for i := 1; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}

	return true
}
