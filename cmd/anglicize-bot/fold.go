package main

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldMarks strips combining marks from the characters the transliteration
// table does not cover, so "Việt" loses its tone mark here after the
// engine passed it through.
func foldMarks(str string) string {
	result, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), str)
	if err != nil {
		return str
	}

	return result
}
