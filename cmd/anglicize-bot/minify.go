package main

import (
	"github.com/tdewolff/minify/v2"
	mjson "github.com/tdewolff/minify/v2/json"
)

// minifyJson keeps callback data compact; telegram limits it to 64 bytes.
func minifyJson(input []byte) string {
	m := minify.New()
	m.AddFunc("application/json", mjson.Minify)

	output, err := m.Bytes("application/json", input)
	if err != nil {
		return string(input)
	}

	return string(output)
}
