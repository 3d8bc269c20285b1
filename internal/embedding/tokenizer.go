// Package embedding builds deterministic TF-IDF pseudo-embeddings for
// catalog text. Vectors are a hashed projection of TF-IDF weights, so they
// need no external provider and are reproducible bit-for-bit given the same
// IDF snapshot.
package embedding

import "strings"

// Tokenize lowercases text, replaces every character outside [a-z0-9 ] with
// a space, and splits on whitespace runs. Empty tokens are dropped.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return ' '
	}, lowered)
	return strings.Fields(cleaned)
}
