package ngram

import "strings"

// Tokenize splits text at maximal runs of whitespace. Leading and trailing
// whitespace yields no empty tokens, and empty input yields an empty slice.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	if fields == nil {
		return []string{}
	}
	return fields
}
