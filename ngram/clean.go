package ngram

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CleanOptions controls CleanText. The zero value disables both steps; use
// DefaultCleanOptions for the usual behavior.
type CleanOptions struct {
	// Lowercase case-folds the text before any other step.
	Lowercase bool `yaml:"lowercase" json:"lowercase"`
	// RemovePunctuation deletes every rune that is not a letter, a number,
	// an underscore or whitespace.
	RemovePunctuation bool `yaml:"remove_punctuation" json:"remove_punctuation"`
}

// DefaultCleanOptions returns options with both Lowercase and
// RemovePunctuation enabled.
func DefaultCleanOptions() CleanOptions {
	return CleanOptions{
		Lowercase:         true,
		RemovePunctuation: true,
	}
}

// Clean is CleanText with DefaultCleanOptions.
func Clean(text string) string {
	return CleanText(text, DefaultCleanOptions())
}

// CleanText normalizes text. Lowercasing runs first, then punctuation
// removal, then every run of whitespace collapses to a single space and the
// result is trimmed.
func CleanText(text string, opts CleanOptions) string {
	if text == "" {
		return ""
	}

	if opts.Lowercase {
		// A Caser is stateful, so one is built per call.
		text = cases.Lower(language.Und).String(text)
	}

	if opts.RemovePunctuation {
		text = strings.Map(func(r rune) rune {
			if isWordRune(r) || unicode.IsSpace(r) {
				return r
			}
			return -1
		}, text)
	}

	return strings.Join(strings.Fields(text), " ")
}

// isWordRune reports whether r is a letter, a number or an underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
