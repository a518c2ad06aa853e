package analyzer

import (
	"gramkit/ngram"
)

// Pipeline cleans and tokenizes text with optional stopword removal.
type Pipeline struct {
	opts      ngram.CleanOptions
	stopwords map[string]struct{}
}

// NewPipeline creates a new Pipeline. Stopwords are matched after cleaning,
// so they only match reliably when opts.Lowercase is set.
func NewPipeline(opts ngram.CleanOptions, removeStopwords bool) *Pipeline {
	p := &Pipeline{opts: opts}
	if removeStopwords {
		p.stopwords = defaultStopwords()
	}
	return p
}

// Clean applies the pipeline's cleaning options to text.
func (p *Pipeline) Clean(text string) string {
	return ngram.CleanText(text, p.opts)
}

// Tokenize cleans text and splits it into tokens.
func (p *Pipeline) Tokenize(text string) []string {
	tokens := ngram.Tokenize(p.Clean(text))
	if len(p.stopwords) == 0 {
		return tokens
	}

	kept := tokens[:0]
	for _, tok := range tokens {
		if _, isStop := p.stopwords[tok]; isStop {
			continue
		}
		kept = append(kept, tok)
	}
	return kept
}

// CountTokens returns the number of tokens Tokenize would produce.
func (p *Pipeline) CountTokens(text string) int {
	return len(p.Tokenize(text))
}

// defaultStopwords returns a set of common English stopwords.
func defaultStopwords() map[string]struct{} {
	stops := []string{
		"a", "an", "and", "are", "as", "at", "be", "by", "for",
		"from", "has", "he", "in", "is", "it", "its", "of", "on",
		"that", "the", "to", "was", "were", "will", "with", "this",
		"have", "had", "but", "not", "you", "your", "we", "our",
		"they", "their", "she", "her", "his", "if", "or", "so",
		"no", "can", "do", "does", "did", "been", "being", "would",
		"could", "should", "may", "might", "must", "shall", "which",
		"who", "whom", "what", "when", "where", "why", "how", "all",
		"each", "every", "both", "few", "more", "most", "other",
		"some", "such", "than", "too", "very", "just", "also",
	}
	m := make(map[string]struct{}, len(stops))
	for _, s := range stops {
		m[s] = struct{}{}
	}
	return m
}
