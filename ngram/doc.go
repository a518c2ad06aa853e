// Package ngram provides text-processing primitives for n-gram analysis.
//
// The functions are pure and keep no state between calls:
//   - CleanText lowercases text, strips punctuation and collapses whitespace
//   - Tokenize splits text on runs of whitespace
//   - GenerateNGrams builds contiguous n-token tuples from a token slice
//   - NGramsToStrings renders n-grams as space-joined strings
//   - CountFrequencies counts n-grams by value
//   - SlidingWindow lazily yields fixed-size windows over any slice
//
// Used together they form the pipeline
//
//	CleanText -> Tokenize -> GenerateNGrams -> NGramsToStrings / CountFrequencies
//
// NGram values are slices and therefore cannot be map keys directly. Every
// NGram has a Key that is equal for two n-grams iff their tokens are equal,
// and Frequencies is keyed by it.
package ngram
