package ngram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidArgument is returned when a size or step argument is out of range.
var ErrInvalidArgument = errors.New("invalid argument")

// NGram is an ordered tuple of consecutive tokens.
type NGram []string

// String returns the tokens joined by a single space.
func (g NGram) String() string {
	return strings.Join(g, " ")
}

// Equal reports whether g and other hold the same tokens in the same order.
func (g NGram) Equal(other NGram) bool {
	if len(g) != len(other) {
		return false
	}
	for i := range g {
		if g[i] != other[i] {
			return false
		}
	}
	return true
}

// Key returns the value-equality key of g. Each token is written with its
// byte length as a prefix, so distinct n-grams never share a key even when
// their tokens contain spaces or separators.
func (g NGram) Key() Key {
	var b strings.Builder
	for _, tok := range g {
		b.WriteString(strconv.Itoa(len(tok)))
		b.WriteByte(':')
		b.WriteString(tok)
	}
	return Key(b.String())
}

// Key identifies an NGram by value. Use it wherever an n-gram must be a map
// key.
type Key string

// NGram decodes k. It panics if k was not produced by NGram.Key.
func (k Key) NGram() NGram {
	g, err := k.Decode()
	if err != nil {
		panic(err)
	}
	return g
}

// Decode parses k back into its n-gram.
func (k Key) Decode() (NGram, error) {
	s := string(k)
	g := NGram{}
	for len(s) > 0 {
		sep := strings.IndexByte(s, ':')
		if sep < 0 {
			return nil, fmt.Errorf("malformed key %q: missing length separator", string(k))
		}
		size, err := strconv.Atoi(s[:sep])
		if err != nil || size < 0 {
			return nil, fmt.Errorf("malformed key %q: bad token length %q", string(k), s[:sep])
		}
		s = s[sep+1:]
		if size > len(s) {
			return nil, fmt.Errorf("malformed key %q: token overruns key", string(k))
		}
		g = append(g, s[:size])
		s = s[size:]
	}
	return g, nil
}

// String renders the decoded n-gram, or the raw key if it is malformed.
func (k Key) String() string {
	g, err := k.Decode()
	if err != nil {
		return string(k)
	}
	return g.String()
}

// GenerateNGrams returns every contiguous n-token window of tokens, left to
// right. It returns len(tokens)-n+1 n-grams, or none when tokens is shorter
// than n. Each n-gram owns its backing array.
func GenerateNGrams(tokens []string, n int) ([]NGram, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n must be at least 1, got %d", ErrInvalidArgument, n)
	}
	if len(tokens) < n {
		return []NGram{}, nil
	}

	grams := make([]NGram, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		g := make(NGram, n)
		copy(g, tokens[i:i+n])
		grams = append(grams, g)
	}
	return grams, nil
}

// NGramsToStrings renders each n-gram with NGram.String, preserving order.
func NGramsToStrings(grams []NGram) []string {
	out := make([]string, len(grams))
	for i, g := range grams {
		out[i] = g.String()
	}
	return out
}
