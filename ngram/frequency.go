package ngram

import (
	"cmp"
	"slices"
)

// Frequencies maps n-grams, by Key, to their occurrence counts. Iteration
// order is that of a Go map and carries no meaning.
type Frequencies map[Key]int

// Entry is one row of a frequency table.
type Entry struct {
	NGram NGram
	Count int
}

// CountFrequencies counts how often each distinct n-gram occurs in grams.
// The counts sum to len(grams).
func CountFrequencies(grams []NGram) Frequencies {
	freqs := make(Frequencies, len(grams))
	for _, g := range grams {
		freqs[g.Key()]++
	}
	return freqs
}

// Add records one more occurrence of g.
func (f Frequencies) Add(g NGram) {
	f[g.Key()]++
}

// Count returns the number of occurrences of g.
func (f Frequencies) Count(g NGram) int {
	return f[g.Key()]
}

// Total returns the sum of all counts.
func (f Frequencies) Total() int {
	total := 0
	for _, c := range f {
		total += c
	}
	return total
}

// Merge adds every count in other to f.
func (f Frequencies) Merge(other Frequencies) {
	for k, c := range other {
		f[k] += c
	}
}

// Entries returns all rows ordered by count descending, ties broken by the
// rendered n-gram ascending.
func (f Frequencies) Entries() []Entry {
	type row struct {
		entry Entry
		text  string
	}
	rows := make([]row, 0, len(f))
	for k, c := range f {
		g := k.NGram()
		rows = append(rows, row{entry: Entry{NGram: g, Count: c}, text: g.String()})
	}
	slices.SortFunc(rows, func(a, b row) int {
		if a.entry.Count != b.entry.Count {
			return cmp.Compare(b.entry.Count, a.entry.Count)
		}
		return cmp.Compare(a.text, b.text)
	})

	entries := make([]Entry, len(rows))
	for i, r := range rows {
		entries[i] = r.entry
	}
	return entries
}

// Top returns at most k entries in Entries order. k <= 0 returns all of them.
func (f Frequencies) Top(k int) []Entry {
	entries := f.Entries()
	if k > 0 && k < len(entries) {
		entries = entries[:k]
	}
	return entries
}
