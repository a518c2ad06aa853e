package port

import (
	"gramkit/internal/domain"
	"gramkit/ngram"
)

type IndexStore interface {
	PutDocument(doc domain.Document, chunks int, freqs map[int]ngram.Frequencies) error

	GetDoc(id string) (domain.Document, error)

	DeleteDocument(id string) error

	ListDocs() ([]domain.Document, error)

	GramCount(size int, g ngram.NGram) (int, error)

	TopGrams(size, k, minCount int) ([]domain.GramCount, error)

	GetStats() (domain.Stats, error)

	UpdateStats(stats domain.Stats) error

	Close() error
}
