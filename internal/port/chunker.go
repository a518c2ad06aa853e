package port

import "gramkit/internal/domain"

type Chunker interface {
	Chunk(doc domain.Document, tokens []string) ([]domain.Chunk, error)
}
