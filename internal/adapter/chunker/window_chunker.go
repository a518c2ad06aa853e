package chunker

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"gramkit/internal/domain"
	"gramkit/ngram"
)

// WindowChunker splits a token sequence into fixed-size windows. N-grams are
// generated per chunk, so they never span two chunks; a step smaller than
// the size makes chunks overlap and counts the shared n-grams once per chunk.
type WindowChunker struct {
	size int
	step int
}

func NewWindowChunker(size, step int) (*WindowChunker, error) {
	if size < 1 || step < 1 {
		return nil, fmt.Errorf("%w: window size %d and step %d must be at least 1", ngram.ErrInvalidArgument, size, step)
	}
	return &WindowChunker{size: size, step: step}, nil
}

// Chunk windows tokens with ngram.SlidingWindow. When the full windows leave
// tokens at the end uncovered, the tokens from the next window offset onward
// form a final, shorter chunk.
func (c *WindowChunker) Chunk(doc domain.Document, tokens []string) ([]domain.Chunk, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	windows, err := ngram.SlidingWindow(tokens, c.size, c.step)
	if err != nil {
		return nil, err
	}

	var chunks []domain.Chunk
	start, covered := 0, 0
	for window := range windows {
		chunks = append(chunks, newChunk(doc.ID, len(chunks), start, window))
		covered = start + c.size
		start += c.step
	}

	if covered < len(tokens) && start < len(tokens) {
		tail := make([]string, len(tokens)-start)
		copy(tail, tokens[start:])
		chunks = append(chunks, newChunk(doc.ID, len(chunks), start, tail))
	}

	return chunks, nil
}

func newChunk(docID string, index, start int, tokens []string) domain.Chunk {
	end := start + len(tokens)
	return domain.Chunk{
		ID:     generateChunkID(docID, start, end),
		DocID:  docID,
		Index:  index,
		Start:  start,
		End:    end,
		Tokens: tokens,
	}
}

func generateChunkID(docID string, start, end int) string {
	data := fmt.Sprintf("%s:%d-%d", docID, start, end)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:8])
}
