package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gramkit/internal/adapter/fs"
	"gramkit/internal/adapter/store"
	"gramkit/internal/domain"
	"gramkit/internal/port"
	"gramkit/ngram"
)

// ProgressFunc is called after each file with the number of files processed
// so far, the total, and the file just handled.
type ProgressFunc func(processed, total int, currentFile string)

// IndexUseCase handles file indexing operations.
type IndexUseCase struct {
	store     *store.BoltStore
	walker    port.FileWalker
	chunker   port.Chunker
	tokenizer port.Tokenizer
	sizes     []int
	logger    *zap.Logger
}

// NewIndexUseCase creates a new index use case counting n-grams of the given
// sizes.
func NewIndexUseCase(
	store *store.BoltStore,
	walker port.FileWalker,
	chunker port.Chunker,
	tokenizer port.Tokenizer,
	sizes []int,
	logger *zap.Logger,
) *IndexUseCase {
	return &IndexUseCase{
		store:     store,
		walker:    walker,
		chunker:   chunker,
		tokenizer: tokenizer,
		sizes:     sizes,
		logger:    logger,
	}
}

// IndexResult contains the results of an indexing operation.
type IndexResult struct {
	FilesIndexed  int
	FilesSkipped  int
	FilesDeleted  int
	ChunksCreated int
	Errors        []string
}

// Index indexes files in the given directory. Files whose modification time
// has not advanced since the last run are skipped, and documents whose files
// are gone are removed along with their counts.
func (u *IndexUseCase) Index(ctx context.Context, root string, progress ProgressFunc) (*IndexResult, error) {
	result := &IndexResult{}

	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}
	u.logger.Debug("walked corpus", zap.String("root", root), zap.Int("files", len(files)))

	existingDocs, err := u.store.ListDocs()
	if err != nil {
		return nil, fmt.Errorf("failed to list existing docs: %w", err)
	}

	existingMap := make(map[string]domain.Document, len(existingDocs))
	for _, doc := range existingDocs {
		existingMap[doc.Path] = doc
	}

	seenPaths := make(map[string]bool, len(files))
	var stats domain.Stats

	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		seenPaths[file.Path] = true

		if existing, ok := existingMap[file.Path]; ok && existing.ModTime.Unix() >= file.ModTime {
			result.FilesSkipped++
			chunks, err := u.store.DocChunks(existing.ID)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("failed to read stored chunks for %s: %v", file.Path, err))
			}
			stats.TotalChunks += chunks
			stats.TotalTokens += existing.Tokens
		} else {
			doc, chunks, err := u.indexFile(file)
			if err != nil {
				u.logger.Warn("failed to index file", zap.String("path", file.Path), zap.Error(err))
				result.Errors = append(result.Errors, fmt.Sprintf("failed to index %s: %v", file.Path, err))
				if ok {
					// Stale counts would outlive the file's new content.
					if err := u.store.DeleteDocument(existing.ID); err != nil {
						result.Errors = append(result.Errors, fmt.Sprintf("failed to delete old data for %s: %v", file.Path, err))
					}
				}
			} else {
				result.FilesIndexed++
				result.ChunksCreated += chunks
				stats.TotalChunks += chunks
				stats.TotalTokens += doc.Tokens
			}
		}

		if progress != nil {
			progress(i+1, len(files), file.Path)
		}
	}

	for path, doc := range existingMap {
		if seenPaths[path] {
			continue
		}
		if err := u.store.DeleteDocument(doc.ID); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to delete %s: %v", path, err))
			continue
		}
		u.logger.Debug("removed vanished document", zap.String("path", path))
		result.FilesDeleted++
	}

	stats.TotalDocs = result.FilesIndexed + result.FilesSkipped
	if err := u.store.UpdateStats(stats); err != nil {
		return nil, fmt.Errorf("failed to update stats: %w", err)
	}

	u.logger.Info("index updated",
		zap.Int("indexed", result.FilesIndexed),
		zap.Int("skipped", result.FilesSkipped),
		zap.Int("deleted", result.FilesDeleted),
		zap.Int("chunks", result.ChunksCreated),
		zap.Int("errors", len(result.Errors)))

	return result, nil
}

// indexFile tokenizes one file, counts n-grams chunk by chunk and stores the
// document with its counts.
func (u *IndexUseCase) indexFile(file port.FileInfo) (domain.Document, int, error) {
	content, err := fs.ReadFile(file.Path)
	if err != nil {
		return domain.Document{}, 0, fmt.Errorf("failed to read file: %w", err)
	}

	tokens := u.tokenizer.Tokenize(content)
	doc := domain.Document{
		ID:      generateDocID(file.Path),
		Path:    file.Path,
		ModTime: time.Unix(file.ModTime, 0),
		Tokens:  len(tokens),
	}

	chunks, err := u.chunker.Chunk(doc, tokens)
	if err != nil {
		return domain.Document{}, 0, fmt.Errorf("failed to chunk content: %w", err)
	}

	freqs := make(map[int]ngram.Frequencies, len(u.sizes))
	for _, n := range u.sizes {
		total := ngram.Frequencies{}
		for _, chunk := range chunks {
			grams, err := ngram.GenerateNGrams(chunk.Tokens, n)
			if err != nil {
				return domain.Document{}, 0, err
			}
			total.Merge(ngram.CountFrequencies(grams))
		}
		freqs[n] = total
	}

	if err := u.store.PutDocument(doc, len(chunks), freqs); err != nil {
		return domain.Document{}, 0, fmt.Errorf("failed to store document: %w", err)
	}

	return doc, len(chunks), nil
}

// generateDocID creates a unique ID for a document based on its path.
func generateDocID(path string) string {
	hash := sha256.Sum256([]byte(path))
	return hex.EncodeToString(hash[:8])
}
