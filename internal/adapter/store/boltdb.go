package store

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"go.etcd.io/bbolt"
	"gramkit/internal/domain"
	"gramkit/internal/port"
	"gramkit/ngram"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

var (
	bucketDocs     = []byte("docs")
	bucketDocGrams = []byte("doc_grams")
	bucketGrams    = []byte("grams")
	bucketStats    = []byte("stats")
	keyStats       = []byte("corpus_stats")
)

var _ port.IndexStore = (*BoltStore)(nil)

// BoltStore keeps n-gram counts in bbolt. The grams bucket holds one nested
// bucket per n-gram size mapping ngram.Key to a big-endian uint64 count;
// doc_grams keeps each document's own counts so they can be subtracted when
// the document changes or disappears.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketDocs, bucketDocGrams, bucketGrams, bucketStats} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

type docMeta struct {
	Path    string `json:"path"`
	ModTime int64  `json:"mod_time"`
	Tokens  int    `json:"tokens"`
	Chunks  int    `json:"chunks"`
}

func sizeBucketName(size int) []byte {
	return []byte(strconv.Itoa(size))
}

func encodeCount(n uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, n)
	return buf
}

func decodeCount(data []byte) uint64 {
	if len(data) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(data)
}

// PutDocument stores a document and adds its n-gram counts to the corpus
// totals. A document already stored under the same ID is replaced.
func (s *BoltStore) PutDocument(doc domain.Document, chunks int, freqs map[int]ngram.Frequencies) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := deleteDocTx(tx, doc.ID); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}

		meta, err := json.Marshal(docMeta{
			Path:    doc.Path,
			ModTime: doc.ModTime.Unix(),
			Tokens:  doc.Tokens,
			Chunks:  chunks,
		})
		if err != nil {
			return err
		}
		if err := tx.Bucket(bucketDocs).Put([]byte(doc.ID), meta); err != nil {
			return err
		}

		grams, err := json.Marshal(freqs)
		if err != nil {
			return err
		}
		if err := tx.Bucket(bucketDocGrams).Put([]byte(doc.ID), grams); err != nil {
			return err
		}

		return applyCounts(tx, freqs, 1)
	})
}

// DeleteDocument removes a document and subtracts its counts from the totals.
func (s *BoltStore) DeleteDocument(id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return deleteDocTx(tx, id)
	})
}

func deleteDocTx(tx *bbolt.Tx, id string) error {
	docs := tx.Bucket(bucketDocs)
	if docs.Get([]byte(id)) == nil {
		return fmt.Errorf("document %s: %w", id, ErrNotFound)
	}

	docGrams := tx.Bucket(bucketDocGrams)
	if data := docGrams.Get([]byte(id)); data != nil {
		var freqs map[int]ngram.Frequencies
		if err := json.Unmarshal(data, &freqs); err != nil {
			return fmt.Errorf("decode counts for %s: %w", id, err)
		}
		if err := applyCounts(tx, freqs, -1); err != nil {
			return err
		}
		if err := docGrams.Delete([]byte(id)); err != nil {
			return err
		}
	}

	return docs.Delete([]byte(id))
}

// applyCounts adds (sign 1) or subtracts (sign -1) freqs from the totals,
// dropping entries that reach zero.
func applyCounts(tx *bbolt.Tx, freqs map[int]ngram.Frequencies, sign int) error {
	grams := tx.Bucket(bucketGrams)
	for size, f := range freqs {
		b, err := grams.CreateBucketIfNotExists(sizeBucketName(size))
		if err != nil {
			return err
		}
		for key, count := range f {
			current := int64(decodeCount(b.Get([]byte(key))))
			next := current + int64(sign*count)
			if next <= 0 {
				if err := b.Delete([]byte(key)); err != nil {
					return err
				}
				continue
			}
			if err := b.Put([]byte(key), encodeCount(uint64(next))); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *BoltStore) GetDoc(id string) (domain.Document, error) {
	var doc domain.Document
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketDocs).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("document %s: %w", id, ErrNotFound)
		}
		var meta docMeta
		if err := json.Unmarshal(data, &meta); err != nil {
			return err
		}
		doc = meta.document(id)
		return nil
	})
	return doc, err
}

func (s *BoltStore) ListDocs() ([]domain.Document, error) {
	var docs []domain.Document
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketDocs).ForEach(func(k, v []byte) error {
			var meta docMeta
			if err := json.Unmarshal(v, &meta); err != nil {
				return err
			}
			docs = append(docs, meta.document(string(k)))
			return nil
		})
	})
	return docs, err
}

// DocChunks returns the number of chunks recorded for a document.
func (s *BoltStore) DocChunks(id string) (int, error) {
	var chunks int
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketDocs).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("document %s: %w", id, ErrNotFound)
		}
		var meta docMeta
		if err := json.Unmarshal(data, &meta); err != nil {
			return err
		}
		chunks = meta.Chunks
		return nil
	})
	return chunks, err
}

func (m docMeta) document(id string) domain.Document {
	return domain.Document{
		ID:      id,
		Path:    m.Path,
		ModTime: time.Unix(m.ModTime, 0),
		Tokens:  m.Tokens,
	}
}

// GramCount returns the corpus count of g among n-grams of the given size.
func (s *BoltStore) GramCount(size int, g ngram.NGram) (int, error) {
	var count int
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketGrams).Bucket(sizeBucketName(size))
		if b == nil {
			return nil
		}
		count = int(decodeCount(b.Get([]byte(g.Key()))))
		return nil
	})
	return count, err
}

// Frequencies loads every stored count for one n-gram size.
func (s *BoltStore) Frequencies(size int) (ngram.Frequencies, error) {
	freqs := ngram.Frequencies{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketGrams).Bucket(sizeBucketName(size))
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			freqs[ngram.Key(k)] = int(decodeCount(v))
			return nil
		})
	})
	return freqs, err
}

// Sizes returns the n-gram sizes that have stored counts, ascending.
func (s *BoltStore) Sizes() ([]int, error) {
	var sizes []int
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketGrams).ForEach(func(k, v []byte) error {
			if v != nil {
				return nil
			}
			n, err := strconv.Atoi(string(k))
			if err != nil {
				return fmt.Errorf("unexpected bucket %q in grams: %w", k, err)
			}
			sizes = append(sizes, n)
			return nil
		})
	})
	// bbolt iterates keys in byte order, which puts "10" before "2".
	slices.Sort(sizes)
	return sizes, err
}

// TopGrams returns at most k n-grams of the given size with a count of at
// least minCount, most frequent first.
func (s *BoltStore) TopGrams(size, k, minCount int) ([]domain.GramCount, error) {
	freqs, err := s.Frequencies(size)
	if err != nil {
		return nil, err
	}

	var out []domain.GramCount
	for _, e := range freqs.Entries() {
		if e.Count < minCount || (k > 0 && len(out) == k) {
			break
		}
		out = append(out, domain.GramCount{Size: size, Text: e.NGram.String(), Count: e.Count})
	}
	return out, nil
}

func (s *BoltStore) GetStats() (domain.Stats, error) {
	var stats domain.Stats
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketStats).Get(keyStats)
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &stats)
	})
	return stats, err
}

func (s *BoltStore) UpdateStats(stats domain.Stats) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketStats).Put(keyStats, data)
	})
}
