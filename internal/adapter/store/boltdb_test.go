package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"gramkit/config"
	"gramkit/internal/domain"
	"gramkit/ngram"
)

func openStore(t *testing.T) *BoltStore {
	t.Helper()
	st, err := NewBoltStore(filepath.Join(t.TempDir(), "index.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func countsFor(t *testing.T, text string, sizes ...int) map[int]ngram.Frequencies {
	t.Helper()
	tokens := ngram.Tokenize(ngram.Clean(text))
	out := make(map[int]ngram.Frequencies, len(sizes))
	for _, n := range sizes {
		grams, err := ngram.GenerateNGrams(tokens, n)
		if err != nil {
			t.Fatal(err)
		}
		out[n] = ngram.CountFrequencies(grams)
	}
	return out
}

func TestPutDocumentAccumulates(t *testing.T) {
	st := openStore(t)

	docA := domain.Document{ID: "a", Path: "/a.txt", ModTime: time.Unix(100, 0), Tokens: 4}
	docB := domain.Document{ID: "b", Path: "/b.txt", ModTime: time.Unix(200, 0), Tokens: 3}

	if err := st.PutDocument(docA, 1, countsFor(t, "the cat the cat", 1, 2)); err != nil {
		t.Fatal(err)
	}
	if err := st.PutDocument(docB, 1, countsFor(t, "the cat sat", 1, 2)); err != nil {
		t.Fatal(err)
	}

	count, err := st.GramCount(2, ngram.NGram{"the", "cat"})
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Errorf("expected 'the cat' count 3, got %d", count)
	}

	got, err := st.GetDoc("a")
	if err != nil {
		t.Fatal(err)
	}
	if got.Path != "/a.txt" || got.ModTime.Unix() != 100 || got.Tokens != 4 {
		t.Errorf("unexpected document: %+v", got)
	}

	docs, err := st.ListDocs()
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Errorf("expected 2 documents, got %d", len(docs))
	}
}

func TestPutDocumentReplaces(t *testing.T) {
	st := openStore(t)
	doc := domain.Document{ID: "a", Path: "/a.txt"}

	if err := st.PutDocument(doc, 1, countsFor(t, "old words here", 1)); err != nil {
		t.Fatal(err)
	}
	if err := st.PutDocument(doc, 2, countsFor(t, "new words", 1)); err != nil {
		t.Fatal(err)
	}

	if c, _ := st.GramCount(1, ngram.NGram{"old"}); c != 0 {
		t.Errorf("expected replaced document counts to be removed, got %d", c)
	}
	if c, _ := st.GramCount(1, ngram.NGram{"words"}); c != 1 {
		t.Errorf("expected 'words' count 1, got %d", c)
	}
	if chunks, _ := st.DocChunks("a"); chunks != 2 {
		t.Errorf("expected 2 chunks recorded, got %d", chunks)
	}
}

func TestDeleteDocument(t *testing.T) {
	st := openStore(t)

	if err := st.PutDocument(domain.Document{ID: "a"}, 1, countsFor(t, "x y", 1)); err != nil {
		t.Fatal(err)
	}
	if err := st.PutDocument(domain.Document{ID: "b"}, 1, countsFor(t, "y z", 1)); err != nil {
		t.Fatal(err)
	}

	if err := st.DeleteDocument("a"); err != nil {
		t.Fatal(err)
	}

	freqs, err := st.Frequencies(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(freqs) != 2 || freqs.Count(ngram.NGram{"y"}) != 1 || freqs.Count(ngram.NGram{"x"}) != 0 {
		t.Errorf("unexpected counts after delete: %v", freqs)
	}

	if _, err := st.GetDoc("a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := st.DeleteDocument("a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestTopGrams(t *testing.T) {
	st := openStore(t)

	if err := st.PutDocument(domain.Document{ID: "a"}, 1, countsFor(t, "a b a b a c", 1)); err != nil {
		t.Fatal(err)
	}

	top, err := st.TopGrams(1, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 results, got %d", len(top))
	}
	if top[0].Text != "a" || top[0].Count != 3 || top[1].Text != "b" || top[1].Count != 2 {
		t.Errorf("unexpected ranking: %+v", top)
	}

	top, err = st.TopGrams(1, 10, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 2 {
		t.Errorf("expected min count to drop 'c', got %+v", top)
	}

	if top, _ := st.TopGrams(5, 10, 1); len(top) != 0 {
		t.Errorf("expected no results for unindexed size, got %+v", top)
	}
}

func TestSizes(t *testing.T) {
	st := openStore(t)

	if err := st.PutDocument(domain.Document{ID: "a"}, 1, countsFor(t, "a b c d e f g h i j k", 10, 2, 1)); err != nil {
		t.Fatal(err)
	}

	sizes, err := st.Sizes()
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 2, 10}
	if len(sizes) != len(want) {
		t.Fatalf("expected sizes %v, got %v", want, sizes)
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Errorf("expected sizes %v, got %v", want, sizes)
		}
	}
}

func TestStats(t *testing.T) {
	st := openStore(t)

	stats := domain.Stats{TotalDocs: 2, TotalChunks: 5, TotalTokens: 900}
	if err := st.UpdateStats(stats); err != nil {
		t.Fatal(err)
	}
	got, err := st.GetStats()
	if err != nil {
		t.Fatal(err)
	}
	if got != stats {
		t.Errorf("expected %+v, got %+v", stats, got)
	}
}

func TestMigrationAndClear(t *testing.T) {
	st := openStore(t)
	cfg := config.DefaultConfig()

	result, err := st.CheckMigration(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !result.NeedsMigration || result.NeedsRebuild {
		t.Errorf("expected fresh store to need migration only, got %+v", result)
	}

	if err := st.Migrate(cfg); err != nil {
		t.Fatal(err)
	}
	if result, _ := st.CheckMigration(cfg); result.NeedsMigration || result.NeedsRebuild {
		t.Errorf("expected migrated store to be current, got %+v", result)
	}

	changed := config.DefaultConfig()
	changed.Clean.Lowercase = false
	if result, _ := st.CheckMigration(changed); !result.NeedsRebuild {
		t.Error("expected clean option change to require a rebuild")
	}

	if err := st.PutDocument(domain.Document{ID: "a"}, 1, countsFor(t, "x", 1)); err != nil {
		t.Fatal(err)
	}
	if err := st.UpdateStats(domain.Stats{TotalDocs: 1}); err != nil {
		t.Fatal(err)
	}
	if err := st.Clear(); err != nil {
		t.Fatal(err)
	}

	if docs, _ := st.ListDocs(); len(docs) != 0 {
		t.Errorf("expected no documents after clear, got %d", len(docs))
	}
	if sizes, _ := st.Sizes(); len(sizes) != 0 {
		t.Errorf("expected no counts after clear, got sizes %v", sizes)
	}
	if stats, _ := st.GetStats(); stats != (domain.Stats{}) {
		t.Errorf("expected zero stats after clear, got %+v", stats)
	}
	info, err := st.GetSchemaInfo()
	if err != nil {
		t.Fatal(err)
	}
	if info.Version != CurrentSchemaVersion || info.ConfigHash != ComputeConfigHash(cfg) {
		t.Errorf("expected schema info to survive clear, got %+v", info)
	}
}
