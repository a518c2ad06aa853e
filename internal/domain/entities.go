package domain

import "time"

type Document struct {
	ID      string
	Path    string
	ModTime time.Time
	Tokens  int
}

// Chunk is a window of a document's tokens. Start and End are token offsets,
// End exclusive.
type Chunk struct {
	ID     string
	DocID  string
	Index  int
	Start  int
	End    int
	Tokens []string
}

type GramCount struct {
	Size  int    `json:"size"`
	Text  string `json:"text"`
	Count int    `json:"count"`
}

type Stats struct {
	TotalDocs   int `json:"total_docs"`
	TotalChunks int `json:"total_chunks"`
	TotalTokens int `json:"total_tokens"`
}

// Report lists the most frequent n-grams per size.
type Report struct {
	Sizes []int               `json:"sizes"`
	TopK  int                 `json:"top_k"`
	Stats Stats               `json:"stats"`
	Grams map[int][]GramCount `json:"grams"`
}
