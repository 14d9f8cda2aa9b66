package answer

import (
	"encoding/json"
	"strings"
)

// ContextBlock is a retrieved passage plus its identifying metadata, supplied
// by the retrieval layer. Extra metadata fields are ignored here.
type ContextBlock struct {
	ChunkID ChunkID `json:"chunk_id"`
	Text    string  `json:"text"`
}

// ChunkID is an opaque identifier. Retrieval layers disagree on its wire
// type, so JSON decoding accepts both strings and integers.
type ChunkID string

func (c *ChunkID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = ChunkID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = ChunkID(n.String())
	return nil
}

// renderContext formats blocks as "[chunk_id] text" lines joined by blank
// lines, preserving input order. Missing fields degrade leniently rather
// than erroring: an absent chunk_id becomes "unknown", absent text becomes
// the empty string.
func renderContext(blocks []ContextBlock) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		id := string(b.ChunkID)
		if id == "" {
			id = "unknown"
		}
		parts = append(parts, "["+id+"] "+b.Text)
	}
	return strings.Join(parts, "\n\n")
}
