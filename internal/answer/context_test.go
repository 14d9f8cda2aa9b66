package answer

import (
	"encoding/json"
	"testing"
)

func TestRenderContext(t *testing.T) {
	blocks := []ContextBlock{
		{ChunkID: "a", Text: "T1"},
		{ChunkID: "b", Text: "T2"},
	}
	want := "[a] T1\n\n[b] T2"
	if got := renderContext(blocks); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderContextLenientDefaults(t *testing.T) {
	blocks := []ContextBlock{
		{Text: "no id"},
		{ChunkID: "c"},
	}
	want := "[unknown] no id\n\n[c] "
	if got := renderContext(blocks); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderContextEmpty(t *testing.T) {
	if got := renderContext(nil); got != "" {
		t.Errorf("got %q, want empty string", got)
	}
}

func TestChunkIDUnmarshal(t *testing.T) {
	var b ContextBlock
	if err := json.Unmarshal([]byte(`{"chunk_id": "doc-7", "text": "x"}`), &b); err != nil {
		t.Fatalf("string chunk_id: %v", err)
	}
	if b.ChunkID != "doc-7" {
		t.Errorf("got %q, want doc-7", b.ChunkID)
	}

	if err := json.Unmarshal([]byte(`{"chunk_id": 42, "text": "x"}`), &b); err != nil {
		t.Fatalf("integer chunk_id: %v", err)
	}
	if b.ChunkID != "42" {
		t.Errorf("got %q, want 42", b.ChunkID)
	}
}
