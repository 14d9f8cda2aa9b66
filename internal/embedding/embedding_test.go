package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"go.uber.org/zap"
)

// newStubServer returns a server producing one index-tagged vector per input,
// so order preservation is observable.
func newStubServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/embeddings", func(w http.ResponseWriter, r *http.Request) {
		var req embedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		resp := embedResponse{Data: make([]embedData, len(req.Input))}
		for i := range req.Input {
			resp.Data[i] = embedData{Embedding: []float32{float32(i), float32(i), float32(i)}}
		}
		json.NewEncoder(w).Encode(resp)
	})
	return httptest.NewServer(mux)
}

func TestEmbedManyPreservesOrder(t *testing.T) {
	srv := newStubServer(t)
	defer srv.Close()

	g := NewGenerator(Config{Endpoint: srv.URL, Model: "test-model"}, zap.NewNop())

	texts := []string{"alpha", "beta", "gamma", ""}
	vectors, err := g.EmbedMany(context.Background(), texts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vectors) != len(texts) {
		t.Fatalf("got %d vectors, want %d", len(vectors), len(texts))
	}
	for i, v := range vectors {
		want := []float32{float32(i), float32(i), float32(i)}
		if !reflect.DeepEqual(v, want) {
			t.Errorf("vector %d = %v, want %v", i, v, want)
		}
	}
}

func TestEmbedManyEmpty(t *testing.T) {
	// No server: an empty batch must not issue a remote call.
	g := NewGenerator(Config{Endpoint: "http://unused", Model: "test-model"}, zap.NewNop())

	vectors, err := g.EmbedMany(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vectors) != 0 {
		t.Errorf("got %d vectors, want 0", len(vectors))
	}
}

func TestEmbedOneMatchesEmbedMany(t *testing.T) {
	srv := newStubServer(t)
	defer srv.Close()

	g := NewGenerator(Config{Endpoint: srv.URL, Model: "test-model"}, zap.NewNop())

	one, err := g.EmbedOne(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	many, err := g.EmbedMany(context.Background(), []string{"hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(one, many[0]) {
		t.Errorf("EmbedOne = %v, EmbedMany[0] = %v", one, many[0])
	}
}

func TestEmbedManyPropagatesAPIError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/embeddings", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid api key", http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	g := NewGenerator(Config{Endpoint: srv.URL, Model: "test-model"}, zap.NewNop())
	if _, err := g.EmbedMany(context.Background(), []string{"x"}); err == nil {
		t.Fatal("expected error to propagate")
	}
}

func TestEmbedManyCountMismatch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/embeddings", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(embedResponse{Data: []embedData{
			{Embedding: []float32{1}},
		}})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	g := NewGenerator(Config{Endpoint: srv.URL, Model: "test-model"}, zap.NewNop())
	if _, err := g.EmbedMany(context.Background(), []string{"a", "b"}); err == nil {
		t.Fatal("expected error for mismatched vector count")
	}
}

func TestDimension(t *testing.T) {
	srv := newStubServer(t)
	defer srv.Close()

	g := NewGenerator(Config{Endpoint: srv.URL, Model: "test-model", Dimension: 1536}, zap.NewNop())

	// Before any call, the configured default applies.
	if d := g.Dimension(); d != 1536 {
		t.Errorf("got dimension %d, want configured 1536", d)
	}

	if _, err := g.EmbedMany(context.Background(), []string{"x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d := g.Dimension(); d != 3 {
		t.Errorf("got dimension %d, want cached 3", d)
	}
}
