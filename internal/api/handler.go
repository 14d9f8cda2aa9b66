package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/mkrall/ragline/internal/answer"
	"github.com/mkrall/ragline/internal/embedding"
	"go.uber.org/zap"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	embedder    *embedding.Generator
	synthesizer *answer.Synthesizer
	logger      *zap.Logger
}

// NewHandler creates a new API handler.
func NewHandler(embedder *embedding.Generator, synthesizer *answer.Synthesizer, logger *zap.Logger) *Handler {
	return &Handler{
		embedder:    embedder,
		synthesizer: synthesizer,
		logger:      logger,
	}
}

// Router builds the chi router with all routes.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.healthCheck)
		r.Post("/embed", h.embed)
		r.Post("/answer", h.answerQuestion)
	})

	return r
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"provider": h.synthesizer.Provider(),
	})
}

type embedRequest struct {
	Texts []string `json:"texts"`
}

type embedResponse struct {
	Vectors [][]float32 `json:"vectors"`
	Count   int         `json:"count"`
}

// embed runs the embedding pipeline path: failures propagate to the caller
// as errors rather than degrading.
func (h *Handler) embed(w http.ResponseWriter, r *http.Request) {
	var req embedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	vectors, err := h.embedder.EmbedMany(r.Context(), req.Texts)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, embedResponse{Vectors: vectors, Count: len(vectors)})
}

type answerRequest struct {
	Question      string                `json:"question"`
	ContextBlocks []answer.ContextBlock `json:"context_blocks"`
}

type answerResponse struct {
	AnswerID string `json:"answer_id"`
	Provider string `json:"provider"`
	Answer   string `json:"answer"`
}

// answerQuestion runs the user-facing path: the synthesizer always yields a
// string, so this handler only ever fails on a malformed request body.
func (h *Handler) answerQuestion(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	id := uuid.New().String()
	text := h.synthesizer.Synthesize(r.Context(), req.Question, req.ContextBlocks)
	h.logger.Info("answered question",
		zap.String("answer_id", id),
		zap.Int("context_blocks", len(req.ContextBlocks)))

	writeJSON(w, http.StatusOK, answerResponse{
		AnswerID: id,
		Provider: h.synthesizer.Provider(),
		Answer:   text,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
