package woodwinds

import (
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/specialistvlad/orchestraigo/internal/ctxlog"
	"github.com/specialistvlad/orchestraigo/internal/section"
)

// Mode selects the pipeline a Woodwinds runs on Perform.
type Mode string

const (
	ModeTokenizer Mode = "tokenizer"
	ModeEmbedding Mode = "embedding"
	ModeRAG       Mode = "rag"
)

const (
	defaultSampleText = "Hello from Woodwinds."
	defaultQuery      = "What is orchestraigo?"
	defaultEmbedDim   = 8
	retrieveK         = 3
)

var defaultSampleTexts = []string{"Harmony between models."}

// Document is one retrieved context passage.
type Document struct {
	ID    string
	Text  string
	Score float64
}

// Retriever finds context documents for a query.
type Retriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]Document, error)
}

// Analysis is the result of Analyze.
type Analysis struct {
	NumTokens int
	Preview   []string
}

// Woodwinds handles language and semantic processing.
type Woodwinds struct {
	name      string
	mode      Mode
	requested string
	dim       int
	retriever Retriever
}

// New builds a Woodwinds. Options: mode, embedding_dim.
func New(name string, opts section.Options) *Woodwinds {
	w := &Woodwinds{name: name, dim: opts.Int("embedding_dim", defaultEmbedDim)}
	switch m := Mode(opts.String("mode", string(ModeTokenizer))); m {
	case ModeTokenizer, ModeEmbedding, ModeRAG:
		w.mode = m
	default:
		w.mode = ModeTokenizer
		w.requested = string(m)
	}
	if w.dim < 1 {
		w.dim = defaultEmbedDim
	}
	return w
}

// Name returns the instance name.
func (w *Woodwinds) Name() string { return w.name }

// Mode returns the active mode.
func (w *Woodwinds) Mode() Mode { return w.mode }

// Tokenize splits text on whitespace.
func (w *Woodwinds) Tokenize(ctx context.Context, text string) []string {
	tokens := strings.Fields(text)
	w.logger(ctx).Info("Tokenized.", "tokens", len(tokens))
	return tokens
}

// Embed returns one deterministic vector per text. Components are in [0,1)
// and derived from an xxhash of the text and the component index, so equal
// texts always embed identically.
func (w *Woodwinds) Embed(ctx context.Context, texts ...string) [][]float64 {
	out := make([][]float64, len(texts))
	var idx [8]byte
	for i, t := range texts {
		vec := make([]float64, w.dim)
		for j := range vec {
			d := xxhash.New()
			_, _ = d.WriteString(t)
			binary.LittleEndian.PutUint64(idx[:], uint64(j))
			_, _ = d.Write(idx[:])
			vec[j] = float64(d.Sum64()%997) / 997
		}
		out[i] = vec
	}
	w.logger(ctx).Info("Generated embeddings.", "count", len(out), "dim", w.dim)
	return out
}

// Analyze tokenizes text and previews the first ten tokens.
func (w *Woodwinds) Analyze(ctx context.Context, text string) Analysis {
	tokens := w.Tokenize(ctx, text)
	a := Analysis{NumTokens: len(tokens), Preview: tokens[:min(len(tokens), 10)]}
	w.logger(ctx).Info("Analysis.", "num_tokens", a.NumTokens, "preview", a.Preview)
	return a
}

// Retrieve returns up to k documents for query. Without a retriever the
// result is empty.
func (w *Woodwinds) Retrieve(ctx context.Context, query string, k int) ([]Document, error) {
	w.logger(ctx).Info("retrieve()", "query", query, "k", k)
	if w.retriever == nil {
		return nil, nil
	}
	docs, err := w.retriever.Retrieve(ctx, query, k)
	if err != nil {
		return nil, fmt.Errorf("retrieve %q: %w", query, err)
	}
	if len(docs) > k {
		docs = docs[:k]
	}
	return docs, nil
}

// Generate answers query from the retrieved context.
func (w *Woodwinds) Generate(ctx context.Context, query string, docs []Document) string {
	w.logger(ctx).Info("generate()", "context_docs", len(docs))
	return "[Stub] Answer based on query: " + query
}

// Perform runs the pipeline of the active mode.
func (w *Woodwinds) Perform(ctx context.Context, score section.Score) error {
	logger := w.logger(ctx)
	if w.requested != "" {
		logger.Warn("Unsupported mode. Defaulting to 'tokenizer'.", "requested", w.requested)
	}
	logger.Info("Performing.", "mode", w.mode)

	switch w.mode {
	case ModeEmbedding:
		w.Embed(ctx, score.Strings("sample_texts", defaultSampleTexts)...)
	case ModeRAG:
		query := score.String("query", defaultQuery)
		docs, err := w.Retrieve(ctx, query, retrieveK)
		if err != nil {
			return err
		}
		logger.Info("Answer.", "text", w.Generate(ctx, query, docs))
	default:
		w.Tokenize(ctx, score.String("sample_text", defaultSampleText))
	}

	ctxlog.Success(ctx, logger, "Section completed performance.")
	return nil
}

func (w *Woodwinds) logger(ctx context.Context) *slog.Logger {
	return ctxlog.FromContext(ctx).With("section", w.name, "kind", Kind)
}
