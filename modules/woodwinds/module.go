// Package woodwinds provides the language section: tokenization,
// deterministic placeholder embeddings and a retrieval-augmented generation
// adapter.
package woodwinds

import (
	"github.com/specialistvlad/orchestraigo/internal/registry"
	"github.com/specialistvlad/orchestraigo/internal/section"
)

// Kind is the section kind used in score files.
const Kind = "woodwinds"

// Module implements the registry.Module interface for this package.
// Retriever, when set, backs the rag mode of every instance.
type Module struct {
	Retriever Retriever
}

// Register registers the woodwinds section kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSection(Kind, &registry.RegisteredSection{
		Description: "language: tokenizer, embedding, rag",
		New: func(name string, opts section.Options) (section.Section, error) {
			w := New(name, opts)
			if m.Retriever != nil {
				w.retriever = m.Retriever
			}
			return w, nil
		},
	})
}
