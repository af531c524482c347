// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Literate Tools Authors

// Package language rewrites parsed documents with language-specific defaults
// before model compilation.
package language

import (
	"slices"

	"github.com/literate-tools/literate/document"
	"github.com/literate-tools/literate/repository"
)

// Key is the top-level document key naming the project language
const Key = "language"

// Language decorates a document with defaults for one or more languages
type Language interface {
	// Supported returns the language names this decorator handles
	Supported() []string
	// Decorate returns a rewritten copy of the document. It may consult the
	// repository, e.g. to check for a dependency manifest.
	Decorate(doc document.Value, repo repository.Repository) (document.Value, error)
}

// Registry resolves decorators by language name
type Registry struct {
	languages []Language
}

// NewRegistry creates a registry with the given decorators
func NewRegistry(languages ...Language) *Registry {
	return &Registry{languages: languages}
}

// DefaultRegistry returns a registry with the built-in decorators
func DefaultRegistry() *Registry {
	return NewRegistry(Ruby{}, Golang{})
}

// Register appends a decorator to the registry
func (r *Registry) Register(l Language) {
	r.languages = append(r.languages, l)
}

// Decorate applies the first decorator supporting the document's declared
// language, resolved by a linear scan over the registry.
//
// Documents without a scalar language entry, or with a language no decorator
// supports, pass through unchanged.
func (r *Registry) Decorate(doc document.Value, repo repository.Repository) (document.Value, error) {
	lang, ok := doc.Lookup(Key)
	if !ok || lang.Kind() != document.KindScalar {
		return doc, nil
	}

	for _, l := range r.languages {
		if slices.Contains(l.Supported(), lang.Text()) {
			return l.Decorate(doc, repo)
		}
	}

	return doc, nil
}
