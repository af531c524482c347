// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Literate Tools Authors

package language

import (
	"github.com/literate-tools/literate/document"
	"github.com/literate-tools/literate/repository"
)

// Ruby decorates ruby projects with conventional defaults: a rake build
// command, and a bundler install task when the project carries a Gemfile
type Ruby struct{}

var _ Language = Ruby{}

// Supported returns the language names handled by this decorator
func (Ruby) Supported() []string {
	return []string{"ruby"}
}

// Decorate fills in the conventional ruby build when the document declares
// none of its own
func (Ruby) Decorate(doc document.Value, repo repository.Repository) (document.Value, error) {
	if _, ok := doc.Lookup("build"); !ok {
		doc = doc.WithEntry("build", document.Scalar("rake"))
	}

	if _, ok := doc.Lookup("install"); !ok && repo.IsFile("Gemfile") {
		doc = doc.WithEntry("install", document.Scalar("bundle install"))
	}

	return doc, nil
}
