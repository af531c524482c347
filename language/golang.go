// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Literate Tools Authors

package language

import (
	"github.com/literate-tools/literate/document"
	"github.com/literate-tools/literate/repository"
)

// Golang decorates go projects with a conventional build-and-test command
// list, and a module download task when the project carries a go.mod
type Golang struct{}

var _ Language = Golang{}

// Supported returns the language names handled by this decorator
func (Golang) Supported() []string {
	return []string{"go", "golang"}
}

// Decorate fills in the conventional go build when the document declares
// none of its own
func (Golang) Decorate(doc document.Value, repo repository.Repository) (document.Value, error) {
	if _, ok := doc.Lookup("build"); !ok {
		doc = doc.WithEntry("build", document.Sequence(
			document.Scalar("go build ./..."),
			document.Scalar("go test ./..."),
		))
	}

	if _, ok := doc.Lookup("install"); !ok && repo.IsFile("go.mod") {
		doc = doc.WithEntry("install", document.Scalar("go mod download"))
	}

	return doc, nil
}
