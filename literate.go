// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Literate Tools Authors

// Package literate builds project models from literate build documents.
//
// A repository's marker file (".<basename>.yml", falling back to
// ".travis.yml") is parsed into a generic value tree, decorated with
// language-specific defaults, and compiled into the normalized build model:
// the environment matrix, per-environment build commands, and named tasks.
package literate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/literate-tools/literate/compiler"
	"github.com/literate-tools/literate/document"
	"github.com/literate-tools/literate/repository"
	"github.com/literate-tools/literate/schema"
)

// ErrModelNotFound is returned when a repository contains no recognized
// marker file
var ErrModelNotFound = errors.New("not a literate project")

// Build locates the marker document in repo, parses and decorates it, and
// compiles it into a project model.
//
// The first marker file present wins. No partial model is returned on
// failure.
func Build(ctx context.Context, repo repository.Repository, req Request) (*schema.ProjectModel, error) {
	req = req.withDefaults()
	logger := log.FromContext(ctx)

	for _, name := range req.MarkerFiles() {
		if !repo.IsFile(name) {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		logger.Debug("building model", "marker", name, "build-ids", req.BuildIDs)

		rc, err := repo.Get(name)
		if err != nil {
			return nil, err
		}
		defer rc.Close()

		doc, err := document.Parse(rc)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}

		doc, err = req.Languages.Decorate(doc, repo)
		if err != nil {
			return nil, fmt.Errorf("failed to decorate %s: %w", name, err)
		}

		c := compiler.New(req.BuildIDList(), req.EnvironmentsKey, req.EnvvarsKey)
		model, err := c.Compile(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to compile %s: %w", name, err)
		}

		logger.Debug("built model",
			"marker", name,
			"environments", len(model.Environments()),
			"tasks", len(model.TaskNames()))

		return model, nil
	}

	return nil, fmt.Errorf("%w: no marker file among [%s]", ErrModelNotFound, strings.Join(req.MarkerFiles(), ", "))
}
