// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Literate Tools Authors

// Package compiler turns a parsed document tree into a project build model.
//
// Compilation is a pure, synchronous tree transformation: it expands the
// environments section into the build matrix, merges declared environment
// variables into every environment, extracts per-environment build commands
// for each configured build id, and partitions the remaining top-level
// entries into named tasks.
package compiler

import (
	"errors"
	"fmt"
	"slices"

	"github.com/literate-tools/literate/document"
	"github.com/literate-tools/literate/schema"
)

var (
	// ErrMalformedDocument is returned when the document's top level is not
	// a mapping
	ErrMalformedDocument = errors.New("malformed document")
	// ErrMalformedEnvSpec is returned when an environment variable
	// declaration cannot be parsed
	ErrMalformedEnvSpec = errors.New("malformed environment variable spec")
)

// Compiler compiles documents against a fixed set of section keys.
//
// A Compiler is stateless after construction and safe for concurrent use
// across independent documents.
type Compiler struct {
	buildIDs        []string            // declaration order, drives build map accumulation order
	buildIDSet      map[string]struct{} // membership, order-independent
	environmentsKey string
	envvarsKey      string
}

// New creates a Compiler for the given build ids and section keys.
//
// Build ids keep their declared order for build-map accumulation; membership
// tests use a set, so callers may pass ids in any order.
func New(buildIDs []string, environmentsKey, envvarsKey string) *Compiler {
	set := make(map[string]struct{}, len(buildIDs))
	for _, id := range buildIDs {
		set[id] = struct{}{}
	}
	return &Compiler{
		buildIDs:        slices.Clone(buildIDs),
		buildIDSet:      set,
		environmentsKey: environmentsKey,
		envvarsKey:      envvarsKey,
	}
}

// Compile builds the project model from a parsed document.
//
// The document's top level must be a mapping. No partial model is returned
// on failure.
func (c *Compiler) Compile(doc document.Value) (*schema.ProjectModel, error) {
	if doc.Kind() != document.KindMapping {
		return nil, fmt.Errorf("%w: top level is a %s, expected a mapping", ErrMalformedDocument, doc.Kind())
	}

	envSection, _ := doc.Lookup(c.environmentsKey)
	environments := ExpandEnvironments(envSection)

	varsSection, _ := doc.Lookup(c.envvarsKey)
	vars, err := MergeEnvVars(varsSection)
	if err != nil {
		return nil, err
	}

	// decorate every environment, even when the variable map is empty
	decorated := make([]schema.ExecutionEnvironment, 0, len(environments))
	for _, env := range environments {
		decorated = append(decorated, env.WithVariables(vars))
	}

	build := schema.NewCommandMap()
	for _, id := range c.buildIDs {
		section, ok := doc.Lookup(id)
		if !ok {
			continue
		}
		// consult the full matrix, not just matching environments, so every
		// environment appears in the build map once any build id is present
		for _, env := range decorated {
			build.Append(env, Commands(section, env)...)
		}
	}

	builder := schema.NewBuilder().
		AddEnvironments(decorated...).
		SetBuild(build)

	for _, entry := range doc.Entries() {
		if _, ok := c.buildIDSet[entry.Key]; ok {
			continue
		}
		builder.AddTask(entry.Key, Commands(entry.Value, schema.Any()))
	}

	return builder.Build(), nil
}
