// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Literate Tools Authors

package literate

import (
	"cmp"
	"strings"

	"github.com/literate-tools/literate/language"
)

const (
	// DefaultBaseName is the default marker file base name
	DefaultBaseName = "cloudbees"
	// DefaultBuildIDs is the default build id configuration string
	DefaultBuildIDs = "build"
	// DefaultEnvironmentsKey is the default environments section key
	DefaultEnvironmentsKey = "environments"
	// DefaultEnvvarsKey is the default environment variables section key
	DefaultEnvvarsKey = "env"
)

// Request configures how a project model is built from a repository
//
// The zero Request is valid, every field falls back to its default
type Request struct {
	// BaseName names the preferred marker file ".<BaseName>.yml"
	BaseName string
	// BuildIDs is a comma or space delimited list of top-level keys whose
	// values are build commands rather than tasks
	BuildIDs string
	// EnvironmentsKey is the top-level key of the environments section
	EnvironmentsKey string
	// EnvvarsKey is the top-level key of the environment variables section
	EnvvarsKey string
	// Languages resolves language decorators, defaults to the built-ins
	Languages *language.Registry
}

func (r Request) withDefaults() Request {
	r.BaseName = cmp.Or(r.BaseName, DefaultBaseName)
	r.BuildIDs = cmp.Or(r.BuildIDs, DefaultBuildIDs)
	r.EnvironmentsKey = cmp.Or(r.EnvironmentsKey, DefaultEnvironmentsKey)
	r.EnvvarsKey = cmp.Or(r.EnvvarsKey, DefaultEnvvarsKey)
	if r.Languages == nil {
		r.Languages = language.DefaultRegistry()
	}
	return r
}

// MarkerFiles returns the candidate marker file names in resolution order
func (r Request) MarkerFiles() []string {
	base := cmp.Or(r.BaseName, DefaultBaseName)
	return []string{"." + base + ".yml", ".travis.yml"}
}

// BuildIDList splits the build id configuration string into individual ids
func (r Request) BuildIDList() []string {
	ids := strings.FieldsFunc(cmp.Or(r.BuildIDs, DefaultBuildIDs), func(c rune) bool {
		return c == ',' || c == ' '
	})
	return ids
}
