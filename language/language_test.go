// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Literate Tools Authors

package language

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/literate-tools/literate/document"
	"github.com/literate-tools/literate/repository"
)

func memRepo(t *testing.T, files ...string) repository.Repository {
	t.Helper()

	fsys := afero.NewMemMapFs()
	for _, name := range files {
		require.NoError(t, afero.WriteFile(fsys, name, []byte("content"), 0o644))
	}
	return repository.NewFS(fsys)
}

func TestRegistryPassThrough(t *testing.T) {
	registry := DefaultRegistry()
	repo := memRepo(t)

	testCases := []struct {
		name string
		doc  document.Value
	}{
		{
			name: "no language entry",
			doc: document.Mapping(
				document.Entry{Key: "build", Value: document.Scalar("make")},
			),
		},
		{
			name: "unsupported language",
			doc: document.Mapping(
				document.Entry{Key: Key, Value: document.Scalar("fortran")},
			),
		},
		{
			name: "non-scalar language entry",
			doc: document.Mapping(
				document.Entry{Key: Key, Value: document.Sequence(document.Scalar("ruby"))},
			),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			decorated, err := registry.Decorate(tc.doc, repo)
			require.NoError(t, err)
			assert.True(t, tc.doc.Equal(decorated))
		})
	}
}

func TestRubyDecoration(t *testing.T) {
	registry := DefaultRegistry()

	doc := document.Mapping(
		document.Entry{Key: Key, Value: document.Scalar("ruby")},
	)

	decorated, err := registry.Decorate(doc, memRepo(t))
	require.NoError(t, err)

	build, ok := decorated.Lookup("build")
	require.True(t, ok)
	assert.Equal(t, "rake", build.Text())

	// no Gemfile, no install default
	_, ok = decorated.Lookup("install")
	assert.False(t, ok)

	decorated, err = registry.Decorate(doc, memRepo(t, "Gemfile"))
	require.NoError(t, err)

	install, ok := decorated.Lookup("install")
	require.True(t, ok)
	assert.Equal(t, "bundle install", install.Text())
}

func TestRubyKeepsExplicitBuild(t *testing.T) {
	doc := document.Mapping(
		document.Entry{Key: Key, Value: document.Scalar("ruby")},
		document.Entry{Key: "build", Value: document.Scalar("rake spec")},
	)

	decorated, err := DefaultRegistry().Decorate(doc, memRepo(t))
	require.NoError(t, err)

	build, ok := decorated.Lookup("build")
	require.True(t, ok)
	assert.Equal(t, "rake spec", build.Text())
}

func TestGolangDecoration(t *testing.T) {
	for _, lang := range []string{"go", "golang"} {
		doc := document.Mapping(
			document.Entry{Key: Key, Value: document.Scalar(lang)},
		)

		decorated, err := DefaultRegistry().Decorate(doc, memRepo(t, "go.mod"))
		require.NoError(t, err)

		build, ok := decorated.Lookup("build")
		require.True(t, ok)
		require.Equal(t, document.KindSequence, build.Kind())
		require.Len(t, build.Items(), 2)
		assert.Equal(t, "go build ./...", build.Items()[0].Text())
		assert.Equal(t, "go test ./...", build.Items()[1].Text())

		install, ok := decorated.Lookup("install")
		require.True(t, ok)
		assert.Equal(t, "go mod download", install.Text())
	}
}

type fakeLanguage struct {
	decorated bool
}

func (f *fakeLanguage) Supported() []string { return []string{"fake"} }

func (f *fakeLanguage) Decorate(doc document.Value, _ repository.Repository) (document.Value, error) {
	f.decorated = true
	return doc, nil
}

func TestRegister(t *testing.T) {
	registry := NewRegistry()
	fake := &fakeLanguage{}
	registry.Register(fake)

	doc := document.Mapping(
		document.Entry{Key: Key, Value: document.Scalar("fake")},
	)

	_, err := registry.Decorate(doc, memRepo(t))
	require.NoError(t, err)
	assert.True(t, fake.decorated)
}
