// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Literate Tools Authors

// Package repository provides read access to the files of a project.
package repository

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
)

// Repository is the document source a project model is built from
type Repository interface {
	// IsFile reports whether name exists and is a regular file
	IsFile(name string) bool
	// Get opens name for reading. The caller closes the returned stream.
	Get(name string) (io.ReadCloser, error)
}

// FS is a Repository backed by an afero filesystem
type FS struct {
	fsys afero.Fs
}

var _ Repository = (*FS)(nil)

// NewFS creates a repository over the given filesystem
func NewFS(fsys afero.Fs) *FS {
	return &FS{fsys}
}

// NewOS creates a repository rooted at dir on the host filesystem
func NewOS(dir string) *FS {
	return &FS{afero.NewBasePathFs(afero.NewOsFs(), dir)}
}

// IsFile reports whether name exists and is a regular file
func (r *FS) IsFile(name string) bool {
	info, err := r.fsys.Stat(filepath.Clean(name))
	return err == nil && !info.IsDir()
}

// Get opens a file handle for the given name
func (r *FS) Get(name string) (io.ReadCloser, error) {
	name = filepath.Clean(name)

	info, err := r.fsys.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("read %s: is a directory", name)
	}

	return r.fsys.Open(name)
}
