// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Literate Tools Authors

// Package config provides system-level configuration for literate
package config

import (
	"os"
	"path/filepath"
)

// DefaultFileName is the default file name for the config file
const DefaultFileName = "config.yaml"

// DefaultDirectory returns the default directory for literate configuration
// ($HOME/.literate)
//
// Currently this relies upon the $HOME environment variable being set
func DefaultDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".literate"), nil
}
