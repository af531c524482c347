// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Literate Tools Authors

package cmd

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

func printCommands(logger *log.Logger, commands []string) {
	for _, command := range commands {
		printCommand(logger, command)
	}
}

func printCommand(logger *log.Logger, command string) {
	command = strings.TrimSpace(command)

	if termenv.EnvNoColor() {
		// this is essentially the same rendering as make
		logger.Printf("    %s", command)
		return
	}

	var buf strings.Builder
	style := "tokyonight-day"
	if lipgloss.HasDarkBackground() {
		style = "tokyonight-moon"
	}
	if err := quick.Highlight(&buf, command, "shell", "terminal256", style); err != nil {
		logger.Debugf("failed to highlight: %v", err)
		logger.Printf("    %s", command)
		return
	}

	for line := range strings.SplitSeq(buf.String(), "\n") {
		if line == "" {
			continue
		}
		logger.Printf("    %s", line)
	}
}
