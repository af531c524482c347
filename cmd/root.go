// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Literate Tools Authors

// Package cmd provides the root command for the literate CLI.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/literate-tools/literate"
	configv0 "github.com/literate-tools/literate/config/v0"
	"github.com/literate-tools/literate/repository"
	"github.com/literate-tools/literate/schema"
)

// NewRootCmd creates the root command for the literate CLI.
func NewRootCmd() *cobra.Command {
	var (
		level           string
		ver             bool
		dir             string
		output          = OutputText // VarP does not allow you to set a default value
		configPath      string
		printSchema     bool
		baseName        string
		buildIDs        string
		environmentsKey string
		envvarsKey      string
	)

	var cfg *configv0.Config // cfg is not set via CLI flag

	loadConfig := func(cmd *cobra.Command) error {
		switch {
		case cmd.Flags().Changed("config"):
			f, err := os.Open(configPath)
			if err != nil {
				return fmt.Errorf("failed to open config file: %w", err)
			}
			defer f.Close()
			cfg, err = configv0.LoadConfig(f)
			if err != nil {
				return fmt.Errorf("failed to load config file: %w", err)
			}
		case os.Getenv("LITERATE_CONFIG") != "":
			f, err := os.Open(os.Getenv("LITERATE_CONFIG"))
			if err != nil {
				return fmt.Errorf("failed to open config file: %w", err)
			}
			defer f.Close()
			cfg, err = configv0.LoadConfig(f)
			if err != nil {
				return fmt.Errorf("failed to load config file: %w", err)
			}
		default:
			var err error
			cfg, err = configv0.LoadDefaultConfig()
			if err != nil {
				return err
			}
		}
		return nil
	}

	root := &cobra.Command{
		Use:   "literate",
		Short: "Compile literate build documents into project models",
		Example: `
literate

literate -C ../my-project -o json

literate --build-ids "build, script" --envvars-key env
`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := log.ParseLevel(level)
			if err != nil {
				return err
			}
			logger := log.FromContext(cmd.Context())
			logger.SetLevel(l)

			return loadConfig(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if ver {
				bi, ok := debug.ReadBuildInfo()
				if !ok {
					return fmt.Errorf("version information not available")
				}
				fmt.Fprintln(cmd.OutOrStdout(), bi.Main.Version)
				return nil
			}

			if printSchema {
				b, err := json.MarshalIndent(configv0.Schema(), "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}

			// default < config file < flags
			req := cfg.ToRequest()
			if cmd.Flags().Changed("base-name") {
				req.BaseName = baseName
			}
			if cmd.Flags().Changed("build-ids") {
				req.BuildIDs = buildIDs
			}
			if cmd.Flags().Changed("environments-key") {
				req.EnvironmentsKey = environmentsKey
			}
			if cmd.Flags().Changed("envvars-key") {
				req.EnvvarsKey = envvarsKey
			}

			repo := repository.NewOS(dir)

			model, err := literate.Build(ctx, repo, req)
			if err != nil {
				return err
			}

			switch output {
			case OutputJSON:
				b, err := json.MarshalIndent(model, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
			case OutputYAML:
				b, err := yaml.MarshalWithOptions(model, yaml.Indent(2), yaml.IndentSequence(true))
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), string(b))
			case OutputText:
				printModel(log.FromContext(ctx), model)
			default:
				return fmt.Errorf("unsupported output format: %q", output)
			}

			return nil
		},
	}

	root.Flags().StringVarP(&level, "log-level", "l", "info", "Set log level")
	_ = root.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{log.DebugLevel.String(), log.InfoLevel.String(), log.WarnLevel.String(), log.ErrorLevel.String(), log.FatalLevel.String()}, cobra.ShellCompDirectiveNoFileComp
	})
	root.Flags().BoolVarP(&ver, "version", "V", false, "Print version number and exit")
	root.Flags().StringVarP(&dir, "directory", "C", ".", "Project directory to build the model from")
	_ = root.MarkFlagDirname("directory")
	root.Flags().VarP(&output, "output", "o", fmt.Sprintf(`Output format ("%s")`, strings.Join(AvailableFormats(), `", "`)))
	_ = root.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return AvailableFormats(), cobra.ShellCompDirectiveNoFileComp
	})
	root.Flags().StringVar(&configPath, "config", "${HOME}/.literate/config.yaml", "Path to literate config file") // mirrors config.DefaultDirectory
	_ = root.MarkFlagFilename("config", "yaml", "yml")
	root.Flags().BoolVar(&printSchema, "schema", false, "Print the config file JSON schema and exit")
	root.Flags().StringVar(&baseName, "base-name", literate.DefaultBaseName, "Marker file base name, resolved as .<base-name>.yml")
	root.Flags().StringVar(&buildIDs, "build-ids", literate.DefaultBuildIDs, "Comma or space delimited top-level keys treated as build commands")
	root.Flags().StringVar(&environmentsKey, "environments-key", literate.DefaultEnvironmentsKey, "Top-level key of the environments section")
	root.Flags().StringVar(&envvarsKey, "envvars-key", literate.DefaultEnvvarsKey, "Top-level key of the environment variables section")

	return root
}

func printModel(logger *log.Logger, model *schema.ProjectModel) {
	logger.Print(HeaderStyle.Render("environments"))
	for _, env := range model.Environments() {
		line := "  " + env.String()
		vars := env.Variables()
		if len(vars) > 0 {
			line += "  " + FaintStyle.Render(fmt.Sprintf("%d variable(s)", len(vars)))
		}
		logger.Print(line)
	}

	logger.Print(HeaderStyle.Render("build"))
	build := model.Build()
	for _, env := range build.Environments() {
		commands, _ := build.Get(env)
		logger.Printf("  %s", env)
		printCommands(logger, commands)
	}

	logger.Print(HeaderStyle.Render("tasks"))
	for _, name := range model.TaskNames() {
		commands, _ := model.Task(name)
		logger.Printf("  %s", Green.Render(name))
		printCommands(logger, commands)
	}
}

// Main executes the root command for the literate CLI.
//
// It returns 0 on success, 1 on failure and logs any errors.
func Main() int {
	cli := NewRootCmd()

	ctx := context.Background()

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer cancel()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	logger.SetStyles(DefaultStyles())

	ctx = log.WithContext(ctx, logger)
	if err := cli.ExecuteContext(ctx); err != nil {
		logger.Error(err)
		return 1
	}

	return 0
}
