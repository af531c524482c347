// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Literate Tools Authors

package schema

import (
	"encoding/json"
	"slices"
)

// CommandMap maps execution environments to ordered command lists.
//
// Environments are registered in insertion order and compared by identity
// (label set plus variables), not by label declaration order. Appending to a
// registered environment accumulates, it never replaces.
type CommandMap struct {
	order    []ExecutionEnvironment
	commands map[string][]string
}

// NewCommandMap creates an empty command map
func NewCommandMap() *CommandMap {
	return &CommandMap{commands: map[string][]string{}}
}

// Append registers env if needed and appends commands to its list.
//
// Appending zero commands still registers the environment, so every matrix
// environment appears as a key once any build id consulted it.
func (m *CommandMap) Append(env ExecutionEnvironment, commands ...string) {
	k := env.key()
	if _, ok := m.commands[k]; !ok {
		m.order = append(m.order, env)
		m.commands[k] = []string{}
	}
	m.commands[k] = append(m.commands[k], commands...)
}

// Get returns the command list for env.
// The second return is false if env was never registered.
func (m *CommandMap) Get(env ExecutionEnvironment) ([]string, bool) {
	commands, ok := m.commands[env.key()]
	return slices.Clone(commands), ok
}

// Environments returns the registered environments in insertion order
func (m *CommandMap) Environments() []ExecutionEnvironment {
	return slices.Clone(m.order)
}

// Len returns the number of registered environments
func (m *CommandMap) Len() int { return len(m.order) }

// ProjectModel is the normalized build model compiled from a literate
// document: the build matrix, the per-environment build commands, and the
// named environment-agnostic tasks.
//
// A model is immutable once built.
type ProjectModel struct {
	environments []ExecutionEnvironment
	build        *CommandMap
	tasks        map[string][]string
	taskOrder    []string
}

// Environments returns the build matrix in declaration order
func (m *ProjectModel) Environments() []ExecutionEnvironment {
	return slices.Clone(m.environments)
}

// Build returns the per-environment build command map
func (m *ProjectModel) Build() *CommandMap { return m.build }

// Task returns the command list for a named task.
// The second return is false if no such task exists.
func (m *ProjectModel) Task(name string) ([]string, bool) {
	commands, ok := m.tasks[name]
	return slices.Clone(commands), ok
}

// TaskNames returns the task names in document declaration order
func (m *ProjectModel) TaskNames() []string {
	return slices.Clone(m.taskOrder)
}

// Builder assembles a ProjectModel
type Builder struct {
	model ProjectModel
}

// NewBuilder creates a model builder with an empty build map
func NewBuilder() *Builder {
	return &Builder{model: ProjectModel{
		build: NewCommandMap(),
		tasks: map[string][]string{},
	}}
}

// AddEnvironments appends environments to the build matrix
func (b *Builder) AddEnvironments(envs ...ExecutionEnvironment) *Builder {
	b.model.environments = append(b.model.environments, envs...)
	return b
}

// SetBuild replaces the build command map
func (b *Builder) SetBuild(build *CommandMap) *Builder {
	b.model.build = build
	return b
}

// AddTask records a named task, replacing any previous task with the same name
func (b *Builder) AddTask(name string, commands []string) *Builder {
	if _, ok := b.model.tasks[name]; !ok {
		b.model.taskOrder = append(b.model.taskOrder, name)
	}
	b.model.tasks[name] = slices.Clone(commands)
	return b
}

// Build returns the assembled model
func (b *Builder) Build() *ProjectModel {
	model := b.model
	return &model
}

type environmentView struct {
	Labels    []string          `json:"labels" yaml:"labels"`
	Variables map[string]string `json:"variables,omitempty" yaml:"variables,omitempty"`
}

type buildView struct {
	Environment environmentView `json:"environment" yaml:"environment"`
	Commands    []string        `json:"commands" yaml:"commands"`
}

type modelView struct {
	Environments []environmentView   `json:"environments" yaml:"environments"`
	Build        []buildView         `json:"build" yaml:"build"`
	Tasks        map[string][]string `json:"tasks" yaml:"tasks"`
}

func (m *ProjectModel) view() modelView {
	view := modelView{
		Environments: make([]environmentView, 0, len(m.environments)),
		Build:        make([]buildView, 0, m.build.Len()),
		Tasks:        make(map[string][]string, len(m.tasks)),
	}
	for _, env := range m.environments {
		view.Environments = append(view.Environments, environmentView{
			Labels:    env.Labels(),
			Variables: env.variables,
		})
	}
	for _, env := range m.build.Environments() {
		commands, _ := m.build.Get(env)
		view.Build = append(view.Build, buildView{
			Environment: environmentView{Labels: env.Labels(), Variables: env.variables},
			Commands:    commands,
		})
	}
	for name, commands := range m.tasks {
		view.Tasks[name] = commands
	}
	return view
}

// MarshalJSON implements json.Marshaler.
// The build map serializes as an array to keep environment order stable.
func (m *ProjectModel) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.view())
}

// MarshalYAML implements yaml.InterfaceMarshaler for goccy/go-yaml
func (m *ProjectModel) MarshalYAML() (any, error) {
	return m.view(), nil
}
