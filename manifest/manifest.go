// Package manifest loads a YAML command manifest and exposes it as
// completion metadata. The manifest is the file-backed counterpart of a
// program's in-process command registry: per command it lists options,
// named-argument types, a short description and an optional deprecation
// date, plus a table of command aliases.
package manifest

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/shlex"
	"gopkg.in/yaml.v3"

	"github.com/tapworks/brewgen/completion"
)

type commandSpec struct {
	Description string   `yaml:"description"`
	Options     []string `yaml:"options"`
	NamedArgs   []string `yaml:"named_args"`
	Deprecated  string   `yaml:"deprecated"`
}

type document struct {
	Commands map[string]commandSpec `yaml:"commands"`
	Aliases  map[string]string      `yaml:"aliases"`
}

type command struct {
	description string
	options     []completion.Option
	namedArgs   []completion.NamedArg
}

// Manifest is a file-backed completion.Metadata. All lookups resolve
// aliases to their target command.
type Manifest struct {
	commands     map[string]command
	aliasTargets map[string]string
	aliases      []completion.Alias
	names        []string
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read command manifest: %w", err)
	}
	return Parse(data)
}

// Parse builds a Manifest from YAML. Commands whose deprecation date has
// passed are dropped, together with any aliases pointing at them; the
// remaining command names, alias names included, are sorted once here so
// generation downstream is deterministic.
func Parse(data []byte) (*Manifest, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse command manifest: %w", err)
	}

	m := &Manifest{
		commands:     make(map[string]command, len(doc.Commands)),
		aliasTargets: make(map[string]string, len(doc.Aliases)),
	}

	now := time.Now()
	for name, spec := range doc.Commands {
		if spec.Deprecated != "" {
			when, err := dateparse.ParseAny(spec.Deprecated)
			if err != nil {
				return nil, fmt.Errorf("command %s has an invalid deprecation date %q: %w", name, spec.Deprecated, err)
			}
			if !when.After(now) {
				continue
			}
		}

		cmd := command{description: spec.Description}
		for _, entry := range spec.Options {
			opt, err := parseOption(entry)
			if err != nil {
				return nil, fmt.Errorf("command %s: %w", name, err)
			}
			cmd.options = append(cmd.options, opt)
		}
		for _, tag := range spec.NamedArgs {
			if kind, ok := completion.ParseSemanticKind(tag); ok {
				cmd.namedArgs = append(cmd.namedArgs, completion.KindArg(kind))
			} else {
				cmd.namedArgs = append(cmd.namedArgs, completion.LiteralArg(tag))
			}
		}
		m.commands[name] = cmd
	}

	for alias, target := range doc.Aliases {
		if _, ok := m.commands[target]; !ok {
			continue
		}
		m.aliasTargets[alias] = target
		m.aliases = append(m.aliases, completion.Alias{Name: alias, Target: target})
	}
	sort.Slice(m.aliases, func(i, j int) bool { return m.aliases[i].Name < m.aliases[j].Name })

	m.names = make([]string, 0, len(m.commands)+len(m.aliases))
	for name := range m.commands {
		m.names = append(m.names, name)
	}
	for _, alias := range m.aliases {
		m.names = append(m.names, alias.Name)
	}
	sort.Strings(m.names)

	return m, nil
}

// parseOption splits a compact option entry like
//
//	--force 'Force the installation'
//
// into a flag name and description. Entries follow shell quoting rules so
// descriptions can hold spaces.
func parseOption(entry string) (completion.Option, error) {
	words, err := shlex.Split(entry)
	if err != nil {
		return completion.Option{}, fmt.Errorf("invalid option entry %q: %w", entry, err)
	}
	if len(words) == 0 {
		return completion.Option{}, nil
	}
	return completion.Option{Name: words[0], Description: strings.Join(words[1:], " ")}, nil
}

func (m *Manifest) resolve(name string) (command, bool) {
	if target, ok := m.aliasTargets[name]; ok {
		name = target
	}
	cmd, ok := m.commands[name]
	return cmd, ok
}

// Commands returns the sorted in-scope command names, aliases included.
func (m *Manifest) Commands() []string {
	return m.names
}

// CommandOptions returns the raw options of a command or alias.
func (m *Manifest) CommandOptions(name string) []completion.Option {
	cmd, ok := m.resolve(name)
	if !ok {
		return nil
	}
	return cmd.options
}

// NamedArgs returns the named-argument types of a command or alias.
func (m *Manifest) NamedArgs(name string) []completion.NamedArg {
	cmd, ok := m.resolve(name)
	if !ok {
		return nil
	}
	return cmd.namedArgs
}

// ShortDescription returns the one-line description of a command or alias.
func (m *Manifest) ShortDescription(name string) string {
	cmd, ok := m.resolve(name)
	if !ok {
		return ""
	}
	return cmd.description
}

// Aliases returns the alias table sorted by alias name.
func (m *Manifest) Aliases() []completion.Alias {
	return m.aliases
}
