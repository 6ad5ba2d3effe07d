// completion/zsh.go
package completion

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/ef-ds/deque"
)

// ZshGenerator renders zsh completion scripts.
type ZshGenerator struct {
	// Templates overrides the template filesystem. Nil means the
	// compiled-in templates.
	Templates fs.FS
}

func (g *ZshGenerator) Shell() string { return "zsh" }

// GenerateSubcommand emits the completion function for one command as a
// single _arguments invocation. The second return is false when the
// command is not eligible.
func (g *ZshGenerator) GenerateSubcommand(meta Metadata, command string) (string, bool) {
	if !IsEligible(meta, command) {
		return "", false
	}

	flags := NormalizeOptions(meta.CommandOptions(command))
	options := make([]Option, 0, flags.Len())
	for pair := flags.Oldest(); pair != nil; pair = pair.Next() {
		options = append(options, Option{Name: pair.Key, Description: pair.Value})
	}
	// sorted by the pair; names are unique so this is by flag name
	sort.Slice(options, func(i, j int) bool {
		if options[i].Name != options[j].Name {
			return options[i].Name < options[j].Name
		}
		return options[i].Description < options[j].Description
	})

	specs := make([]string, 0, len(options))
	for _, opt := range options {
		if strings.TrimSpace(opt.Description) == "" {
			specs = append(specs, opt.Name)
			continue
		}
		specs = append(specs, fmt.Sprintf("%s[%s]", opt.Name, FormatDescription(opt.Description)))
	}

	kinds, literals := partitionNamedArgs(meta.NamedArgs(command))
	for _, kind := range kinds {
		function, ok := zshKindHelpers[kind]
		if !ok {
			continue
		}
		specs = append(specs, fmt.Sprintf("::%s:%s", kind, function))
	}
	if len(literals) > 0 {
		specs = append(specs, fmt.Sprintf("::subcommand:(%s)", strings.Join(literals, " ")))
	}

	var script strings.Builder
	script.WriteString(fmt.Sprintf("# brew %s\n_brew_%s() {\n  _arguments \\\n", command, mangleCommand(command)))
	for i, spec := range specs {
		script.WriteString("    '" + spec + "'")
		if i < len(specs)-1 {
			script.WriteString(" \\")
		}
		script.WriteString("\n")
	}
	script.WriteString("}\n")

	return script.String(), true
}

// GenerateFile assembles the full zsh completion document: the alias
// table, one description line per non-alias command, and one completion
// function per eligible command.
func (g *ZshGenerator) GenerateFile(meta Metadata) (string, error) {
	aliases := deque.New()
	aliasNames := make(map[string]bool)
	for _, alias := range meta.Aliases() {
		aliasNames[alias.Name] = true
		aliases.PushBack(fmt.Sprintf("%s %s", quoteIfDashed(alias.Name), quoteIfDashed(alias.Target)))
	}

	descriptions := deque.New()
	functions := deque.New()
	for _, command := range meta.Commands() {
		if function, ok := g.GenerateSubcommand(meta, command); ok {
			functions.PushBack(function)
		}
		if aliasNames[command] {
			continue
		}
		description := meta.ShortDescription(command)
		if strings.TrimSpace(description) == "" {
			continue
		}
		descriptions.PushBack(fmt.Sprintf("'%s:%s'", command, FormatDescription(description)))
	}

	return renderTemplate(g.Templates, zshTemplate, map[string][]string{
		"aliases":                      drainBlocks(aliases),
		"builtin_command_descriptions": drainBlocks(descriptions),
		"completion_functions":         drainBlocks(functions),
	})
}
