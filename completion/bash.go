// completion/bash.go
package completion

import (
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strings"

	"github.com/ef-ds/deque"
)

var functionNamePattern = regexp.MustCompile(`[^A-Za-z0-9_]`)

// mangleCommand turns a command name into the suffix of its completion
// function, replacing characters bash and zsh disallow in function names.
// The mapping is stable, and command names being unique keeps it
// collision-free in practice.
func mangleCommand(command string) string {
	return functionNamePattern.ReplaceAllString(command, "_")
}

// BashGenerator renders bash completion scripts.
type BashGenerator struct {
	// Templates overrides the template filesystem. Nil means the
	// compiled-in templates.
	Templates fs.FS
}

func (g *BashGenerator) Shell() string { return "bash" }

// GenerateSubcommand emits the completion function for one command. The
// second return is false when the command is not eligible.
func (g *BashGenerator) GenerateSubcommand(meta Metadata, command string) (string, bool) {
	if !IsEligible(meta, command) {
		return "", false
	}

	flags := NormalizeOptions(meta.CommandOptions(command))
	names := make([]string, 0, flags.Len())
	for pair := flags.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	sort.Strings(names)

	var script strings.Builder
	script.WriteString(fmt.Sprintf(`_brew_%s() {
  local cur="${COMP_WORDS[COMP_CWORD]}"
  case "${cur}" in
    -*)
      __brewcomp "
      %s
      "
      return
      ;;
    *) ;;
  esac`, mangleCommand(command), strings.Join(names, "\n      ")))

	kinds, literals := partitionNamedArgs(meta.NamedArgs(command))
	for _, kind := range kinds {
		helper, ok := bashKindHelpers[kind]
		if !ok {
			continue
		}
		script.WriteString("\n  " + helper)
	}
	if len(literals) > 0 {
		script.WriteString(fmt.Sprintf("\n  __brewcomp \"%s\"", strings.Join(literals, " ")))
	}
	script.WriteString("\n}\n")

	return script.String(), true
}

// GenerateFile assembles the full bash completion document: one function
// per eligible command plus the dispatch table wiring command words to
// their functions.
func (g *BashGenerator) GenerateFile(meta Metadata) (string, error) {
	functions := deque.New()
	mappings := deque.New()
	for _, command := range meta.Commands() {
		function, ok := g.GenerateSubcommand(meta, command)
		if !ok {
			continue
		}
		functions.PushBack(function)
		mappings.PushBack(fmt.Sprintf("%s) _brew_%s ;;", command, mangleCommand(command)))
	}

	return renderTemplate(g.Templates, bashTemplate, map[string][]string{
		"completion_functions": drainBlocks(functions),
		"function_mappings":    drainBlocks(mappings),
	})
}
