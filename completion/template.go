package completion

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/ef-ds/deque"
)

//go:embed templates
var templateFS embed.FS

const (
	bashTemplate = "templates/bash.sh"
	zshTemplate  = "templates/zsh.sh"
)

// Generator renders a complete completion document for one shell.
type Generator interface {
	Shell() string
	GenerateFile(meta Metadata) (string, error)
}

// GetGenerator returns the generator matching the shell name. Unknown
// shells fall back to bash, matching the loosest dialect.
func GetGenerator(shell string) Generator {
	switch shell {
	case "zsh":
		return &ZshGenerator{}
	default:
		return &BashGenerator{}
	}
}

// renderTemplate reads a script skeleton from fsys (the embedded templates
// when nil) and substitutes its named slots. A slot is a line holding only
// {{name}}; the slot's blocks are spliced in at the marker's indentation.
// An unreadable template or a marker without a matching slot is a fatal
// configuration error: no partial document is ever returned.
func renderTemplate(fsys fs.FS, name string, slots map[string][]string) (string, error) {
	if fsys == nil {
		fsys = templateFS
	}
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("failed to read completion template %s: %w", name, err)
	}

	lines := strings.Split(string(raw), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "{{") || !strings.HasSuffix(trimmed, "}}") {
			out = append(out, line)
			continue
		}
		slot := strings.TrimSpace(trimmed[2 : len(trimmed)-2])
		blocks, ok := slots[slot]
		if !ok {
			return "", fmt.Errorf("completion template %s references unknown slot %q", name, slot)
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		for _, block := range blocks {
			for _, blockLine := range strings.Split(block, "\n") {
				if blockLine == "" {
					out = append(out, "")
					continue
				}
				out = append(out, indent+blockLine)
			}
		}
	}
	return strings.Join(out, "\n"), nil
}

// drainBlocks empties a deque of staged text blocks into a slice, front to
// back.
func drainBlocks(blocks *deque.Deque) []string {
	out := make([]string, 0, blocks.Len())
	for blocks.Len() > 0 {
		block, _ := blocks.PopFront()
		out = append(out, block.(string))
	}
	return out
}
