package completion

import (
	"fmt"
	"os"
	"path/filepath"
)

// Manager generates a shell's completion document and installs it into
// the shell's completion directory.
type Manager struct {
	Shell       string
	ProgramName string
	Paths       CompletionPaths
	generator   Generator
	script      string
}

// NewManager creates a completion manager which can be used to generate
// and save the completion script for a given shell
func NewManager(shell, programName string) (*Manager, error) {
	paths, err := getCompletionPaths(shell)
	if err != nil {
		return nil, fmt.Errorf("failed to get completion paths: %w", err)
	}

	return &Manager{
		Shell:       shell,
		ProgramName: filepath.Base(programName),
		Paths:       paths,
		generator:   GetGenerator(shell),
	}, nil
}

// Accept generates and stores the completion document for the provided
// metadata. The whole document is assembled before anything can be
// written; a template failure leaves the manager without a script.
func (m *Manager) Accept(meta Metadata) error {
	script, err := m.generator.GenerateFile(meta)
	if err != nil {
		return err
	}
	m.script = script
	return nil
}

// Script returns the generated completion document, or "" before Accept.
func (m *Manager) Script() string {
	return m.script
}

// SaveCompletion saves the previously generated completion script
func (m *Manager) SaveCompletion() error {
	if m.script == "" {
		return fmt.Errorf("no completion script generated")
	}

	if err := m.ensureCompletionPath(); err != nil {
		return err
	}

	path := m.CompletionFilePath()
	if err := os.WriteFile(path, []byte(m.script), 0644); err != nil {
		return fmt.Errorf("failed to write completion file: %w", err)
	}

	return ensurePermission(path, 0644)
}

func (m *Manager) ensureCompletionPath() error {
	perm := os.FileMode(0755)
	err := os.MkdirAll(m.Paths.Primary, perm)
	if err != nil {
		return fmt.Errorf("failed to create primary completion directory: %w", err)
	}

	err = ensurePermission(m.Paths.Primary, perm)
	if err == nil {
		return nil
	}

	if m.Paths.Fallback != "" {
		err = os.MkdirAll(m.Paths.Fallback, perm)
		if err != nil {
			return fmt.Errorf("failed to create fallback completion directory: %w", err)
		}
		return ensurePermission(m.Paths.Fallback, perm)
	}

	return fmt.Errorf("failed to create completion directories: %w", err)
}

func (m *Manager) getShellFileConventions() CompletionFileInfo {
	switch m.Shell {
	case "zsh":
		return CompletionFileInfo{
			Prefix:    "_", // zsh completions typically start with underscore
			Extension: "",
			Comment:   "Zsh completion files should start with _ (e.g., _brew)",
		}
	default:
		return CompletionFileInfo{
			Prefix:    "",
			Extension: "",
			Comment:   "Bash completion files are typically just the command name",
		}
	}
}

// CompletionFilePath returns the path the completion document is saved to.
func (m *Manager) CompletionFilePath() string {
	return filepath.Join(m.Paths.Primary, ScriptFileName(m.Shell, m.ProgramName))
}

// ScriptFileName returns the conventional completion file name for a
// shell and program, e.g. "brew" for bash and "_brew" for zsh.
func ScriptFileName(shell, programName string) string {
	manager := Manager{Shell: shell}
	conventions := manager.getShellFileConventions()
	return conventions.Prefix + programName + conventions.Extension
}
