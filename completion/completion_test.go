package completion

import (
	"strings"
	"testing"
	"testing/fstest"
)

// fakeMetadata is an in-memory Metadata for generator tests.
type fakeMetadata struct {
	commands     []string
	options      map[string][]Option
	namedArgs    map[string][]NamedArg
	descriptions map[string]string
	aliases      []Alias
}

func (f *fakeMetadata) Commands() []string { return f.commands }

func (f *fakeMetadata) CommandOptions(name string) []Option { return f.options[name] }

func (f *fakeMetadata) NamedArgs(name string) []NamedArg { return f.namedArgs[name] }

func (f *fakeMetadata) ShortDescription(name string) string { return f.descriptions[name] }

func (f *fakeMetadata) Aliases() []Alias { return f.aliases }

func getTestMetadata() *fakeMetadata {
	return &fakeMetadata{
		commands: []string{"doctor", "info", "install", "uninstal", "uninstall"},
		options: map[string][]Option{
			"doctor":    {{Name: "--list-checks", Description: "List all audit methods"}},
			"install":   {{Name: "--force", Description: "Force installation"}, {Name: "--verbose", Description: "Print verification output"}},
			"uninstal":  {{Name: "--force", Description: "Force removal"}},
			"uninstall": {{Name: "--force", Description: "Force removal"}, {Name: "--zap", Description: "Remove all associated files"}},
		},
		namedArgs: map[string][]NamedArg{
			"install":   {KindArg(KindFormula), KindArg(KindCask)},
			"uninstall": {KindArg(KindInstalledFormula)},
			"doctor":    {KindArg(KindDiagnosticCheck)},
		},
		descriptions: map[string]string{
			"doctor":    "Check your system for potential problems.",
			"info":      "Display brief statistics for your installation.",
			"install":   "Install a <formula> or <cask>.",
			"uninstall": "Uninstall a <formula> or <cask>.",
		},
		aliases: []Alias{{Name: "dr", Target: "doctor"}},
	}
}

func TestGenerateFileIsIdempotent(t *testing.T) {
	meta := getTestMetadata()
	for _, shell := range []string{"bash", "zsh"} {
		generator := GetGenerator(shell)
		first, err := generator.GenerateFile(meta)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", shell, err)
		}
		second, err := generator.GenerateFile(meta)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", shell, err)
		}
		if first != second {
			t.Errorf("%s: generation is not idempotent", shell)
		}
	}
}

func TestGenerateFileMissingTemplate(t *testing.T) {
	meta := getTestMetadata()
	generators := []Generator{
		&BashGenerator{Templates: fstest.MapFS{}},
		&ZshGenerator{Templates: fstest.MapFS{}},
	}
	for _, generator := range generators {
		script, err := generator.GenerateFile(meta)
		if err == nil {
			t.Errorf("%s: expected an error for a missing template", generator.Shell())
		}
		if script != "" {
			t.Errorf("%s: no partial output should be produced on template failure", generator.Shell())
		}
		if err != nil && !strings.Contains(err.Error(), "template") {
			t.Errorf("%s: error should identify the missing template, got %v", generator.Shell(), err)
		}
	}
}

func TestRenderTemplateUnknownSlot(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/bash.sh": {Data: []byte("header\n{{no_such_slot}}\nfooter\n")},
	}
	_, err := renderTemplate(fsys, "templates/bash.sh", map[string][]string{})
	if err == nil {
		t.Fatal("expected an error for an unknown slot")
	}
	if !strings.Contains(err.Error(), "no_such_slot") {
		t.Errorf("error should name the unknown slot, got %v", err)
	}
}

func TestRenderTemplateIndentsBlocks(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/bash.sh": {Data: []byte("case x in\n    {{function_mappings}}\nesac\n")},
	}
	out, err := renderTemplate(fsys, "templates/bash.sh", map[string][]string{
		"function_mappings": {"a) _brew_a ;;", "b) _brew_b ;;"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, expected := range []string{"    a) _brew_a ;;", "    b) _brew_b ;;"} {
		if !strings.Contains(out, expected) {
			t.Errorf("expected rendered output to contain %q, got:\n%s", expected, out)
		}
	}
}

func TestGetGenerator(t *testing.T) {
	if _, ok := GetGenerator("zsh").(*ZshGenerator); !ok {
		t.Error("expected a zsh generator for \"zsh\"")
	}
	if _, ok := GetGenerator("bash").(*BashGenerator); !ok {
		t.Error("expected a bash generator for \"bash\"")
	}
	if _, ok := GetGenerator("").(*BashGenerator); !ok {
		t.Error("expected the bash generator as fallback")
	}
}
