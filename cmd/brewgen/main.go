package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/napalu/goopt"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/tapworks/brewgen/completion"
	"github.com/tapworks/brewgen/manifest"
)

type Config struct {
	Manifest string `goopt:"name:manifest;short:m;desc:Path to the YAML command manifest"`
	Output   string `goopt:"name:output;short:o;desc:Directory to write completion scripts into"`
	Install  bool   `goopt:"name:install;desc:Install scripts into the shell completion directories instead"`
	Program  string `goopt:"name:program;desc:Program name used for completion file names"`
	Verbose  bool   `goopt:"name:verbose;short:v;desc:Show detailed progress"`
	Help     bool   `goopt:"name:help;short:h;desc:Show help"`
}

func main() {
	cfg := &Config{}
	parser, err := goopt.NewParserFromStruct(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !parser.Parse(os.Args) {
		for _, err := range parser.GetErrors() {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	if cfg.Help {
		parser.PrintUsageWithGroups(os.Stdout)
		os.Exit(0)
	}

	if cfg.Manifest == "" {
		fmt.Fprintln(os.Stderr, "Error: --manifest must be specified")
		os.Exit(1)
	}
	if cfg.Program == "" {
		cfg.Program = "brew"
	}

	logger, err := initializeLogger(cfg.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	meta, err := manifest.Load(cfg.Manifest)
	if err != nil {
		logger.Error("failed to load command manifest", zap.String("path", cfg.Manifest), zap.Error(err))
		os.Exit(1)
	}
	logger.Debug("loaded command manifest",
		zap.String("path", cfg.Manifest),
		zap.Int("commands", len(meta.Commands())),
		zap.Int("aliases", len(meta.Aliases())))

	written := make([]string, 0, 2)
	for _, shell := range []string{"bash", "zsh"} {
		path, err := generate(meta, shell, cfg)
		if err != nil {
			logger.Error("completion generation failed", zap.String("shell", shell), zap.Error(err))
			os.Exit(1)
		}
		logger.Debug("wrote completion script", zap.String("shell", shell), zap.String("path", path))
		written = append(written, path)
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		for _, path := range written {
			fmt.Printf("wrote %s\n", path)
		}
	}
}

// generate renders one shell's completion document and writes it either
// into the output directory or, with --install, into the shell's own
// completion directory.
func generate(meta completion.Metadata, shell string, cfg *Config) (string, error) {
	if cfg.Install {
		manager, err := completion.NewManager(shell, cfg.Program)
		if err != nil {
			return "", err
		}
		if err := manager.Accept(meta); err != nil {
			return "", err
		}
		if err := manager.SaveCompletion(); err != nil {
			return "", err
		}
		return manager.CompletionFilePath(), nil
	}

	script, err := completion.GetGenerator(shell).GenerateFile(meta)
	if err != nil {
		return "", err
	}

	dir := cfg.Output
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, completion.ScriptFileName(shell, cfg.Program))
	if err := os.WriteFile(path, []byte(script), 0644); err != nil {
		return "", fmt.Errorf("failed to write completion file: %w", err)
	}
	return path, nil
}

func initializeLogger(verbose bool) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	config := zap.NewProductionConfig()
	config.Level = level
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	return config.Build()
}
