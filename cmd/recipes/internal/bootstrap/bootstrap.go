package bootstrap

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-recipes"
	"github.com/goliatone/go-recipes/internal/di"
	"github.com/goliatone/go-recipes/internal/importer"
	"github.com/goliatone/go-recipes/internal/logging"
	"github.com/goliatone/go-recipes/pkg/interfaces"
)

// Options captures configuration for the recipes CLI bootstraps.
type Options struct {
	ContentDir      string
	Pattern         string
	Recursive       bool
	DefaultLanguage string
	MarkdownEnabled bool
	ImporterEnabled bool
	ConvertUnits    bool
	UpdateExisting  bool
	LoggerProvider  interfaces.LoggerProvider
}

// Module wraps the recipes module and the services the CLIs drive.
type Module struct {
	Module   *recipes.Module
	Markdown interfaces.MarkdownService
	Importer *importer.Service
	Logger   interfaces.Logger
}

// BuildModule constructs a recipes module configured for CLI operations.
// Storage runs in memory; CLI runs operate on files and remote pages rather
// than a shared database.
func BuildModule(opts Options) (*Module, error) {
	cfg := recipes.DefaultConfig()
	cfg.Storage.Provider = "memory"

	cfg.Features.Markdown = opts.MarkdownEnabled
	cfg.Markdown.Enabled = opts.MarkdownEnabled
	cfg.Markdown.ContentDir = strings.TrimSpace(opts.ContentDir)
	if cfg.Markdown.ContentDir == "" {
		cfg.Markdown.ContentDir = "recipes"
	}
	if trimmed := strings.TrimSpace(opts.Pattern); trimmed != "" {
		cfg.Markdown.Pattern = trimmed
	}
	cfg.Markdown.Recursive = opts.Recursive

	cfg.Features.Importer = opts.ImporterEnabled
	cfg.Importer.ConvertUnits = opts.ConvertUnits
	cfg.Importer.UpdateExisting = opts.UpdateExisting

	if language := strings.TrimSpace(opts.DefaultLanguage); language != "" {
		cfg.DefaultLanguage = language
		cfg.Markdown.DefaultLanguage = language
	}

	diOpts := []di.Option{}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := recipes.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise recipes module: %w", err)
	}

	logger := logging.ModuleLogger(module.Container().LoggerProvider(), "recipes.cli")

	return &Module{
		Module:   module,
		Markdown: module.Markdown(),
		Importer: module.Importer(),
		Logger:   logger,
	}, nil
}

// SplitList parses a comma separated flag value into a trimmed slice.
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
