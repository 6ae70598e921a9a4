package main

import (
	"context"
	"testing"

	"github.com/goliatone/go-recipes/cmd/recipes/internal/bootstrap"
	"github.com/goliatone/go-recipes/internal/logging"
	"github.com/goliatone/go-recipes/pkg/interfaces"
)

type stubMarkdownService struct {
	importCalls int
	importDir   string
	importOpts  interfaces.ImportOptions
}

func (s *stubMarkdownService) Load(context.Context, string, interfaces.LoadOptions) (*interfaces.Document, error) {
	return nil, nil
}

func (s *stubMarkdownService) LoadDirectory(context.Context, string, interfaces.LoadOptions) ([]*interfaces.Document, error) {
	return nil, nil
}

func (s *stubMarkdownService) Render(context.Context, []byte, interfaces.ParseOptions) ([]byte, error) {
	return nil, nil
}

func (s *stubMarkdownService) Import(context.Context, *interfaces.Document, interfaces.ImportOptions) (*interfaces.ImportResult, error) {
	return nil, nil
}

func (s *stubMarkdownService) ImportDirectory(_ context.Context, dir string, opts interfaces.ImportOptions) (*interfaces.ImportResult, error) {
	s.importCalls++
	s.importDir = dir
	s.importOpts = opts
	return &interfaces.ImportResult{}, nil
}

func TestRunImportUsesDirectoryHandler(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	svc := &stubMarkdownService{}
	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		return &bootstrap.Module{
			Markdown: svc,
			Logger:   logging.NoOp(),
		}, nil
	}

	if err := runImport([]string{
		"-directory", "desserts",
		"-update-existing",
	}); err != nil {
		t.Fatalf("runImport returned error: %v", err)
	}
	if svc.importCalls != 1 {
		t.Fatalf("expected import to be called once, got %d", svc.importCalls)
	}
	if svc.importDir != "desserts" {
		t.Fatalf("expected import directory desserts, got %s", svc.importDir)
	}
	if !svc.importOpts.UpdateExisting {
		t.Fatal("expected update-existing flag to propagate")
	}
	if !svc.importOpts.ConvertUnits {
		t.Fatal("expected unit conversion enabled by default")
	}
}

func TestRunImportRequiresSource(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	called := false
	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		called = true
		return &bootstrap.Module{}, nil
	}

	if err := runImport(nil); err == nil {
		t.Fatal("expected error when neither url nor directory is given")
	}
	if called {
		t.Fatal("expected bootstrap to be skipped on invalid flags")
	}
}

func TestRunImportPassesBootstrapOptions(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	var got bootstrap.Options
	svc := &stubMarkdownService{}
	moduleBuilder = func(opts bootstrap.Options) (*bootstrap.Module, error) {
		got = opts
		return &bootstrap.Module{
			Markdown: svc,
			Logger:   logging.NoOp(),
		}, nil
	}

	if err := runImport([]string{
		"-directory", "weeknight",
		"-content-dir", "content/recipes",
		"-language", "Spanish",
	}); err != nil {
		t.Fatalf("runImport returned error: %v", err)
	}
	if got.ContentDir != "content/recipes" {
		t.Fatalf("expected content dir to propagate, got %s", got.ContentDir)
	}
	if got.DefaultLanguage != "Spanish" {
		t.Fatalf("expected language to propagate, got %s", got.DefaultLanguage)
	}
	if !got.MarkdownEnabled || got.ImporterEnabled {
		t.Fatal("expected markdown mode for directory imports")
	}
}
