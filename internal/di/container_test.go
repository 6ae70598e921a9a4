package di_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-recipes/internal/di"
	"github.com/goliatone/go-recipes/internal/runtimeconfig"
	"github.com/goliatone/go-recipes/pkg/interfaces"
)

func TestNewContainerBuildsCoreServices(t *testing.T) {
	container, err := di.NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	if container.Catalog() == nil {
		t.Fatal("expected catalog service")
	}
	if container.Settings() == nil {
		t.Fatal("expected settings service")
	}
	if container.Planner() == nil {
		t.Fatal("expected planner service")
	}
	if container.ShareResolver() == nil {
		t.Fatal("expected share resolver")
	}
	if container.Importer() != nil {
		t.Fatal("expected importer nil while feature disabled")
	}
	if container.Translations() != nil {
		t.Fatal("expected translations nil while feature disabled")
	}
	if container.Markdown() != nil {
		t.Fatal("expected markdown nil while ingestion disabled")
	}
}

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Markdown.Enabled = true
	cfg.Features.Markdown = false

	if _, err := di.NewContainer(cfg); err == nil {
		t.Fatal("expected config validation error")
	}
}

func TestNewContainerSeedsDefaultLanguages(t *testing.T) {
	container, err := di.NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	langs, err := container.Catalog().AvailableLanguages(context.Background())
	if err != nil {
		t.Fatalf("available languages: %v", err)
	}
	if len(langs) != 15 {
		t.Fatalf("expected 15 seeded languages, got %d", len(langs))
	}

	var sawEnglish, sawSpanish bool
	for _, lang := range langs {
		switch lang.Code {
		case "en":
			sawEnglish = true
			if !lang.IsDefault {
				t.Fatal("expected English to be the default language")
			}
		case "es":
			sawSpanish = true
			if lang.Display != "Spanish" {
				t.Fatalf("expected Spanish display, got %q", lang.Display)
			}
		}
	}
	if !sawEnglish || !sawSpanish {
		t.Fatalf("expected en and es among seeded languages")
	}
}

func TestNewContainerEnablesFeatureServices(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Importer = true
	cfg.Features.Translation = true
	cfg.Translator.MistralAPIKey = "test-key"
	cfg.Features.Markdown = true
	cfg.Markdown.Enabled = true

	container, err := di.NewContainer(cfg, di.WithMarkdownFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	if container.Importer() == nil {
		t.Fatal("expected importer service")
	}
	if container.Translations() == nil {
		t.Fatal("expected translation service")
	}
	if container.Markdown() == nil {
		t.Fatal("expected markdown service")
	}
}

func TestContainerMarkdownImportsFromInjectedFS(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Markdown = true
	cfg.Markdown.Enabled = true

	fsys := fstest.MapFS{
		"pancakes.md": &fstest.MapFile{Data: []byte("---\ntitle: Classic Pancakes\nslug: classic-pancakes\n---\n## Ingredients\n\n- 2 cups flour\n")},
	}

	container, err := di.NewContainer(cfg, di.WithMarkdownFS(fsys))
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	result, err := container.Markdown().ImportDirectory(context.Background(), ".", interfaces.ImportOptions{})
	if err != nil {
		t.Fatalf("import directory: %v", err)
	}
	if len(result.CreatedSlugs) != 1 || result.CreatedSlugs[0] != "classic-pancakes" {
		t.Fatalf("expected imported recipe, got %+v", result)
	}

	if _, err := container.Catalog().GetBySlug(context.Background(), "classic-pancakes"); err != nil {
		t.Fatalf("catalog lookup: %v", err)
	}
}

func TestContainerRegisterCommands(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Importer = true

	container, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	set, err := container.RegisterCommands(nil)
	if err != nil {
		t.Fatalf("register commands: %v", err)
	}
	if set.ImportURL == nil {
		t.Fatal("expected import url handler")
	}
	if set.ImportDirectory != nil || set.Translate != nil {
		t.Fatal("expected handlers for disabled features to be nil")
	}
}

func TestLanguageCodeMapping(t *testing.T) {
	if got := di.LanguageCode("Spanish"); got != "es" {
		t.Fatalf("expected es, got %q", got)
	}
	if got := di.LanguageCode(" german "); got != "de" {
		t.Fatalf("expected de, got %q", got)
	}
	if got := di.LanguageCode("Klingon"); got != "klingon" {
		t.Fatalf("expected lowercase fallback, got %q", got)
	}
}
