package recipescmd

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-recipes/internal/catalog"
	"github.com/goliatone/go-recipes/internal/importer"
	"github.com/goliatone/go-recipes/pkg/interfaces"
	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

type importURLCall struct {
	url     string
	options importer.Options
}

type stubImporter struct {
	calls  []importURLCall
	recipe *catalog.Recipe
	err    error
}

func (s *stubImporter) ImportFromURL(_ context.Context, pageURL string, opts importer.Options) (*catalog.Recipe, error) {
	s.calls = append(s.calls, importURLCall{url: pageURL, options: opts})
	if s.err != nil {
		return nil, s.err
	}
	return s.recipe, nil
}

type importDirCall struct {
	directory string
	options   interfaces.ImportOptions
}

type stubMarkdownService struct {
	calls  []importDirCall
	result *interfaces.ImportResult
	err    error
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

func (s *stubMarkdownService) ImportDirectory(_ context.Context, directory string, opts interfaces.ImportOptions) (*interfaces.ImportResult, error) {
	s.calls = append(s.calls, importDirCall{directory: directory, options: opts})
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type translateCall struct {
	recipeID uuid.UUID
	language string
}

type stubTranslateService struct {
	calls       []translateCall
	translation *catalog.RecipeTranslation
	err         error
}

func (s *stubTranslateService) TranslateRecipe(_ context.Context, recipeID uuid.UUID, languageCode string) (*catalog.RecipeTranslation, error) {
	s.calls = append(s.calls, translateCall{recipeID: recipeID, language: languageCode})
	if s.err != nil {
		return nil, s.err
	}
	return s.translation, nil
}

func TestImportURLHandlerInvokesService(t *testing.T) {
	service := &stubImporter{
		recipe: &catalog.Recipe{Slug: "classic-pancakes"},
	}
	handler := NewImportURLHandler(service, nil)

	err := handler.Execute(context.Background(), ImportURLCommand{
		URL:          "https://example.com/recipes/pancakes",
		ConvertUnits: true,
		Tags:         []string{"breakfast"},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(service.calls) != 1 {
		t.Fatalf("expected one service call, got %d", len(service.calls))
	}
	call := service.calls[0]
	if call.url != "https://example.com/recipes/pancakes" {
		t.Fatalf("unexpected url %q", call.url)
	}
	if !call.options.ConvertUnits {
		t.Fatal("expected convert units forwarded")
	}
	if len(call.options.Tags) != 1 || call.options.Tags[0] != "breakfast" {
		t.Fatalf("expected tags forwarded, got %v", call.options.Tags)
	}
}

func TestImportURLHandlerRejectsMissingURL(t *testing.T) {
	service := &stubImporter{}
	handler := NewImportURLHandler(service, nil)

	err := handler.Execute(context.Background(), ImportURLCommand{URL: "   "})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if len(service.calls) != 0 {
		t.Fatal("expected service not to be called")
	}
}

func TestImportURLHandlerPropagatesServiceError(t *testing.T) {
	service := &stubImporter{err: errors.New("fetch failed")}
	handler := NewImportURLHandler(service, nil)

	err := handler.Execute(context.Background(), ImportURLCommand{URL: "https://example.com/x"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestImportDirectoryHandlerInvokesService(t *testing.T) {
	service := &stubMarkdownService{
		result: &interfaces.ImportResult{CreatedSlugs: []string{"classic-pancakes"}},
	}
	handler := NewImportDirectoryHandler(service, nil)

	err := handler.Execute(context.Background(), ImportDirectoryCommand{
		Directory:      "recipes",
		UpdateExisting: true,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(service.calls) != 1 {
		t.Fatalf("expected one call, got %d", len(service.calls))
	}
	call := service.calls[0]
	if call.directory != "recipes" {
		t.Fatalf("unexpected directory %q", call.directory)
	}
	if !call.options.UpdateExisting {
		t.Fatal("expected update existing forwarded")
	}
}

func TestImportDirectoryHandlerRejectsMissingDirectory(t *testing.T) {
	service := &stubMarkdownService{}
	handler := NewImportDirectoryHandler(service, nil)

	err := handler.Execute(context.Background(), ImportDirectoryCommand{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if len(service.calls) != 0 {
		t.Fatal("expected service not to be called")
	}
}

func TestTranslateRecipeHandlerInvokesService(t *testing.T) {
	recipeID := uuid.New()
	service := &stubTranslateService{
		translation: &catalog.RecipeTranslation{Title: "Panqueques"},
	}
	handler := NewTranslateRecipeHandler(service, nil)

	err := handler.Execute(context.Background(), TranslateRecipeCommand{
		RecipeID:     recipeID,
		LanguageCode: "es",
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(service.calls) != 1 {
		t.Fatalf("expected one call, got %d", len(service.calls))
	}
	if service.calls[0].recipeID != recipeID {
		t.Fatalf("unexpected recipe id %s", service.calls[0].recipeID)
	}
	if service.calls[0].language != "es" {
		t.Fatalf("unexpected language %q", service.calls[0].language)
	}
}

func TestTranslateRecipeHandlerRejectsNilRecipeID(t *testing.T) {
	service := &stubTranslateService{}
	handler := NewTranslateRecipeHandler(service, nil)

	err := handler.Execute(context.Background(), TranslateRecipeCommand{LanguageCode: "es"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if len(service.calls) != 0 {
		t.Fatal("expected service not to be called")
	}
}
