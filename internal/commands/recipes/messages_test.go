package recipescmd

import (
	"testing"

	"github.com/google/uuid"
)

func TestImportURLCommandValidation(t *testing.T) {
	if err := (ImportURLCommand{URL: "https://example.com/recipe"}).Validate(); err != nil {
		t.Fatalf("expected valid command, got %v", err)
	}
	if err := (ImportURLCommand{}).Validate(); err == nil {
		t.Fatal("expected missing url to fail validation")
	}
	if err := (ImportURLCommand{URL: "   "}).Validate(); err == nil {
		t.Fatal("expected blank url to fail validation")
	}
}

func TestImportDirectoryCommandValidation(t *testing.T) {
	if err := (ImportDirectoryCommand{Directory: "recipes"}).Validate(); err != nil {
		t.Fatalf("expected valid command, got %v", err)
	}
	if err := (ImportDirectoryCommand{}).Validate(); err == nil {
		t.Fatal("expected missing directory to fail validation")
	}
}

func TestTranslateRecipeCommandValidation(t *testing.T) {
	valid := TranslateRecipeCommand{RecipeID: uuid.New(), LanguageCode: "es"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid command, got %v", err)
	}
	if err := (TranslateRecipeCommand{LanguageCode: "es"}).Validate(); err == nil {
		t.Fatal("expected nil recipe id to fail validation")
	}
	if err := (TranslateRecipeCommand{RecipeID: uuid.New()}).Validate(); err == nil {
		t.Fatal("expected missing language to fail validation")
	}
}

func TestMessageTypes(t *testing.T) {
	if got := (ImportURLCommand{}).Type(); got != "recipes.importer.import_url" {
		t.Fatalf("unexpected type %q", got)
	}
	if got := (ImportDirectoryCommand{}).Type(); got != "recipes.markdown.import_directory" {
		t.Fatalf("unexpected type %q", got)
	}
	if got := (TranslateRecipeCommand{}).Type(); got != "recipes.translate.recipe" {
		t.Fatalf("unexpected type %q", got)
	}
}
