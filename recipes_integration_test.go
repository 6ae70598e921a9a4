package recipes_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	recipes "github.com/goliatone/go-recipes"
	"github.com/goliatone/go-recipes/internal/di"
	"github.com/goliatone/go-recipes/pkg/interfaces"
	urlkit "github.com/goliatone/go-urlkit"
)

const pancakesDoc = `---
title: Classic Pancakes
slug: classic-pancakes
servings: 2
tags:
  - breakfast
ingredients:
  - 2 cups flour
  - 1 cup milk
  - 1 egg
---
## Instructions

Whisk everything together and fry on a hot griddle.
`

func newTestModule(t *testing.T, fsys fstest.MapFS) *recipes.Module {
	t.Helper()

	cfg := recipes.DefaultConfig()
	cfg.Storage.Provider = "memory"
	cfg.Features.Markdown = true
	cfg.Markdown.Enabled = true
	cfg.Share.RouteConfig = &urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "share",
				BaseURL: "https://recipes.example.com",
				Paths: map[string]string{
					"recipe": "/share/:token",
				},
			},
		},
	}

	module, err := recipes.New(cfg, di.WithMarkdownFS(fsys))
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	return module
}

func TestModuleImportsAndConvertsMarkdownRecipes(t *testing.T) {
	ctx := context.Background()
	module := newTestModule(t, fstest.MapFS{
		"pancakes.md": &fstest.MapFile{Data: []byte(pancakesDoc)},
	})

	result, err := module.Markdown().ImportDirectory(ctx, ".", interfaces.ImportOptions{
		ConvertUnits: true,
	})
	if err != nil {
		t.Fatalf("import directory: %v", err)
	}
	if len(result.CreatedSlugs) != 1 {
		t.Fatalf("expected one imported recipe, got %+v", result)
	}

	recipe, err := module.Catalog().GetBySlug(ctx, "classic-pancakes")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if recipe.Servings != 2 {
		t.Fatalf("expected 2 servings, got %d", recipe.Servings)
	}

	var sawConverted bool
	for _, ingredient := range recipe.Ingredients {
		if strings.Contains(ingredient, "480ml") && strings.Contains(ingredient, "(2 cups)") {
			sawConverted = true
		}
	}
	if !sawConverted {
		t.Fatalf("expected converted measurements, got %v", recipe.Ingredients)
	}
}

func TestModuleScalesServingsThroughCatalog(t *testing.T) {
	ctx := context.Background()
	module := newTestModule(t, fstest.MapFS{
		"pancakes.md": &fstest.MapFile{Data: []byte(pancakesDoc)},
	})

	if _, err := module.Markdown().ImportDirectory(ctx, ".", interfaces.ImportOptions{}); err != nil {
		t.Fatalf("import directory: %v", err)
	}
	recipe, err := module.Catalog().GetBySlug(ctx, "classic-pancakes")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}

	scaled, err := module.Catalog().ScaledIngredients(ctx, recipe.ID, 4)
	if err != nil {
		t.Fatalf("scale ingredients: %v", err)
	}

	var sawDoubled bool
	for _, ingredient := range scaled {
		if strings.Contains(ingredient, "4 cups flour") {
			sawDoubled = true
		}
	}
	if !sawDoubled {
		t.Fatalf("expected doubled quantities, got %v", scaled)
	}
}

func TestModuleResolvesShareLinks(t *testing.T) {
	ctx := context.Background()
	module := newTestModule(t, fstest.MapFS{
		"pancakes.md": &fstest.MapFile{Data: []byte(pancakesDoc)},
	})

	if _, err := module.Markdown().ImportDirectory(ctx, ".", interfaces.ImportOptions{}); err != nil {
		t.Fatalf("import directory: %v", err)
	}
	recipe, err := module.Catalog().GetBySlug(ctx, "classic-pancakes")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if recipe.ShareToken == "" {
		t.Fatal("expected generated share token")
	}

	url, err := module.Share().Resolve(recipe.ShareToken)
	if err != nil {
		t.Fatalf("resolve share url: %v", err)
	}
	want := "https://recipes.example.com/share/" + recipe.ShareToken
	if url != want {
		t.Fatalf("expected %q, got %q", want, url)
	}

	fetched, err := module.Catalog().GetByShareToken(ctx, recipe.ShareToken)
	if err != nil {
		t.Fatalf("get by share token: %v", err)
	}
	if fetched.ID != recipe.ID {
		t.Fatal("expected share token to resolve the same recipe")
	}
}

func TestModuleRendersConstrainedMarkdown(t *testing.T) {
	module := newTestModule(t, fstest.MapFS{})

	html := module.Render("## Ingredients\n\n- **2 cups** flour\n- 1 egg")
	if !strings.Contains(html, "<h2>Ingredients</h2>") {
		t.Fatalf("expected heading markup, got %q", html)
	}
	if !strings.Contains(html, "<strong>2 cups</strong>") {
		t.Fatalf("expected bold markup, got %q", html)
	}
	if !strings.Contains(html, "<ul>") || !strings.Contains(html, "<li>1 egg</li>") {
		t.Fatalf("expected list markup, got %q", html)
	}
}

func TestModuleUnitsConverter(t *testing.T) {
	module := newTestModule(t, fstest.MapFS{})

	got := module.Units().ConvertText("Bake at 350°F with 0.5 lb butter")
	if !strings.Contains(got, "177°C") {
		t.Fatalf("expected temperature conversion, got %q", got)
	}
	if !strings.Contains(got, "227g") {
		t.Fatalf("expected weight conversion, got %q", got)
	}
}
