package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-recipes/internal/catalog"
	"github.com/goliatone/go-recipes/internal/identity"
	"github.com/goliatone/go-recipes/internal/share"
	"github.com/google/uuid"
)

func newTestService(t *testing.T, opts ...catalog.Option) (*catalog.Service, *catalog.MemoryLanguageRepository) {
	t.Helper()

	languages := catalog.NewMemoryLanguageRepository()
	base := []catalog.Option{
		catalog.WithClock(func() time.Time {
			return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		}),
		catalog.WithTokenGenerator(share.StaticTokenGenerator{Value: "token-1"}),
	}
	svc := catalog.NewService(
		catalog.NewMemoryRecipeRepository(),
		languages,
		catalog.NewMemoryTranslationRepository(),
		append(base, opts...)...,
	)
	return svc, languages
}

func seedLanguage(t *testing.T, repo *catalog.MemoryLanguageRepository, code, display string) *catalog.Language {
	t.Helper()
	lang, err := repo.Create(context.Background(), &catalog.Language{
		ID:       identity.LanguageUUID(code),
		Code:     code,
		Display:  display,
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("seed language %s: %v", code, err)
	}
	return lang
}

func TestCreateDerivesSlugFromTitle(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(context.Background(), catalog.CreateRecipeRequest{
		Title:   "Classic Pancakes",
		Content: "## Ingredients\n- 2 cups flour",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Slug != "classic-pancakes" {
		t.Fatalf("expected derived slug, got %q", created.Slug)
	}
	if created.Servings != 1 {
		t.Fatalf("expected default servings 1, got %d", created.Servings)
	}
	if created.ShareToken != "token-1" {
		t.Fatalf("expected share token minted on create, got %q", created.ShareToken)
	}
	if created.SourceLang != "English" {
		t.Fatalf("expected default source language, got %q", created.SourceLang)
	}
}

func TestCreateRejectsMissingTitle(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), catalog.CreateRecipeRequest{
		Content: "body",
	})
	if err == nil {
		t.Fatal("expected validation error for missing title")
	}
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, catalog.CreateRecipeRequest{Title: "Tacos", Content: "body"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(ctx, catalog.CreateRecipeRequest{Title: "Tacos", Content: "other body"})
	if !errors.Is(err, catalog.ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists, got %v", err)
	}
}

func TestGetBySlugNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetBySlug(context.Background(), "missing")
	if !catalog.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestGetByShareToken(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, catalog.CreateRecipeRequest{Title: "Soup", Content: "body"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	found, err := svc.GetByShareToken(ctx, created.ShareToken)
	if err != nil {
		t.Fatalf("get by share token: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("expected recipe %s, got %s", created.ID, found.ID)
	}

	if _, err := svc.GetByShareToken(ctx, ""); !errors.Is(err, catalog.ErrShareTokenRequired) {
		t.Fatalf("expected ErrShareTokenRequired, got %v", err)
	}
}

func TestListFiltersByTagRatingAndQuery(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	pancakes, err := svc.Create(ctx, catalog.CreateRecipeRequest{
		Title:   "Pancakes",
		Content: "breakfast favorite",
		Tags:    []string{"breakfast"},
	})
	if err != nil {
		t.Fatalf("create pancakes: %v", err)
	}
	if _, err := svc.Rate(ctx, pancakes.ID, 5); err != nil {
		t.Fatalf("rate: %v", err)
	}
	if _, err := svc.Create(ctx, catalog.CreateRecipeRequest{
		Title:   "Lentil Soup",
		Content: "hearty dinner",
		Tags:    []string{"dinner"},
	}); err != nil {
		t.Fatalf("create soup: %v", err)
	}

	byTag, err := svc.List(ctx, catalog.ListFilter{Tag: "breakfast"})
	if err != nil {
		t.Fatalf("list by tag: %v", err)
	}
	if len(byTag) != 1 || byTag[0].Slug != "pancakes" {
		t.Fatalf("expected only pancakes, got %d records", len(byTag))
	}

	byRating, err := svc.List(ctx, catalog.ListFilter{MinRating: 4})
	if err != nil {
		t.Fatalf("list by rating: %v", err)
	}
	if len(byRating) != 1 || byRating[0].Slug != "pancakes" {
		t.Fatalf("expected only the rated recipe, got %d records", len(byRating))
	}

	byQuery, err := svc.List(ctx, catalog.ListFilter{Query: "hearty"})
	if err != nil {
		t.Fatalf("list by query: %v", err)
	}
	if len(byQuery) != 1 || byQuery[0].Slug != "lentil-soup" {
		t.Fatalf("expected only the soup, got %d records", len(byQuery))
	}
}

func TestListSortsByTitle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, title := range []string{"Ziti", "Arepas", "Miso Soup"} {
		if _, err := svc.Create(ctx, catalog.CreateRecipeRequest{Title: title, Content: "body"}); err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
	}

	records, err := svc.List(ctx, catalog.ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"Arepas", "Miso Soup", "Ziti"}
	if len(records) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(records))
	}
	for i, title := range want {
		if records[i].Title != title {
			t.Fatalf("position %d: expected %q, got %q", i, title, records[i].Title)
		}
	}
}

func TestUpdateAppliesPartialChanges(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, catalog.CreateRecipeRequest{
		Title:    "Chili",
		Content:  "original",
		Servings: 4,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	title := "Smoky Chili"
	servings := 6
	updated, err := svc.Update(ctx, catalog.UpdateRecipeRequest{
		ID:       created.ID,
		Title:    &title,
		Servings: &servings,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Smoky Chili" {
		t.Fatalf("expected updated title, got %q", updated.Title)
	}
	if updated.Servings != 6 {
		t.Fatalf("expected updated servings, got %d", updated.Servings)
	}
	if updated.Content != "original" {
		t.Fatalf("expected untouched content, got %q", updated.Content)
	}
}

func TestUpdateRejectsInvalidServings(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, catalog.CreateRecipeRequest{Title: "Chili", Content: "body"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	zero := 0
	_, err = svc.Update(ctx, catalog.UpdateRecipeRequest{ID: created.ID, Servings: &zero})
	if !errors.Is(err, catalog.ErrServingsInvalid) {
		t.Fatalf("expected ErrServingsInvalid, got %v", err)
	}
}

func TestRateBounds(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, catalog.CreateRecipeRequest{Title: "Stew", Content: "body"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Rate(ctx, created.ID, 6); !errors.Is(err, catalog.ErrRatingOutOfRange) {
		t.Fatalf("expected ErrRatingOutOfRange for 6, got %v", err)
	}
	if _, err := svc.Rate(ctx, created.ID, -1); !errors.Is(err, catalog.ErrRatingOutOfRange) {
		t.Fatalf("expected ErrRatingOutOfRange for -1, got %v", err)
	}

	rated, err := svc.Rate(ctx, created.ID, 4)
	if err != nil {
		t.Fatalf("rate: %v", err)
	}
	if rated.Rating != 4 {
		t.Fatalf("expected rating 4, got %d", rated.Rating)
	}
}

func TestDeleteRemovesRecipeAndTranslations(t *testing.T) {
	svc, languages := newTestService(t)
	ctx := context.Background()
	seedLanguage(t, languages, "es", "Spanish")

	created, err := svc.Create(ctx, catalog.CreateRecipeRequest{Title: "Paella", Content: "body"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.UpsertTranslation(ctx, catalog.UpsertTranslationRequest{
		RecipeID:     created.ID,
		LanguageCode: "es",
		Title:        "Paella",
		Content:      "cuerpo",
	}); err != nil {
		t.Fatalf("upsert translation: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); !catalog.IsNotFound(err) {
		t.Fatalf("expected recipe gone, got %v", err)
	}
	translations, err := svc.Translations(ctx, created.ID)
	if err != nil {
		t.Fatalf("translations: %v", err)
	}
	if len(translations) != 0 {
		t.Fatalf("expected translations removed, got %d", len(translations))
	}
}

func TestUpsertTranslationReplacesExisting(t *testing.T) {
	svc, languages := newTestService(t)
	ctx := context.Background()
	seedLanguage(t, languages, "fr", "French")

	created, err := svc.Create(ctx, catalog.CreateRecipeRequest{Title: "Crepes", Content: "body"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	first, err := svc.UpsertTranslation(ctx, catalog.UpsertTranslationRequest{
		RecipeID:     created.ID,
		LanguageCode: "fr",
		Title:        "Crêpes",
		Content:      "premier",
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second, err := svc.UpsertTranslation(ctx, catalog.UpsertTranslationRequest{
		RecipeID:     created.ID,
		LanguageCode: "fr",
		Title:        "Crêpes",
		Content:      "deuxième",
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected replacement to keep the translation id, got %s then %s", first.ID, second.ID)
	}
	if second.Content != "deuxième" {
		t.Fatalf("expected replaced content, got %q", second.Content)
	}

	translations, err := svc.Translations(ctx, created.ID)
	if err != nil {
		t.Fatalf("translations: %v", err)
	}
	if len(translations) != 1 {
		t.Fatalf("expected a single translation, got %d", len(translations))
	}
}

func TestUpsertTranslationUnknownLanguage(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, catalog.CreateRecipeRequest{Title: "Curry", Content: "body"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.UpsertTranslation(ctx, catalog.UpsertTranslationRequest{
		RecipeID:     created.ID,
		LanguageCode: "xx",
		Title:        "Curry",
		Content:      "body",
	})
	if !errors.Is(err, catalog.ErrUnknownLanguage) {
		t.Fatalf("expected ErrUnknownLanguage, got %v", err)
	}
}

func TestDeleteTranslation(t *testing.T) {
	svc, languages := newTestService(t)
	ctx := context.Background()
	seedLanguage(t, languages, "de", "German")

	created, err := svc.Create(ctx, catalog.CreateRecipeRequest{Title: "Pretzels", Content: "body"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.UpsertTranslation(ctx, catalog.UpsertTranslationRequest{
		RecipeID:     created.ID,
		LanguageCode: "de",
		Title:        "Brezeln",
		Content:      "körper",
	}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if err := svc.DeleteTranslation(ctx, created.ID, "de"); err != nil {
		t.Fatalf("delete translation: %v", err)
	}
	if err := svc.DeleteTranslation(ctx, created.ID, "de"); !errors.Is(err, catalog.ErrTranslationNotFound) {
		t.Fatalf("expected ErrTranslationNotFound on second delete, got %v", err)
	}
}

func TestAvailableLanguagesSkipsInactive(t *testing.T) {
	svc, languages := newTestService(t)
	ctx := context.Background()
	seedLanguage(t, languages, "es", "Spanish")
	seedLanguage(t, languages, "fr", "French")
	if _, err := languages.Create(ctx, &catalog.Language{
		ID:      uuid.New(),
		Code:    "la",
		Display: "Latin",
	}); err != nil {
		t.Fatalf("seed inactive language: %v", err)
	}

	active, err := svc.AvailableLanguages(ctx)
	if err != nil {
		t.Fatalf("available languages: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active languages, got %d", len(active))
	}
	if active[0].Display != "French" || active[1].Display != "Spanish" {
		t.Fatalf("expected sort by display name, got %q then %q", active[0].Display, active[1].Display)
	}
}

func TestScaledIngredientsUsesStoredServings(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, catalog.CreateRecipeRequest{
		Title:    "Pancakes",
		Content:  "body",
		Servings: 2,
		Ingredients: []string{
			"2 cups flour",
			"1/2 cup milk",
			"Salt to taste",
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	scaled, err := svc.ScaledIngredients(ctx, created.ID, 4)
	if err != nil {
		t.Fatalf("scaled ingredients: %v", err)
	}
	want := []string{"4 cups flour", "1 cup milk", "Salt to taste"}
	for i, line := range want {
		if scaled[i] != line {
			t.Fatalf("line %d: expected %q, got %q", i, line, scaled[i])
		}
	}

	identical, err := svc.ScaledIngredients(ctx, created.ID, 2)
	if err != nil {
		t.Fatalf("identity scaling: %v", err)
	}
	if identical[1] != "1/2 cup milk" {
		t.Fatalf("expected untouched line at factor 1, got %q", identical[1])
	}

	if _, err := svc.ScaledIngredients(ctx, created.ID, 0); !errors.Is(err, catalog.ErrServingsInvalid) {
		t.Fatalf("expected ErrServingsInvalid, got %v", err)
	}
}
