package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/goliatone/go-recipes/internal/catalog"
	"github.com/google/uuid"
	"github.com/goliatone/go-recipes/pkg/testsupport"
	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
)

func TestCatalogService_WithBunStorageAndCache(t *testing.T) {
	ctx := context.Background()

	bunDB, err := testsupport.NewBunSQLiteDB()
	if err != nil {
		t.Fatalf("new sqlite db: %v", err)
	}
	t.Cleanup(func() {
		_ = bunDB.Close()
	})

	createCatalogTables(t, bunDB)

	cacheCfg := repocache.DefaultConfig()
	cacheCfg.TTL = time.Minute
	cacheService, err := repocache.NewCacheService(cacheCfg)
	if err != nil {
		t.Fatalf("cache service: %v", err)
	}
	keySerializer := repocache.NewDefaultKeySerializer()

	recipeRepo := catalog.NewBunRecipeRepositoryWithCache(bunDB, cacheService, keySerializer)
	languageRepo := catalog.NewBunLanguageRepositoryWithCache(bunDB, cacheService, keySerializer)
	translationRepo := catalog.NewBunTranslationRepositoryWithCache(bunDB, cacheService, keySerializer)

	svc := catalog.NewService(recipeRepo, languageRepo, translationRepo)

	created, err := svc.Create(ctx, catalog.CreateRecipeRequest{
		Title:       "Classic Pancakes",
		Content:     "## Ingredients\n\n- 2 cups flour\n",
		Ingredients: []string{"2 cups flour", "1/2 cup milk"},
		Servings:    2,
		Tags:        []string{"breakfast"},
	})
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	if created.Slug != "classic-pancakes" {
		t.Fatalf("unexpected slug %q", created.Slug)
	}
	if created.ShareToken == "" {
		t.Fatal("expected share token")
	}

	bySlug, err := svc.GetBySlug(ctx, "classic-pancakes")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if bySlug.ID != created.ID {
		t.Fatalf("expected same recipe, got %s and %s", bySlug.ID, created.ID)
	}

	// Second lookup exercises the cached repository path.
	if _, err := svc.GetBySlug(ctx, "classic-pancakes"); err != nil {
		t.Fatalf("cached get by slug: %v", err)
	}

	byToken, err := svc.GetByShareToken(ctx, created.ShareToken)
	if err != nil {
		t.Fatalf("get by share token: %v", err)
	}
	if byToken.ID != created.ID {
		t.Fatal("expected share token lookup to return the recipe")
	}

	if _, err := languageRepo.Create(ctx, &catalog.Language{
		ID:       uuid.New(),
		Code:     "es",
		Display:  "Spanish",
		IsActive: true,
	}); err != nil {
		t.Fatalf("create language: %v", err)
	}

	translation, err := svc.UpsertTranslation(ctx, catalog.UpsertTranslationRequest{
		RecipeID:     created.ID,
		LanguageCode: "es",
		Title:        "Panqueques Clásicos",
		Content:      "## Ingredientes\n\n- 480ml de harina\n",
	})
	if err != nil {
		t.Fatalf("upsert translation: %v", err)
	}

	replaced, err := svc.UpsertTranslation(ctx, catalog.UpsertTranslationRequest{
		RecipeID:     created.ID,
		LanguageCode: "es",
		Title:        "Panqueques",
		Content:      "actualizado",
	})
	if err != nil {
		t.Fatalf("replace translation: %v", err)
	}
	if replaced.ID != translation.ID {
		t.Fatal("expected replacement to keep the translation id")
	}

	rating := 5
	updated, err := svc.Update(ctx, catalog.UpdateRecipeRequest{
		ID:     created.ID,
		Rating: &rating,
	})
	if err != nil {
		t.Fatalf("update recipe: %v", err)
	}
	if updated.Rating != 5 {
		t.Fatalf("expected rating persisted, got %d", updated.Rating)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete recipe: %v", err)
	}
	if _, err := svc.GetBySlug(ctx, "classic-pancakes"); !catalog.IsNotFound(err) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func createCatalogTables(t *testing.T, db *bun.DB) {
	t.Helper()
	ctx := context.Background()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS languages (
			id TEXT PRIMARY KEY,
			code TEXT NOT NULL,
			display_name TEXT NOT NULL,
			native_name TEXT,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			is_default BOOLEAN NOT NULL DEFAULT FALSE,
			deleted_at TEXT,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS recipes (
			id TEXT PRIMARY KEY,
			slug TEXT NOT NULL,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			ingredients TEXT,
			instructions TEXT,
			prep_minutes INTEGER DEFAULT 0,
			cook_minutes INTEGER DEFAULT 0,
			total_minutes INTEGER DEFAULT 0,
			servings INTEGER NOT NULL DEFAULT 1,
			image_url TEXT,
			author TEXT,
			source_url TEXT,
			source_language TEXT NOT NULL DEFAULT 'English',
			nutrition TEXT,
			tags TEXT,
			rating INTEGER NOT NULL DEFAULT 0,
			share_token TEXT,
			deleted_at TEXT,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS recipe_translations (
			id TEXT PRIMARY KEY,
			recipe_id TEXT NOT NULL,
			language_id TEXT NOT NULL,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			ingredients TEXT,
			instructions TEXT,
			deleted_at TEXT,
			created_at TEXT,
			updated_at TEXT
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("create table: %v", err)
		}
	}
}
