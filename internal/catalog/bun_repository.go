package catalog

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunRecipeRepository implements RecipeRepository with optional caching.
type BunRecipeRepository struct {
	repo repository.Repository[*Recipe]
}

// NewBunRecipeRepository creates a recipe repository without caching.
func NewBunRecipeRepository(db *bun.DB) *BunRecipeRepository {
	return NewBunRecipeRepositoryWithCache(db, nil, nil)
}

// NewBunRecipeRepositoryWithCache creates a recipe repository wrapped with the
// supplied cache service.
func NewBunRecipeRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunRecipeRepository {
	base := NewRecipeRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunRecipeRepository{repo: base}
}

func (r *BunRecipeRepository) Create(ctx context.Context, record *Recipe) (*Recipe, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunRecipeRepository) GetByID(ctx context.Context, id uuid.UUID) (*Recipe, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "recipe", id.String())
	}
	return record, nil
}

func (r *BunRecipeRepository) GetBySlug(ctx context.Context, slug string) (*Recipe, error) {
	record, err := r.repo.GetByIdentifier(ctx, slug)
	if err != nil {
		return nil, mapRepositoryError(err, "recipe", slug)
	}
	return record, nil
}

// GetByShareToken resolves a recipe through its shareable link token.
func (r *BunRecipeRepository) GetByShareToken(ctx context.Context, token string) (*Recipe, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.share_token = ?", token)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "recipe", token)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "recipe", Key: token}
	}
	return records[0], nil
}

func (r *BunRecipeRepository) List(ctx context.Context) ([]*Recipe, error) {
	records, _, err := r.repo.List(ctx)
	return records, err
}

func (r *BunRecipeRepository) Update(ctx context.Context, record *Recipe) (*Recipe, error) {
	updated, err := r.repo.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns(
			"slug",
			"title",
			"content",
			"ingredients",
			"instructions",
			"prep_minutes",
			"cook_minutes",
			"total_minutes",
			"servings",
			"image_url",
			"author",
			"source_url",
			"source_language",
			"nutrition",
			"tags",
			"rating",
			"share_token",
			"updated_at",
		),
	)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *BunRecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.repo.Delete(ctx, &Recipe{ID: id})
}

// BunLanguageRepository implements LanguageRepository with optional caching.
type BunLanguageRepository struct {
	repo repository.Repository[*Language]
}

// NewBunLanguageRepository creates a language repository without caching.
func NewBunLanguageRepository(db *bun.DB) *BunLanguageRepository {
	return NewBunLanguageRepositoryWithCache(db, nil, nil)
}

// NewBunLanguageRepositoryWithCache creates a language repository with caching services.
func NewBunLanguageRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunLanguageRepository {
	base := NewLanguageRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunLanguageRepository{repo: base}
}

func (r *BunLanguageRepository) Create(ctx context.Context, record *Language) (*Language, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunLanguageRepository) GetByCode(ctx context.Context, code string) (*Language, error) {
	record, err := r.repo.GetByIdentifier(ctx, code)
	if err != nil {
		return nil, mapRepositoryError(err, "language", code)
	}
	return record, nil
}

func (r *BunLanguageRepository) List(ctx context.Context) ([]*Language, error) {
	records, _, err := r.repo.List(ctx)
	return records, err
}

// BunTranslationRepository implements TranslationRepository with optional caching.
type BunTranslationRepository struct {
	repo repository.Repository[*RecipeTranslation]
}

// NewBunTranslationRepository creates a translation repository without caching.
func NewBunTranslationRepository(db *bun.DB) *BunTranslationRepository {
	return NewBunTranslationRepositoryWithCache(db, nil, nil)
}

// NewBunTranslationRepositoryWithCache creates a translation repository with caching services.
func NewBunTranslationRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunTranslationRepository {
	base := NewTranslationRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunTranslationRepository{repo: base}
}

func (r *BunTranslationRepository) Create(ctx context.Context, record *RecipeTranslation) (*RecipeTranslation, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunTranslationRepository) Update(ctx context.Context, record *RecipeTranslation) (*RecipeTranslation, error) {
	updated, err := r.repo.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns(
			"title",
			"content",
			"ingredients",
			"instructions",
			"updated_at",
		),
	)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *BunTranslationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.repo.Delete(ctx, &RecipeTranslation{ID: id})
}

func (r *BunTranslationRepository) GetByRecipeAndLanguage(ctx context.Context, recipeID, languageID uuid.UUID) (*RecipeTranslation, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("?TableAlias.recipe_id = ?", recipeID).
				Where("?TableAlias.language_id = ?", languageID)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "recipe_translation", recipeID.String())
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "recipe_translation", Key: recipeID.String()}
	}
	return records[0], nil
}

func (r *BunTranslationRepository) ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]*RecipeTranslation, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.recipe_id = ?", recipeID)
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "recipe_translation", recipeID.String())
	}
	return records, nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}

	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}

	return fmt.Errorf("%s repository error: %w", resource, err)
}
