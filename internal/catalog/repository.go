package catalog

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// RecipeRepository abstracts storage operations for recipes.
type RecipeRepository interface {
	Create(ctx context.Context, record *Recipe) (*Recipe, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Recipe, error)
	GetBySlug(ctx context.Context, slug string) (*Recipe, error)
	List(ctx context.Context) ([]*Recipe, error)
	Update(ctx context.Context, record *Recipe) (*Recipe, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// LanguageRepository resolves configured languages.
type LanguageRepository interface {
	Create(ctx context.Context, record *Language) (*Language, error)
	GetByCode(ctx context.Context, code string) (*Language, error)
	List(ctx context.Context) ([]*Language, error)
}

// TranslationRepository persists per-language recipe translations.
type TranslationRepository interface {
	Create(ctx context.Context, record *RecipeTranslation) (*RecipeTranslation, error)
	Update(ctx context.Context, record *RecipeTranslation) (*RecipeTranslation, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByRecipeAndLanguage(ctx context.Context, recipeID, languageID uuid.UUID) (*RecipeTranslation, error)
	ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]*RecipeTranslation, error)
}

func NewRecipeRepository(db *bun.DB) repository.Repository[*Recipe] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Recipe]{
		NewRecord: func() *Recipe { return &Recipe{} },
		GetID: func(r *Recipe) uuid.UUID {
			return r.ID
		},
		SetID: func(r *Recipe, id uuid.UUID) {
			r.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(r *Recipe) string {
			return r.Slug
		},
	})
}

func NewLanguageRepository(db *bun.DB) repository.Repository[*Language] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Language]{
		NewRecord: func() *Language { return &Language{} },
		GetID: func(l *Language) uuid.UUID {
			return l.ID
		},
		SetID: func(l *Language, id uuid.UUID) {
			l.ID = id
		},
		GetIdentifier: func() string {
			return "code"
		},
		GetIdentifierValue: func(l *Language) string {
			return l.Code
		},
	})
}

func NewTranslationRepository(db *bun.DB) repository.Repository[*RecipeTranslation] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*RecipeTranslation]{
		NewRecord: func() *RecipeTranslation { return &RecipeTranslation{} },
		GetID: func(tr *RecipeTranslation) uuid.UUID {
			return tr.ID
		},
		SetID: func(tr *RecipeTranslation, id uuid.UUID) {
			tr.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(tr *RecipeTranslation) string {
			if tr == nil {
				return ""
			}
			return tr.ID.String()
		},
	})
}
