package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-recipes/internal/identity"
	"github.com/goliatone/go-recipes/internal/logging"
	"github.com/goliatone/go-recipes/internal/scale"
	"github.com/goliatone/go-recipes/internal/share"
	"github.com/goliatone/go-recipes/pkg/interfaces"
	slug "github.com/goliatone/go-slug"
	"github.com/google/uuid"
)

// CreateRecipeRequest carries the fields accepted when registering a recipe.
// Slug is optional; when empty it is derived from the title.
type CreateRecipeRequest struct {
	Slug         string
	Title        string
	Content      string
	Ingredients  []string
	Instructions []string
	PrepMinutes  int
	CookMinutes  int
	TotalMinutes int
	Servings     int
	ImageURL     *string
	Author       *string
	SourceURL    *string
	SourceLang   string
	Nutrition    map[string]any
	Tags         []string
}

// Validate implements ozzo validation for recipe creation.
func (r CreateRecipeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
		validation.Field(&r.Servings, validation.Min(0)),
		validation.Field(&r.PrepMinutes, validation.Min(0)),
		validation.Field(&r.CookMinutes, validation.Min(0)),
		validation.Field(&r.TotalMinutes, validation.Min(0)),
	)
}

// UpdateRecipeRequest carries a partial recipe update. Nil fields are left
// untouched.
type UpdateRecipeRequest struct {
	ID           uuid.UUID
	Slug         *string
	Title        *string
	Content      *string
	Ingredients  []string
	Instructions []string
	PrepMinutes  *int
	CookMinutes  *int
	TotalMinutes *int
	Servings     *int
	ImageURL     *string
	Author       *string
	SourceURL    *string
	SourceLang   *string
	Nutrition    map[string]any
	Tags         []string
}

// UpsertTranslationRequest stores or replaces one translation of a recipe.
type UpsertTranslationRequest struct {
	RecipeID     uuid.UUID
	LanguageCode string
	Title        string
	Content      string
	Ingredients  []string
	Instructions []string
}

func (r UpsertTranslationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.LanguageCode, validation.Required.Error("language code is required")),
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
	)
}

// ListFilter narrows List results. Zero value matches everything.
type ListFilter struct {
	Tag       string
	MinRating int
	Query     string
}

// Service coordinates recipe storage, translations, and serving math.
type Service struct {
	recipes      RecipeRepository
	languages    LanguageRepository
	translations TranslationRepository
	tokens       share.TokenGenerator
	logger       interfaces.Logger
	clock        func() time.Time
}

// Option customizes Service construction.
type Option func(*Service)

func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithTokenGenerator overrides share token minting, mainly for tests.
func WithTokenGenerator(gen share.TokenGenerator) Option {
	return func(s *Service) {
		if gen != nil {
			s.tokens = gen
		}
	}
}

func NewService(recipes RecipeRepository, languages LanguageRepository, translations TranslationRepository, opts ...Option) *Service {
	svc := &Service{
		recipes:      recipes,
		languages:    languages,
		translations: translations,
		tokens:       share.NewTokenGenerator(),
		logger:       logging.NoOp(),
		clock:        time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Create registers a recipe, deriving slug and share token when absent.
func (s *Service) Create(ctx context.Context, req CreateRecipeRequest) (*Recipe, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	recipeSlug := strings.TrimSpace(req.Slug)
	if recipeSlug == "" {
		normalized, err := slug.Normalize(req.Title)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSlugInvalid, err)
		}
		recipeSlug = normalized
	}
	if recipeSlug == "" {
		return nil, ErrSlugRequired
	}
	if !slug.IsValid(recipeSlug) {
		return nil, ErrSlugInvalid
	}

	if existing, err := s.recipes.GetBySlug(ctx, recipeSlug); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrSlugExists, recipeSlug)
	} else if err != nil && !IsNotFound(err) {
		return nil, err
	}

	servings := req.Servings
	if servings < 1 {
		servings = 1
	}

	sourceLang := strings.TrimSpace(req.SourceLang)
	if sourceLang == "" {
		sourceLang = "English"
	}

	now := s.clock()
	record := &Recipe{
		ID:           identity.RecipeUUID(recipeSlug),
		Slug:         recipeSlug,
		Title:        strings.TrimSpace(req.Title),
		Content:      req.Content,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		PrepMinutes:  req.PrepMinutes,
		CookMinutes:  req.CookMinutes,
		TotalMinutes: req.TotalMinutes,
		Servings:     servings,
		ImageURL:     req.ImageURL,
		Author:       req.Author,
		SourceURL:    req.SourceURL,
		SourceLang:   sourceLang,
		Nutrition:    req.Nutrition,
		Tags:         req.Tags,
		ShareToken:   s.tokens.Token(recipeSlug),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if record.TotalMinutes == 0 {
		record.TotalMinutes = record.PrepMinutes + record.CookMinutes
	}

	created, err := s.recipes.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	s.logger.Info("recipe created", "slug", created.Slug, "id", created.ID)
	return created, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Recipe, error) {
	if id == uuid.Nil {
		return nil, ErrRecipeIDRequired
	}
	return s.recipes.GetByID(ctx, id)
}

func (s *Service) GetBySlug(ctx context.Context, recipeSlug string) (*Recipe, error) {
	recipeSlug = strings.TrimSpace(recipeSlug)
	if recipeSlug == "" {
		return nil, ErrSlugRequired
	}
	return s.recipes.GetBySlug(ctx, recipeSlug)
}

// GetByShareToken resolves a recipe from its public share link token.
func (s *Service) GetByShareToken(ctx context.Context, token string) (*Recipe, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrShareTokenRequired
	}
	finder, ok := s.recipes.(interface {
		GetByShareToken(ctx context.Context, token string) (*Recipe, error)
	})
	if !ok {
		return nil, &NotFoundError{Resource: "recipe", Key: token}
	}
	return finder.GetByShareToken(ctx, token)
}

// List returns recipes matching the filter, sorted by title.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Recipe, error) {
	records, err := s.recipes.List(ctx)
	if err != nil {
		return nil, err
	}

	out := records[:0:0]
	for _, record := range records {
		if matchesFilter(record, filter) {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
	})
	return out, nil
}

func matchesFilter(record *Recipe, filter ListFilter) bool {
	if record == nil {
		return false
	}
	if filter.MinRating > 0 && record.Rating < filter.MinRating {
		return false
	}
	if filter.Tag != "" {
		found := false
		for _, tag := range record.Tags {
			if strings.EqualFold(tag, filter.Tag) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if q := strings.ToLower(strings.TrimSpace(filter.Query)); q != "" {
		if !strings.Contains(strings.ToLower(record.Title), q) &&
			!strings.Contains(strings.ToLower(record.Content), q) {
			return false
		}
	}
	return true
}

// Update applies a partial update and bumps UpdatedAt.
func (s *Service) Update(ctx context.Context, req UpdateRecipeRequest) (*Recipe, error) {
	if req.ID == uuid.Nil {
		return nil, ErrRecipeIDRequired
	}

	record, err := s.recipes.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Slug != nil {
		next := strings.TrimSpace(*req.Slug)
		if next == "" {
			return nil, ErrSlugRequired
		}
		if !slug.IsValid(next) {
			return nil, ErrSlugInvalid
		}
		if next != record.Slug {
			if existing, err := s.recipes.GetBySlug(ctx, next); err == nil && existing != nil && existing.ID != record.ID {
				return nil, fmt.Errorf("%w: %s", ErrSlugExists, next)
			} else if err != nil && !IsNotFound(err) {
				return nil, err
			}
			record.Slug = next
		}
	}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, ErrTitleRequired
		}
		record.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return nil, ErrContentRequired
		}
		record.Content = *req.Content
	}
	if req.Ingredients != nil {
		record.Ingredients = req.Ingredients
	}
	if req.Instructions != nil {
		record.Instructions = req.Instructions
	}
	if req.PrepMinutes != nil {
		record.PrepMinutes = *req.PrepMinutes
	}
	if req.CookMinutes != nil {
		record.CookMinutes = *req.CookMinutes
	}
	if req.TotalMinutes != nil {
		record.TotalMinutes = *req.TotalMinutes
	}
	if req.Servings != nil {
		if *req.Servings < 1 {
			return nil, ErrServingsInvalid
		}
		record.Servings = *req.Servings
	}
	if req.ImageURL != nil {
		record.ImageURL = req.ImageURL
	}
	if req.Author != nil {
		record.Author = req.Author
	}
	if req.SourceURL != nil {
		record.SourceURL = req.SourceURL
	}
	if req.SourceLang != nil && strings.TrimSpace(*req.SourceLang) != "" {
		record.SourceLang = strings.TrimSpace(*req.SourceLang)
	}
	if req.Nutrition != nil {
		record.Nutrition = req.Nutrition
	}
	if req.Tags != nil {
		record.Tags = req.Tags
	}

	record.UpdatedAt = s.clock()

	updated, err := s.recipes.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Info("recipe updated", "slug", updated.Slug, "id", updated.ID)
	return updated, nil
}

// Delete removes a recipe and all its translations.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrRecipeIDRequired
	}

	translations, err := s.translations.ListByRecipe(ctx, id)
	if err != nil && !IsNotFound(err) {
		return err
	}
	for _, tr := range translations {
		if err := s.translations.Delete(ctx, tr.ID); err != nil && !IsNotFound(err) {
			return err
		}
	}

	if err := s.recipes.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("recipe deleted", "id", id)
	return nil
}

// Rate sets a recipe rating between 0 and 5 inclusive.
func (s *Service) Rate(ctx context.Context, id uuid.UUID, rating int) (*Recipe, error) {
	if id == uuid.Nil {
		return nil, ErrRecipeIDRequired
	}
	if rating < 0 || rating > 5 {
		return nil, ErrRatingOutOfRange
	}

	record, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	record.Rating = rating
	record.UpdatedAt = s.clock()
	return s.recipes.Update(ctx, record)
}

// UpsertTranslation stores a translation, replacing any existing one for the
// same recipe and language.
func (s *Service) UpsertTranslation(ctx context.Context, req UpsertTranslationRequest) (*RecipeTranslation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.RecipeID == uuid.Nil {
		return nil, ErrRecipeIDRequired
	}

	if _, err := s.recipes.GetByID(ctx, req.RecipeID); err != nil {
		return nil, err
	}

	lang, err := s.languages.GetByCode(ctx, req.LanguageCode)
	if err != nil {
		if IsNotFound(err) {
			return nil, &UnknownLanguageError{RecipeID: req.RecipeID, Code: req.LanguageCode}
		}
		return nil, err
	}

	now := s.clock()
	existing, err := s.translations.GetByRecipeAndLanguage(ctx, req.RecipeID, lang.ID)
	if err != nil && !IsNotFound(err) {
		return nil, err
	}

	if existing != nil {
		existing.Title = req.Title
		existing.Content = req.Content
		existing.Ingredients = req.Ingredients
		existing.Instructions = req.Instructions
		existing.UpdatedAt = now
		return s.translations.Update(ctx, existing)
	}

	record := &RecipeTranslation{
		ID:           uuid.New(),
		RecipeID:     req.RecipeID,
		LanguageID:   lang.ID,
		Title:        req.Title,
		Content:      req.Content,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := s.translations.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Info("translation stored", "recipe_id", req.RecipeID, "language", lang.Code)
	return created, nil
}

// DeleteTranslation removes one translation identified by recipe and language.
func (s *Service) DeleteTranslation(ctx context.Context, recipeID uuid.UUID, languageCode string) error {
	if recipeID == uuid.Nil {
		return ErrRecipeIDRequired
	}
	lang, err := s.languages.GetByCode(ctx, languageCode)
	if err != nil {
		if IsNotFound(err) {
			return &UnknownLanguageError{RecipeID: recipeID, Code: languageCode}
		}
		return err
	}
	existing, err := s.translations.GetByRecipeAndLanguage(ctx, recipeID, lang.ID)
	if err != nil {
		if IsNotFound(err) {
			return ErrTranslationNotFound
		}
		return err
	}
	return s.translations.Delete(ctx, existing.ID)
}

// Translations returns the stored translations for a recipe.
func (s *Service) Translations(ctx context.Context, recipeID uuid.UUID) ([]*RecipeTranslation, error) {
	if recipeID == uuid.Nil {
		return nil, ErrRecipeIDRequired
	}
	return s.translations.ListByRecipe(ctx, recipeID)
}

// AvailableLanguages lists active translation targets sorted by display name.
func (s *Service) AvailableLanguages(ctx context.Context) ([]*Language, error) {
	records, err := s.languages.List(ctx)
	if err != nil {
		return nil, err
	}
	out := records[:0:0]
	for _, record := range records {
		if record != nil && record.IsActive {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Display < out[j].Display
	})
	return out, nil
}

// ScaledIngredients returns the recipe ingredient lines adjusted to the
// desired serving count. Stored lines are never modified.
func (s *Service) ScaledIngredients(ctx context.Context, id uuid.UUID, servings int) ([]string, error) {
	if servings < 1 {
		return nil, ErrServingsInvalid
	}
	record, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	base := record.Servings
	if base < 1 {
		base = 1
	}
	factor := float64(servings) / float64(base)
	return scale.ScaleIngredients(record.Ingredients, factor), nil
}
