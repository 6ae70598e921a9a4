package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryRecipeRepository is an in-memory RecipeRepository used by tests and
// by embedders that do not want persistent storage.
type MemoryRecipeRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*Recipe
}

func NewMemoryRecipeRepository() *MemoryRecipeRepository {
	return &MemoryRecipeRepository{records: map[uuid.UUID]*Recipe{}}
}

func (m *MemoryRecipeRepository) Create(_ context.Context, record *Recipe) (*Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	clone := cloneRecipe(record)
	m.records[clone.ID] = clone
	return cloneRecipe(clone), nil
}

func (m *MemoryRecipeRepository) GetByID(_ context.Context, id uuid.UUID) (*Recipe, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[id]
	if !ok {
		return nil, &NotFoundError{Resource: "recipe", Key: id.String()}
	}
	return cloneRecipe(record), nil
}

func (m *MemoryRecipeRepository) GetBySlug(_ context.Context, slug string) (*Recipe, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, record := range m.records {
		if record.Slug == slug {
			return cloneRecipe(record), nil
		}
	}
	return nil, &NotFoundError{Resource: "recipe", Key: slug}
}

func (m *MemoryRecipeRepository) GetByShareToken(_ context.Context, token string) (*Recipe, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, record := range m.records {
		if record.ShareToken != "" && record.ShareToken == token {
			return cloneRecipe(record), nil
		}
	}
	return nil, &NotFoundError{Resource: "recipe", Key: token}
}

func (m *MemoryRecipeRepository) List(_ context.Context) ([]*Recipe, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Recipe, 0, len(m.records))
	for _, record := range m.records {
		out = append(out, cloneRecipe(record))
	}
	return out, nil
}

func (m *MemoryRecipeRepository) Update(_ context.Context, record *Recipe) (*Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[record.ID]; !ok {
		return nil, &NotFoundError{Resource: "recipe", Key: record.ID.String()}
	}
	clone := cloneRecipe(record)
	m.records[clone.ID] = clone
	return cloneRecipe(clone), nil
}

func (m *MemoryRecipeRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return &NotFoundError{Resource: "recipe", Key: id.String()}
	}
	delete(m.records, id)
	return nil
}

// MemoryLanguageRepository is an in-memory LanguageRepository.
type MemoryLanguageRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*Language
}

func NewMemoryLanguageRepository() *MemoryLanguageRepository {
	return &MemoryLanguageRepository{records: map[uuid.UUID]*Language{}}
}

func (m *MemoryLanguageRepository) Create(_ context.Context, record *Language) (*Language, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	clone := cloneLanguage(record)
	m.records[clone.ID] = clone
	return cloneLanguage(clone), nil
}

// Put inserts or replaces a language, keeping its ID. Used for seeding.
func (m *MemoryLanguageRepository) Put(record *Language) {
	if record == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	m.records[record.ID] = cloneLanguage(record)
}

func (m *MemoryLanguageRepository) GetByCode(_ context.Context, code string) (*Language, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, record := range m.records {
		if record.Code == code {
			return cloneLanguage(record), nil
		}
	}
	return nil, &NotFoundError{Resource: "language", Key: code}
}

func (m *MemoryLanguageRepository) List(_ context.Context) ([]*Language, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Language, 0, len(m.records))
	for _, record := range m.records {
		out = append(out, cloneLanguage(record))
	}
	return out, nil
}

// MemoryTranslationRepository is an in-memory TranslationRepository.
type MemoryTranslationRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*RecipeTranslation
}

func NewMemoryTranslationRepository() *MemoryTranslationRepository {
	return &MemoryTranslationRepository{records: map[uuid.UUID]*RecipeTranslation{}}
}

func (m *MemoryTranslationRepository) Create(_ context.Context, record *RecipeTranslation) (*RecipeTranslation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	clone := cloneTranslation(record)
	m.records[clone.ID] = clone
	return cloneTranslation(clone), nil
}

func (m *MemoryTranslationRepository) Update(_ context.Context, record *RecipeTranslation) (*RecipeTranslation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[record.ID]; !ok {
		return nil, &NotFoundError{Resource: "recipe_translation", Key: record.ID.String()}
	}
	clone := cloneTranslation(record)
	m.records[clone.ID] = clone
	return cloneTranslation(clone), nil
}

func (m *MemoryTranslationRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return &NotFoundError{Resource: "recipe_translation", Key: id.String()}
	}
	delete(m.records, id)
	return nil
}

func (m *MemoryTranslationRepository) GetByRecipeAndLanguage(_ context.Context, recipeID, languageID uuid.UUID) (*RecipeTranslation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, record := range m.records {
		if record.RecipeID == recipeID && record.LanguageID == languageID {
			return cloneTranslation(record), nil
		}
	}
	return nil, &NotFoundError{Resource: "recipe_translation", Key: recipeID.String()}
}

func (m *MemoryTranslationRepository) ListByRecipe(_ context.Context, recipeID uuid.UUID) ([]*RecipeTranslation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*RecipeTranslation, 0)
	for _, record := range m.records {
		if record.RecipeID == recipeID {
			out = append(out, cloneTranslation(record))
		}
	}
	return out, nil
}

func cloneRecipe(in *Recipe) *Recipe {
	if in == nil {
		return nil
	}
	out := *in
	out.Ingredients = append([]string(nil), in.Ingredients...)
	out.Instructions = append([]string(nil), in.Instructions...)
	out.Tags = append([]string(nil), in.Tags...)
	if in.Nutrition != nil {
		out.Nutrition = make(map[string]any, len(in.Nutrition))
		for k, v := range in.Nutrition {
			out.Nutrition[k] = v
		}
	}
	if len(in.Translations) > 0 {
		out.Translations = make([]*RecipeTranslation, len(in.Translations))
		for i, tr := range in.Translations {
			out.Translations[i] = cloneTranslation(tr)
		}
	}
	return &out
}

func cloneLanguage(in *Language) *Language {
	if in == nil {
		return nil
	}
	out := *in
	return &out
}

func cloneTranslation(in *RecipeTranslation) *RecipeTranslation {
	if in == nil {
		return nil
	}
	out := *in
	out.Ingredients = append([]string(nil), in.Ingredients...)
	out.Instructions = append([]string(nil), in.Instructions...)
	out.Language = cloneLanguage(in.Language)
	return &out
}
