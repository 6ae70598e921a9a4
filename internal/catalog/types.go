package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Language represents a translation target configured for the household.
type Language struct {
	bun.BaseModel `bun:"table:languages,alias:lang"`

	ID         uuid.UUID  `bun:",pk,type:uuid"          json:"id"`
	Code       string     `bun:"code,notnull"           json:"code"`
	Display    string     `bun:"display_name,notnull"   json:"display_name"`
	NativeName *string    `bun:"native_name"            json:"native_name,omitempty"`
	IsActive   bool       `bun:"is_active,notnull,default:true"   json:"is_active"`
	IsDefault  bool       `bun:"is_default,notnull,default:false" json:"is_default"`
	DeletedAt  *time.Time `bun:"deleted_at,nullzero"    json:"deleted_at,omitempty"`
	CreatedAt  time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}

// Recipe is the canonical record storing original-language content only.
// Translations hang off the record per language; measurements are converted
// to metric exactly once at import time, never on read.
type Recipe struct {
	bun.BaseModel `bun:"table:recipes,alias:r"`

	ID           uuid.UUID      `bun:",pk,type:uuid"        json:"id"`
	Slug         string         `bun:"slug,notnull"         json:"slug"`
	Title        string         `bun:"title,notnull"        json:"title"`
	Content      string         `bun:"content,notnull"      json:"content"`
	Ingredients  []string       `bun:"ingredients,type:jsonb"  json:"ingredients"`
	Instructions []string       `bun:"instructions,type:jsonb" json:"instructions"`
	PrepMinutes  int            `bun:"prep_minutes"         json:"prep_minutes"`
	CookMinutes  int            `bun:"cook_minutes"         json:"cook_minutes"`
	TotalMinutes int            `bun:"total_minutes"        json:"total_minutes"`
	Servings     int            `bun:"servings,notnull,default:1" json:"servings"`
	ImageURL     *string        `bun:"image_url"            json:"image_url,omitempty"`
	Author       *string        `bun:"author"               json:"author,omitempty"`
	SourceURL    *string        `bun:"source_url"           json:"source_url,omitempty"`
	SourceLang   string         `bun:"source_language,notnull,default:'English'" json:"source_language"`
	Nutrition    map[string]any `bun:"nutrition,type:jsonb" json:"nutrition,omitempty"`
	Tags         []string       `bun:"tags,type:jsonb"      json:"tags,omitempty"`
	Rating       int            `bun:"rating,notnull,default:0" json:"rating"`
	ShareToken   string         `bun:"share_token"          json:"share_token,omitempty"`
	DeletedAt    *time.Time     `bun:"deleted_at,nullzero"  json:"deleted_at,omitempty"`
	CreatedAt    time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Translations []*RecipeTranslation `bun:"rel:has-many,join:id=recipe_id" json:"translations,omitempty"`
}

// Translation returns the stored translation for the supplied language code,
// or nil when the recipe has not been translated into it yet.
func (r *Recipe) Translation(code string) *RecipeTranslation {
	if r == nil {
		return nil
	}
	for _, tr := range r.Translations {
		if tr != nil && tr.Language != nil && tr.Language.Code == code {
			return tr
		}
	}
	return nil
}

// RecipeTranslation stores a recipe rendered into a specific language. One
// translation per recipe and language; the unique pair is enforced by the
// schema.
type RecipeTranslation struct {
	bun.BaseModel `bun:"table:recipe_translations,alias:rt"`

	ID           uuid.UUID  `bun:",pk,type:uuid"           json:"id"`
	RecipeID     uuid.UUID  `bun:"recipe_id,notnull,type:uuid"   json:"recipe_id"`
	LanguageID   uuid.UUID  `bun:"language_id,notnull,type:uuid" json:"language_id"`
	Title        string     `bun:"title,notnull"           json:"title"`
	Content      string     `bun:"content,notnull"         json:"content"`
	Ingredients  []string   `bun:"ingredients,type:jsonb"  json:"ingredients"`
	Instructions []string   `bun:"instructions,type:jsonb" json:"instructions"`
	DeletedAt    *time.Time `bun:"deleted_at,nullzero"     json:"deleted_at,omitempty"`
	CreatedAt    time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Language *Language `bun:"rel:belongs-to,join:language_id=id" json:"language,omitempty"`
}
