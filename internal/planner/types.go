// Package planner manages weekly meal plans: which recipes are cooked on
// which day and at what serving count, plus an aggregated shopping list.
package planner

import (
	"time"

	"github.com/goliatone/go-recipes/internal/catalog"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// WeeklyPlan groups planned meals for one week, keyed by the Monday of that
// week.
type WeeklyPlan struct {
	bun.BaseModel `bun:"table:weekly_plans,alias:wp"`

	ID        uuid.UUID  `bun:",pk,type:uuid"       json:"id"`
	WeekStart time.Time  `bun:"week_start_date,notnull" json:"week_start_date"`
	Notes     string     `bun:"notes"               json:"notes,omitempty"`
	DeletedAt *time.Time `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
	CreatedAt time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Recipes []*PlanRecipe `bun:"rel:has-many,join:id=plan_id" json:"recipes,omitempty"`
}

// PlanRecipe links a recipe to a day within a weekly plan. DayOfWeek runs
// 1=Monday through 7=Sunday; MealOrder sorts meals within the day.
type PlanRecipe struct {
	bun.BaseModel `bun:"table:plan_recipes,alias:pr"`

	ID        uuid.UUID  `bun:",pk,type:uuid"          json:"id"`
	PlanID    uuid.UUID  `bun:"plan_id,notnull,type:uuid"   json:"plan_id"`
	RecipeID  uuid.UUID  `bun:"recipe_id,notnull,type:uuid" json:"recipe_id"`
	DayOfWeek int        `bun:"day_of_week,notnull"    json:"day_of_week"`
	MealOrder int        `bun:"meal_order,default:0"   json:"meal_order"`
	Servings  int        `bun:"servings,default:1"     json:"servings"`
	Notes     string     `bun:"notes"                  json:"notes,omitempty"`
	DeletedAt *time.Time `bun:"deleted_at,nullzero"    json:"deleted_at,omitempty"`
	CreatedAt time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`

	Recipe *catalog.Recipe `bun:"rel:belongs-to,join:recipe_id=id" json:"recipe,omitempty"`
}

// ShoppingItem is one ingredient line in an aggregated shopping list,
// scaled to the planned serving counts.
type ShoppingItem struct {
	Line       string `json:"line"`
	RecipeSlug string `json:"recipe_slug"`
	DayOfWeek  int    `json:"day_of_week"`
}
