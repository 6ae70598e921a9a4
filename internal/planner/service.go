package planner

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/goliatone/go-recipes/internal/catalog"
	"github.com/goliatone/go-recipes/internal/identity"
	"github.com/goliatone/go-recipes/internal/logging"
	"github.com/goliatone/go-recipes/internal/scale"
	"github.com/goliatone/go-recipes/pkg/interfaces"
	"github.com/google/uuid"
)

// WeekStartFor returns the Monday of the week containing t, truncated to a
// date in UTC.
func WeekStartFor(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// Service coordinates weekly plans, their entries, and shopping lists.
type Service struct {
	plans   PlanRepository
	entries EntryRepository
	catalog *catalog.Service
	logger  interfaces.Logger
	clock   func() time.Time
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

func NewService(plans PlanRepository, entries EntryRepository, catalogSvc *catalog.Service, opts ...Option) *Service {
	svc := &Service{
		plans:   plans,
		entries: entries,
		catalog: catalogSvc,
		logger:  logging.NoOp(),
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// CreatePlan registers a plan for the week containing the given date. Any
// date within the week is accepted; it is normalized to that week's Monday.
func (s *Service) CreatePlan(ctx context.Context, date time.Time, notes string) (*WeeklyPlan, error) {
	weekStart := WeekStartFor(date)

	if existing, err := s.plans.GetByWeekStart(ctx, weekStart); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrWeekExists, weekStart.Format("2006-01-02"))
	} else if err != nil && !IsNotFound(err) {
		return nil, err
	}

	now := s.clock()
	plan := &WeeklyPlan{
		ID:        identity.PlanUUID(weekStart.Format("2006-01-02")),
		WeekStart: weekStart,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := s.plans.Create(ctx, plan)
	if err != nil {
		return nil, err
	}
	s.logger.Info("plan created", "week_start", weekStart.Format("2006-01-02"))
	return created, nil
}

// GetPlan loads a plan with its entries sorted by day then meal order.
func (s *Service) GetPlan(ctx context.Context, id uuid.UUID) (*WeeklyPlan, error) {
	if id == uuid.Nil {
		return nil, ErrPlanIDRequired
	}
	plan, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	entries, err := s.entries.ListByPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	sortEntries(entries)
	plan.Recipes = entries
	return plan, nil
}

// GetPlanForWeek loads the plan covering the week containing the date.
func (s *Service) GetPlanForWeek(ctx context.Context, date time.Time) (*WeeklyPlan, error) {
	plan, err := s.plans.GetByWeekStart(ctx, WeekStartFor(date))
	if err != nil {
		return nil, err
	}
	return s.GetPlan(ctx, plan.ID)
}

// ListPlans returns all plans, most recent week first.
func (s *Service) ListPlans(ctx context.Context) ([]*WeeklyPlan, error) {
	plans, err := s.plans.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].WeekStart.After(plans[j].WeekStart)
	})
	return plans, nil
}

// UpdateNotes replaces a plan's notes.
func (s *Service) UpdateNotes(ctx context.Context, id uuid.UUID, notes string) (*WeeklyPlan, error) {
	plan, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	plan.Notes = notes
	plan.UpdatedAt = s.clock()
	return s.plans.Update(ctx, plan)
}

// DeletePlan removes a plan and all its entries.
func (s *Service) DeletePlan(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrPlanIDRequired
	}
	entries, err := s.entries.ListByPlan(ctx, id)
	if err != nil && !IsNotFound(err) {
		return err
	}
	for _, entry := range entries {
		if err := s.entries.Delete(ctx, entry.ID); err != nil && !IsNotFound(err) {
			return err
		}
	}
	if err := s.plans.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("plan deleted", "id", id)
	return nil
}

// AddRecipe schedules a recipe on a day of the plan. Servings below 1 are
// clamped to 1; the entry is appended after existing meals on that day.
func (s *Service) AddRecipe(ctx context.Context, planID, recipeID uuid.UUID, dayOfWeek, servings int, notes string) (*PlanRecipe, error) {
	if planID == uuid.Nil {
		return nil, ErrPlanIDRequired
	}
	if recipeID == uuid.Nil {
		return nil, ErrRecipeIDRequired
	}
	if dayOfWeek < 1 || dayOfWeek > 7 {
		return nil, ErrDayOutOfRange
	}
	if servings < 1 {
		servings = 1
	}

	if _, err := s.plans.GetByID(ctx, planID); err != nil {
		return nil, err
	}
	recipe, err := s.catalog.Get(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	entries, err := s.entries.ListByPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	order := 0
	for _, entry := range entries {
		if entry.DayOfWeek == dayOfWeek && entry.MealOrder >= order {
			order = entry.MealOrder + 1
		}
	}

	created, err := s.entries.Create(ctx, &PlanRecipe{
		ID:        uuid.New(),
		PlanID:    planID,
		RecipeID:  recipeID,
		DayOfWeek: dayOfWeek,
		MealOrder: order,
		Servings:  servings,
		Notes:     notes,
		CreatedAt: s.clock(),
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("recipe planned", "slug", recipe.Slug, "day", dayOfWeek, "servings", servings)
	return created, nil
}

// RemoveRecipe drops an entry from a plan.
func (s *Service) RemoveRecipe(ctx context.Context, planID, entryID uuid.UUID) error {
	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry.PlanID != planID {
		return ErrEntryNotInPlan
	}
	return s.entries.Delete(ctx, entryID)
}

// MoveRecipe reschedules an entry to another day and position.
func (s *Service) MoveRecipe(ctx context.Context, planID, entryID uuid.UUID, dayOfWeek, mealOrder int) (*PlanRecipe, error) {
	if dayOfWeek < 1 || dayOfWeek > 7 {
		return nil, ErrDayOutOfRange
	}
	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.PlanID != planID {
		return nil, ErrEntryNotInPlan
	}
	entry.DayOfWeek = dayOfWeek
	if mealOrder >= 0 {
		entry.MealOrder = mealOrder
	}
	return s.entries.Update(ctx, entry)
}

// ShoppingList aggregates the ingredient lines of every planned recipe,
// scaled to the planned serving counts. Stored recipes are not modified.
func (s *Service) ShoppingList(ctx context.Context, planID uuid.UUID) ([]ShoppingItem, error) {
	if planID == uuid.Nil {
		return nil, ErrPlanIDRequired
	}
	entries, err := s.entries.ListByPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	sortEntries(entries)

	items := make([]ShoppingItem, 0)
	for _, entry := range entries {
		recipe, err := s.catalog.Get(ctx, entry.RecipeID)
		if err != nil {
			if catalog.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		base := recipe.Servings
		if base < 1 {
			base = 1
		}
		factor := float64(entry.Servings) / float64(base)
		for _, line := range scale.ScaleIngredients(recipe.Ingredients, factor) {
			items = append(items, ShoppingItem{
				Line:       line,
				RecipeSlug: recipe.Slug,
				DayOfWeek:  entry.DayOfWeek,
			})
		}
	}
	return items, nil
}

func sortEntries(entries []*PlanRecipe) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].DayOfWeek != entries[j].DayOfWeek {
			return entries[i].DayOfWeek < entries[j].DayOfWeek
		}
		return entries[i].MealOrder < entries[j].MealOrder
	})
}
