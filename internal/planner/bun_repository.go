package planner

import (
	"context"
	"fmt"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunPlanRepository implements PlanRepository with optional caching.
type BunPlanRepository struct {
	repo repository.Repository[*WeeklyPlan]
}

// NewBunPlanRepository creates a plan repository without caching.
func NewBunPlanRepository(db *bun.DB) *BunPlanRepository {
	return NewBunPlanRepositoryWithCache(db, nil, nil)
}

// NewBunPlanRepositoryWithCache creates a plan repository wrapped with the
// supplied cache service.
func NewBunPlanRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunPlanRepository {
	base := NewPlanRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunPlanRepository{repo: base}
}

func (r *BunPlanRepository) Create(ctx context.Context, record *WeeklyPlan) (*WeeklyPlan, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunPlanRepository) GetByID(ctx context.Context, id uuid.UUID) (*WeeklyPlan, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapPlannerError(err, "plan", id.String())
	}
	return record, nil
}

func (r *BunPlanRepository) GetByWeekStart(ctx context.Context, weekStart time.Time) (*WeeklyPlan, error) {
	key := weekStart.Format("2006-01-02")
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.week_start_date = ?", weekStart)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapPlannerError(err, "plan", key)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "plan", Key: key}
	}
	return records[0], nil
}

func (r *BunPlanRepository) List(ctx context.Context) ([]*WeeklyPlan, error) {
	records, _, err := r.repo.List(ctx)
	return records, err
}

func (r *BunPlanRepository) Update(ctx context.Context, record *WeeklyPlan) (*WeeklyPlan, error) {
	updated, err := r.repo.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns("notes", "updated_at"),
	)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *BunPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.repo.Delete(ctx, &WeeklyPlan{ID: id})
}

// BunEntryRepository implements EntryRepository with optional caching.
type BunEntryRepository struct {
	repo repository.Repository[*PlanRecipe]
}

// NewBunEntryRepository creates an entry repository without caching.
func NewBunEntryRepository(db *bun.DB) *BunEntryRepository {
	return NewBunEntryRepositoryWithCache(db, nil, nil)
}

// NewBunEntryRepositoryWithCache creates an entry repository with caching services.
func NewBunEntryRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunEntryRepository {
	base := NewEntryRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunEntryRepository{repo: base}
}

func (r *BunEntryRepository) Create(ctx context.Context, record *PlanRecipe) (*PlanRecipe, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*PlanRecipe, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapPlannerError(err, "plan_recipe", id.String())
	}
	return record, nil
}

func (r *BunEntryRepository) Update(ctx context.Context, record *PlanRecipe) (*PlanRecipe, error) {
	updated, err := r.repo.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns("day_of_week", "meal_order", "servings", "notes"),
	)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *BunEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.repo.Delete(ctx, &PlanRecipe{ID: id})
}

func (r *BunEntryRepository) ListByPlan(ctx context.Context, planID uuid.UUID) ([]*PlanRecipe, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.plan_id = ?", planID).
				Order("day_of_week ASC", "meal_order ASC")
		}),
	)
	if err != nil {
		return nil, mapPlannerError(err, "plan_recipe", planID.String())
	}
	return records, nil
}

func mapPlannerError(err error, resource, key string) error {
	if err == nil {
		return nil
	}

	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}

	return fmt.Errorf("%s repository error: %w", resource, err)
}
