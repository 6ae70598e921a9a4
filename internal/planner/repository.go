package planner

import (
	"context"
	"time"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// PlanRepository abstracts storage for weekly plans.
type PlanRepository interface {
	Create(ctx context.Context, record *WeeklyPlan) (*WeeklyPlan, error)
	GetByID(ctx context.Context, id uuid.UUID) (*WeeklyPlan, error)
	GetByWeekStart(ctx context.Context, weekStart time.Time) (*WeeklyPlan, error)
	List(ctx context.Context) ([]*WeeklyPlan, error)
	Update(ctx context.Context, record *WeeklyPlan) (*WeeklyPlan, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// EntryRepository abstracts storage for plan entries.
type EntryRepository interface {
	Create(ctx context.Context, record *PlanRecipe) (*PlanRecipe, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PlanRecipe, error)
	Update(ctx context.Context, record *PlanRecipe) (*PlanRecipe, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByPlan(ctx context.Context, planID uuid.UUID) ([]*PlanRecipe, error)
}

func NewPlanRepository(db *bun.DB) repository.Repository[*WeeklyPlan] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*WeeklyPlan]{
		NewRecord: func() *WeeklyPlan { return &WeeklyPlan{} },
		GetID: func(p *WeeklyPlan) uuid.UUID {
			return p.ID
		},
		SetID: func(p *WeeklyPlan, id uuid.UUID) {
			p.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(p *WeeklyPlan) string {
			if p == nil {
				return ""
			}
			return p.ID.String()
		},
	})
}

func NewEntryRepository(db *bun.DB) repository.Repository[*PlanRecipe] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*PlanRecipe]{
		NewRecord: func() *PlanRecipe { return &PlanRecipe{} },
		GetID: func(e *PlanRecipe) uuid.UUID {
			return e.ID
		},
		SetID: func(e *PlanRecipe, id uuid.UUID) {
			e.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(e *PlanRecipe) string {
			if e == nil {
				return ""
			}
			return e.ID.String()
		},
	})
}
