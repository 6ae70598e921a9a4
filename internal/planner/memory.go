package planner

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryPlanRepository is an in-memory PlanRepository for tests and
// non-persistent embedders.
type MemoryPlanRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*WeeklyPlan
}

func NewMemoryPlanRepository() *MemoryPlanRepository {
	return &MemoryPlanRepository{records: map[uuid.UUID]*WeeklyPlan{}}
}

func (m *MemoryPlanRepository) Create(_ context.Context, record *WeeklyPlan) (*WeeklyPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	clone := clonePlan(record)
	m.records[clone.ID] = clone
	return clonePlan(clone), nil
}

func (m *MemoryPlanRepository) GetByID(_ context.Context, id uuid.UUID) (*WeeklyPlan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[id]
	if !ok {
		return nil, &NotFoundError{Resource: "plan", Key: id.String()}
	}
	return clonePlan(record), nil
}

func (m *MemoryPlanRepository) GetByWeekStart(_ context.Context, weekStart time.Time) (*WeeklyPlan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, record := range m.records {
		if record.WeekStart.Equal(weekStart) {
			return clonePlan(record), nil
		}
	}
	return nil, &NotFoundError{Resource: "plan", Key: weekStart.Format("2006-01-02")}
}

func (m *MemoryPlanRepository) List(_ context.Context) ([]*WeeklyPlan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*WeeklyPlan, 0, len(m.records))
	for _, record := range m.records {
		out = append(out, clonePlan(record))
	}
	return out, nil
}

func (m *MemoryPlanRepository) Update(_ context.Context, record *WeeklyPlan) (*WeeklyPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[record.ID]; !ok {
		return nil, &NotFoundError{Resource: "plan", Key: record.ID.String()}
	}
	clone := clonePlan(record)
	m.records[clone.ID] = clone
	return clonePlan(clone), nil
}

func (m *MemoryPlanRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return &NotFoundError{Resource: "plan", Key: id.String()}
	}
	delete(m.records, id)
	return nil
}

// MemoryEntryRepository is an in-memory EntryRepository.
type MemoryEntryRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*PlanRecipe
}

func NewMemoryEntryRepository() *MemoryEntryRepository {
	return &MemoryEntryRepository{records: map[uuid.UUID]*PlanRecipe{}}
}

func (m *MemoryEntryRepository) Create(_ context.Context, record *PlanRecipe) (*PlanRecipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	clone := cloneEntry(record)
	m.records[clone.ID] = clone
	return cloneEntry(clone), nil
}

func (m *MemoryEntryRepository) GetByID(_ context.Context, id uuid.UUID) (*PlanRecipe, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[id]
	if !ok {
		return nil, &NotFoundError{Resource: "plan_recipe", Key: id.String()}
	}
	return cloneEntry(record), nil
}

func (m *MemoryEntryRepository) Update(_ context.Context, record *PlanRecipe) (*PlanRecipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[record.ID]; !ok {
		return nil, &NotFoundError{Resource: "plan_recipe", Key: record.ID.String()}
	}
	clone := cloneEntry(record)
	m.records[clone.ID] = clone
	return cloneEntry(clone), nil
}

func (m *MemoryEntryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return &NotFoundError{Resource: "plan_recipe", Key: id.String()}
	}
	delete(m.records, id)
	return nil
}

func (m *MemoryEntryRepository) ListByPlan(_ context.Context, planID uuid.UUID) ([]*PlanRecipe, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*PlanRecipe, 0)
	for _, record := range m.records {
		if record.PlanID == planID {
			out = append(out, cloneEntry(record))
		}
	}
	return out, nil
}

func clonePlan(in *WeeklyPlan) *WeeklyPlan {
	if in == nil {
		return nil
	}
	out := *in
	if len(in.Recipes) > 0 {
		out.Recipes = make([]*PlanRecipe, len(in.Recipes))
		for i, e := range in.Recipes {
			out.Recipes[i] = cloneEntry(e)
		}
	}
	return &out
}

func cloneEntry(in *PlanRecipe) *PlanRecipe {
	if in == nil {
		return nil
	}
	out := *in
	return &out
}
