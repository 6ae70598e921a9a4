package planner

import (
	"errors"
	"fmt"
)

var (
	ErrPlanIDRequired   = errors.New("planner: plan id required")
	ErrRecipeIDRequired = errors.New("planner: recipe id required")
	ErrWeekStartInvalid = errors.New("planner: week start must be a Monday")
	ErrWeekExists       = errors.New("planner: a plan already exists for that week")
	ErrDayOutOfRange    = errors.New("planner: day of week must be between 1 and 7")
	ErrEntryNotInPlan   = errors.New("planner: entry does not belong to the plan")
)

// NotFoundError reports a missing planner entity by resource and lookup key.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return "planner: not found"
	}
	return fmt.Sprintf("planner: %s not found: %s", e.Resource, e.Key)
}

// IsNotFound reports whether err wraps a planner NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
