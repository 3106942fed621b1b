package service

import (
	"context"

	"kaio/entities"
)

// PlanService sequences the generation collaborator against the store:
// call generator, then install plan + timestamp on success, touch nothing
// on failure.
type PlanService interface {
	GenerateDaily(ctx context.Context) (*entities.DailyPlan, error)
	GenerateWeekly(ctx context.Context) (*entities.WeeklyPlan, error)
	// CheckExpiry reports whether the active plan crossed its cycle
	// boundary (archiving it if so).
	CheckExpiry() bool
}
