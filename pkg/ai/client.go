// pkg/ai/client.go

package ai

import (
	"context"

	"kaio/entities"
)

// GroceryDraft is a grocery item as proposed by the model, before the
// service assigns ids and purchase state.
type GroceryDraft struct {
	Name     string `json:"name"`
	Category string `json:"category"` // produce|protein|dairy|grains|other
}

type Client interface {
	// GenerateDailyPlan turns the goals text (plus profile and optional
	// knowledge-base context) into a structured plan for one day.
	GenerateDailyPlan(ctx context.Context, profile entities.UserProfile, goals, kbCtx string) (*entities.DailyPlan, error)

	// GenerateWeeklyPlan produces seven day plans plus a grocery draft
	// covering the week.
	GenerateWeeklyPlan(ctx context.Context, profile entities.UserProfile, goals, kbCtx string) (map[string]entities.DailyPlan, []GroceryDraft, error)
}
