// pkg/ai/mock_client.go

package ai

import (
	"context"
	"strings"

	"kaio/entities"
)

type mockClient struct{}

// NewMock is the offline fallback used when no LLM is configured.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) GenerateDailyPlan(_ context.Context, profile entities.UserProfile, goals, _ string) (*entities.DailyPlan, error) {
	plan := entities.DailyPlan{
		WakeTime:  "06:30",
		Hydration: "3L",
		Meals: []entities.Meal{
			{Name: "Oatmeal with whey", Calories: 450, Protein: 35, Details: "80g oats, 1 scoop whey, berries"},
			{Name: "Chicken, rice and greens", Calories: 700, Protein: 55, Details: "200g chicken breast, 150g rice"},
			{Name: "Salmon and potatoes", Calories: 650, Protein: 40, Details: "180g salmon, side salad"},
		},
		Workout:   "45 min full body: squat, bench, row, 3x8 each",
		Checklist: []string{"Drink water on waking", "Train before noon", "Hit protein target", "10k steps", "Lights out by 23:00"},
	}
	if strings.Contains(strings.ToLower(goals), "cut") || strings.Contains(strings.ToLower(goals), "fat") {
		plan.Workout = "30 min zone-2 cardio + core circuit"
	}
	if profile.HasBeard {
		plan.BeardCare = "Wash with beard shampoo, apply oil after shower"
	}
	plan.LifestyleTips = []string{"No screens 30 min before bed", "Prep tomorrow's meals tonight"}
	return &plan, nil
}

func (m *mockClient) GenerateWeeklyPlan(ctx context.Context, profile entities.UserProfile, goals, kbCtx string) (map[string]entities.DailyPlan, []GroceryDraft, error) {
	days := make(map[string]entities.DailyPlan, 7)
	for i, day := range entities.Weekdays {
		p, err := m.GenerateDailyPlan(ctx, profile, goals, kbCtx)
		if err != nil {
			return nil, nil, err
		}
		if i%2 == 1 {
			p.Workout = "Rest day: 30 min walk + stretching"
		}
		days[day] = *p
	}
	grocery := []GroceryDraft{
		{Name: "Spinach", Category: "produce"},
		{Name: "Berries", Category: "produce"},
		{Name: "Chicken breast", Category: "protein"},
		{Name: "Salmon", Category: "protein"},
		{Name: "Greek yogurt", Category: "dairy"},
		{Name: "Oats", Category: "grains"},
		{Name: "Rice", Category: "grains"},
		{Name: "Olive oil", Category: "other"},
	}
	return days, grocery, nil
}
