package ai

import (
	"context"
	"strings"
	"testing"

	"kaio/entities"
)

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced no lang", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"preamble", "Here is your plan:\n{\"a\":1}", `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractJSON(tc.in); got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestParseDailyPlan(t *testing.T) {
	content := "```json\n" + `{
		"wake_time": "06:00",
		"hydration": "3L",
		"meals": [{"name": "Oats", "calories": 400, "protein": 30, "details": "with milk"}],
		"workout": "Upper body",
		"checklist": ["hydrate", "train", "sleep early"]
	}` + "\n```"

	plan, err := parseDailyPlan(content)
	if err != nil {
		t.Fatalf("parseDailyPlan: %v", err)
	}
	if plan.WakeTime != "06:00" {
		t.Errorf("Expected wake time 06:00, got %q", plan.WakeTime)
	}
	if len(plan.Checklist) != 3 {
		t.Errorf("Expected 3 checklist items, got %d", len(plan.Checklist))
	}
}

func TestParseDailyPlanRejectsEmptyChecklist(t *testing.T) {
	if _, err := parseDailyPlan(`{"wake_time":"06:00","meals":[],"checklist":[]}`); err == nil {
		t.Fatal("Expected error for empty checklist")
	}
}

func TestParseDailyPlanRejectsNegativeMacros(t *testing.T) {
	in := `{"wake_time":"06:00","meals":[{"name":"x","calories":-1,"protein":5}],"checklist":["a"]}`
	if _, err := parseDailyPlan(in); err == nil {
		t.Fatal("Expected error for negative calories")
	}
}

func TestParseWeeklyPlanRequiresAllDays(t *testing.T) {
	in := `{"days":{"Monday":{"checklist":["a"]}},"grocery_list":[]}`
	_, _, err := parseWeeklyPlan(in)
	if err == nil || !strings.Contains(err.Error(), "missing") {
		t.Fatalf("Expected missing-day error, got %v", err)
	}
}

func TestParseWeeklyPlanNormalizesCategories(t *testing.T) {
	var b strings.Builder
	b.WriteString(`{"days":{`)
	for i, day := range entities.Weekdays {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`"` + day + `":{"checklist":["a"]}`)
	}
	b.WriteString(`},"grocery_list":[{"name":"Kombucha","category":"fermented"}]}`)

	_, grocery, err := parseWeeklyPlan(b.String())
	if err != nil {
		t.Fatalf("parseWeeklyPlan: %v", err)
	}
	if grocery[0].Category != "other" {
		t.Errorf("Expected unknown category folded to other, got %q", grocery[0].Category)
	}
}

func TestMockClient(t *testing.T) {
	mock := NewMock()

	plan, err := mock.GenerateDailyPlan(context.Background(), entities.UserProfile{HasBeard: true}, "cut fat", "")
	if err != nil {
		t.Fatalf("GenerateDailyPlan: %v", err)
	}
	if len(plan.Checklist) == 0 {
		t.Error("Expected a non-empty checklist")
	}
	if plan.BeardCare == "" {
		t.Error("Expected beard care for a bearded profile")
	}

	days, grocery, err := mock.GenerateWeeklyPlan(context.Background(), entities.UserProfile{}, "bulk", "")
	if err != nil {
		t.Fatalf("GenerateWeeklyPlan: %v", err)
	}
	if len(days) != 7 {
		t.Errorf("Expected 7 days, got %d", len(days))
	}
	for _, g := range grocery {
		if entities.NormalizeGroceryCategory(g.Category) != g.Category {
			t.Errorf("Mock produced unknown category %q", g.Category)
		}
	}
}
