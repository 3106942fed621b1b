package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"kaio/entities"
)

const systemPrompt = "You are a personal daily-planning coach covering nutrition, training, hydration and grooming. Reply ONLY valid JSON."

func renderProfile(p entities.UserProfile) string {
	b, _ := json.Marshal(p)
	return string(b)
}

func renderDailyPrompt(profile entities.UserProfile, goals, kbCtx string) string {
	return fmt.Sprintf(`Create a one-day plan for the user below.
Rules:
- meals must carry realistic calories and protein grams (non-negative integers)
- the checklist is 5-8 short actionable task labels
- include beard_care only if the profile mentions a beard
- reply ONLY JSON with this exact shape:
{"wake_time":"06:30","hydration":"3L","meals":[{"name":"...","calories":450,"protein":30,"details":"..."}],"workout":"...","checklist":["..."],"beard_care":"...","lifestyle_tips":["..."]}

GOALS: %s

PROFILE: %s

NOTES:
%s
`, goals, renderProfile(profile), kbCtx)
}

func renderWeeklyPrompt(profile entities.UserProfile, goals, kbCtx string) string {
	return fmt.Sprintf(`Create a seven-day plan (Monday through Sunday) for the user below, plus one grocery list covering the whole week.
Rules:
- every weekday gets a full day plan in the same shape as a daily plan
- grocery categories are exactly: produce, protein, dairy, grains, other
- reply ONLY JSON with this exact shape:
{"days":{"Monday":{"wake_time":"06:30","hydration":"3L","meals":[{"name":"...","calories":450,"protein":30,"details":"..."}],"workout":"...","checklist":["..."]},"Tuesday":{}, "...":{}},"grocery_list":[{"name":"...","category":"produce"}]}

GOALS: %s

PROFILE: %s

NOTES:
%s
`, goals, renderProfile(profile), kbCtx)
}

// extractJSON strips markdown fences some models wrap around JSON replies.
func extractJSON(content string) string {
	c := strings.TrimSpace(content)
	if strings.HasPrefix(c, "```") {
		c = strings.TrimPrefix(c, "```json")
		c = strings.TrimPrefix(c, "```")
		if i := strings.LastIndex(c, "```"); i >= 0 {
			c = c[:i]
		}
		c = strings.TrimSpace(c)
	}
	if start := strings.Index(c, "{"); start > 0 {
		c = c[start:]
	}
	return c
}

func parseDailyPlan(content string) (*entities.DailyPlan, error) {
	var plan entities.DailyPlan
	if err := json.Unmarshal([]byte(extractJSON(content)), &plan); err != nil {
		return nil, fmt.Errorf("parse daily plan: %v / raw: %s", err, content)
	}
	if len(plan.Checklist) == 0 {
		return nil, fmt.Errorf("daily plan has no checklist / raw: %s", content)
	}
	for i, m := range plan.Meals {
		if m.Calories < 0 || m.Protein < 0 {
			return nil, fmt.Errorf("meal %d has negative macros", i)
		}
	}
	return &plan, nil
}

type weeklyPayload struct {
	Days        map[string]entities.DailyPlan `json:"days"`
	GroceryList []GroceryDraft                `json:"grocery_list"`
}

func parseWeeklyPlan(content string) (map[string]entities.DailyPlan, []GroceryDraft, error) {
	var payload weeklyPayload
	if err := json.Unmarshal([]byte(extractJSON(content)), &payload); err != nil {
		return nil, nil, fmt.Errorf("parse weekly plan: %v / raw: %s", err, content)
	}
	for _, day := range entities.Weekdays {
		if _, ok := payload.Days[day]; !ok {
			return nil, nil, fmt.Errorf("weekly plan missing %s", day)
		}
	}
	for i := range payload.GroceryList {
		payload.GroceryList[i].Category = entities.NormalizeGroceryCategory(payload.GroceryList[i].Category)
	}
	return payload.Days, payload.GroceryList, nil
}
