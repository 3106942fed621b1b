package entities

import "time"

type Meal struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Details  string `json:"details"`
}

type DailyPlan struct {
	WakeTime      string   `json:"wake_time"` // HH:MM
	Hydration     string   `json:"hydration"`
	Meals         []Meal   `json:"meals"`
	Workout       string   `json:"workout"`
	Checklist     []string `json:"checklist"`
	BeardCare     string   `json:"beard_care,omitempty"`
	LifestyleTips []string `json:"lifestyle_tips,omitempty"`
}

type WeeklyPlan struct {
	StartDate string               `json:"startDate"` // ISO date of the week's Monday
	Days      map[string]DailyPlan `json:"days"`      // key is day name: "Monday", "Tuesday", ...
}

// PlanHistory archives an expired plan together with the checklist
// completion state it was retired with.
type PlanHistory struct {
	Date               time.Time `json:"date"`
	Plan               DailyPlan `json:"plan"`
	CompletedChecklist []bool    `json:"completedChecklist"`
}

type ResetTime string

const (
	ResetMidnight ResetTime = "00:00"
	ResetSixAM    ResetTime = "06:00"
)

// Valid reports whether t is one of the two supported cycle boundaries.
func (t ResetTime) Valid() bool {
	return t == ResetMidnight || t == ResetSixAM
}

// Hour returns the boundary hour-of-day.
func (t ResetTime) Hour() int {
	if t == ResetMidnight {
		return 0
	}
	return 6
}

// Weekdays in plan order, Monday first.
var Weekdays = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DayIndexFor maps a calendar day onto the 0-6 Monday-first index.
func DayIndexFor(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 6
	}
	return wd - 1
}
