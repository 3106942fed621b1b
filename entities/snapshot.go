package entities

import "time"

// PlanSnapshot is the full persisted application state. It is written
// wholesale after every mutation and restored wholesale at startup.
type PlanSnapshot struct {
	UserProfile        UserProfile   `json:"userProfile"`
	Goals              string        `json:"goals"`
	CurrentPlan        *DailyPlan    `json:"currentPlan"`
	WeeklyPlan         *WeeklyPlan   `json:"weeklyPlan"`
	CurrentDayIndex    int           `json:"currentDayIndex"` // 0-6 for Monday-Sunday
	GroceryList        []GroceryItem `json:"groceryList"`
	LastGenerated      *time.Time    `json:"lastGenerated"`
	History            []PlanHistory `json:"history"`
	CompletedChecklist []bool        `json:"completedChecklist"`
	ResetTime          ResetTime     `json:"resetTime"`
}

// SnapshotRecord is the sqlite row holding one serialized PlanSnapshot.
type SnapshotRecord struct {
	Name      string `gorm:"primaryKey" json:"name"`
	Data      []byte `json:"-"`
	UpdatedAt time.Time
}
