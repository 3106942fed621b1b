package planstore

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"kaio/entities"
)

type memoryRepo struct {
	saved   *entities.PlanSnapshot
	loadErr error
	saveErr error
	saves   int
}

func (m *memoryRepo) Load() (*entities.PlanSnapshot, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.saved, nil
}

func (m *memoryRepo) Save(s *entities.PlanSnapshot) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = s
	return nil
}

func newTestStore(t *testing.T) (*Store, *memoryRepo) {
	t.Helper()
	repo := &memoryRepo{}
	return New(repo), repo
}

func samplePlan(items int) entities.DailyPlan {
	checklist := make([]string, items)
	for i := range checklist {
		checklist[i] = fmt.Sprintf("task %d", i)
	}
	return entities.DailyPlan{
		WakeTime:  "06:30",
		Hydration: "3L",
		Meals: []entities.Meal{
			{Name: "Oats", Calories: 450, Protein: 25, Details: "with whey"},
			{Name: "Chicken and rice", Calories: 700, Protein: 55, Details: "lunch"},
		},
		Workout:   "Push day",
		Checklist: checklist,
	}
}

func TestSetCurrentPlanReinitsChecklist(t *testing.T) {
	s, _ := newTestStore(t)

	if err := s.ToggleChecklistItem(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("Expected ErrIndexOutOfRange before any plan, got %v", err)
	}

	s.SetCurrentPlan(samplePlan(4))
	if err := s.ToggleChecklistItem(2); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	snap := s.Snapshot()
	if len(snap.CompletedChecklist) != 4 {
		t.Fatalf("Expected checklist of 4, got %d", len(snap.CompletedChecklist))
	}
	if !snap.CompletedChecklist[2] {
		t.Error("Expected item 2 toggled on")
	}

	// replacing the plan discards completion state
	s.SetCurrentPlan(samplePlan(6))
	snap = s.Snapshot()
	if len(snap.CompletedChecklist) != 6 {
		t.Fatalf("Expected checklist of 6 after replacement, got %d", len(snap.CompletedChecklist))
	}
	for i, v := range snap.CompletedChecklist {
		if v {
			t.Errorf("Expected item %d false after replacement", i)
		}
	}
}

func TestToggleChecklistItemBounds(t *testing.T) {
	s, _ := newTestStore(t)
	s.SetCurrentPlan(samplePlan(3))

	if err := s.ToggleChecklistItem(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange for -1, got %v", err)
	}
	if err := s.ToggleChecklistItem(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange for 3, got %v", err)
	}
	if len(s.Snapshot().CompletedChecklist) != 3 {
		t.Error("Out-of-range toggle must not grow the checklist")
	}
}

func TestDayNavigationWraps(t *testing.T) {
	s, _ := newTestStore(t)

	for start := 0; start <= 6; start++ {
		if err := s.SetCurrentDayIndex(start); err != nil {
			t.Fatalf("SetCurrentDayIndex(%d): %v", start, err)
		}
		s.NextDay()
		s.PreviousDay()
		if got := s.Snapshot().CurrentDayIndex; got != start {
			t.Errorf("next+prev from %d: expected %d, got %d", start, start, got)
		}
		s.PreviousDay()
		s.NextDay()
		if got := s.Snapshot().CurrentDayIndex; got != start {
			t.Errorf("prev+next from %d: expected %d, got %d", start, start, got)
		}
	}

	s.SetCurrentDayIndex(6)
	if got := s.NextDay(); got != 0 {
		t.Errorf("Expected wrap 6 -> 0, got %d", got)
	}
	s.SetCurrentDayIndex(0)
	if got := s.PreviousDay(); got != 6 {
		t.Errorf("Expected wrap 0 -> 6, got %d", got)
	}
}

func TestSetCurrentDayIndexBounds(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.SetCurrentDayIndex(7); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange for 7, got %v", err)
	}
	if err := s.SetCurrentDayIndex(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange for -1, got %v", err)
	}
}

func TestToggleGroceryItem(t *testing.T) {
	s, _ := newTestStore(t)
	s.SetGroceryList([]entities.GroceryItem{
		{ID: "a", Name: "Spinach", Category: "produce"},
		{ID: "b", Name: "Chicken breast", Category: "protein", Purchased: true},
		{ID: "c", Name: "Oats", Category: "grains"},
	})

	s.ToggleGroceryItem("b")
	if s.Snapshot().GroceryList[1].Purchased {
		t.Error("Expected item b toggled off")
	}
	s.ToggleGroceryItem("b")

	before := s.Snapshot().GroceryList
	s.ToggleGroceryItem("missing") // benign no-op
	after := s.Snapshot().GroceryList
	if len(before) != len(after) {
		t.Fatal("Unknown id must not change list length")
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Item %d changed by no-op toggle: %+v vs %+v", i, before[i], after[i])
		}
	}
	if !after[1].Purchased {
		t.Error("Double toggle must restore original purchased value")
	}
}

func TestHistoryBounded(t *testing.T) {
	s, _ := newTestStore(t)

	for i := 0; i < 31; i++ {
		plan := samplePlan(1)
		plan.Workout = fmt.Sprintf("workout %d", i)
		s.AddToHistory(plan, []bool{true})
	}

	hist := s.Snapshot().History
	if len(hist) != 30 {
		t.Fatalf("Expected 30 entries after 31 adds, got %d", len(hist))
	}
	if hist[0].Plan.Workout != "workout 30" {
		t.Errorf("Expected newest entry first, got %q", hist[0].Plan.Workout)
	}
	for _, h := range hist {
		if h.Plan.Workout == "workout 0" {
			t.Error("Oldest entry should have been evicted")
		}
	}
}

func TestClearAllDataKeepsResetTime(t *testing.T) {
	s, repo := newTestStore(t)

	if err := s.SetResetTime(entities.ResetMidnight); err != nil {
		t.Fatalf("SetResetTime: %v", err)
	}
	s.SetGoals("lose fat")
	s.SetUserProfile(entities.UserProfile{Age: "30"})
	s.SetCurrentPlan(samplePlan(2))
	s.SetLastGenerated(time.Now())

	s.ClearAllData()
	snap := s.Snapshot()
	if snap.Goals != "" {
		t.Errorf("Expected goals cleared, got %q", snap.Goals)
	}
	if snap.UserProfile != (entities.UserProfile{}) {
		t.Errorf("Expected profile cleared, got %+v", snap.UserProfile)
	}
	if snap.CurrentPlan != nil || snap.WeeklyPlan != nil || snap.LastGenerated != nil {
		t.Error("Expected plans and lastGenerated cleared")
	}
	if len(snap.History) != 0 || len(snap.CompletedChecklist) != 0 || len(snap.GroceryList) != 0 {
		t.Error("Expected history, checklist and grocery list cleared")
	}
	if snap.ResetTime != entities.ResetMidnight {
		t.Errorf("Expected reset time preserved as 00:00, got %q", snap.ResetTime)
	}

	// the cleared state must be the one on disk too
	if repo.saved == nil || repo.saved.Goals != "" {
		t.Error("Expected cleared snapshot persisted")
	}
}

func TestSetResetTimeRejectsUnknownValue(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.SetResetTime("07:30"); !errors.Is(err, ErrInvalidResetTime) {
		t.Errorf("Expected ErrInvalidResetTime, got %v", err)
	}
}

func at(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02T15:04:05", value, time.Local)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", value, err)
	}
	return ts
}

func TestCheckAndRegeneratePlanWindow(t *testing.T) {
	cases := []struct {
		name    string
		reset   entities.ResetTime
		lastGen string
		now     string
		want    bool
	}{
		{"before boundary, same cycle", entities.ResetSixAM, "2024-01-01T05:00:00", "2024-01-01T05:30:00", false},
		{"boundary crossed within the day", entities.ResetSixAM, "2024-01-01T05:00:00", "2024-01-01T07:00:00", true},
		{"generated after boundary, still valid", entities.ResetSixAM, "2024-01-01T07:00:00", "2024-01-02T05:59:00", false},
		{"generated after boundary, next crossing", entities.ResetSixAM, "2024-01-01T07:00:00", "2024-01-02T06:00:00", true},
		{"midnight reset, same day", entities.ResetMidnight, "2024-01-01T10:00:00", "2024-01-01T23:59:00", false},
		{"midnight reset, next day", entities.ResetMidnight, "2024-01-01T10:00:00", "2024-01-02T00:00:00", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestStore(t)
			if err := s.SetResetTime(tc.reset); err != nil {
				t.Fatalf("SetResetTime: %v", err)
			}
			s.SetCurrentPlan(samplePlan(2))
			s.SetLastGenerated(at(t, tc.lastGen))
			s.now = func() time.Time { return at(t, tc.now) }

			if got := s.CheckAndRegeneratePlan(); got != tc.want {
				t.Errorf("Expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestCheckAndRegenerateNoPlanEver(t *testing.T) {
	s, _ := newTestStore(t)
	if !s.CheckAndRegeneratePlan() {
		t.Fatal("Expected true when nothing was ever generated")
	}
	if len(s.Snapshot().History) != 0 {
		t.Error("Expected no archival when there is no plan")
	}
}

func TestCheckAndRegenerateArchivesOnce(t *testing.T) {
	s, _ := newTestStore(t)
	s.SetCurrentPlan(samplePlan(3))
	s.ToggleChecklistItem(1)
	s.SetLastGenerated(at(t, "2024-01-01T08:00:00"))
	s.now = func() time.Time { return at(t, "2024-01-03T09:00:00") } // two full days later

	if !s.CheckAndRegeneratePlan() {
		t.Fatal("Expected expiry two days later")
	}
	snap := s.Snapshot()
	if len(snap.History) != 1 {
		t.Fatalf("Expected exactly one archived entry, got %d", len(snap.History))
	}
	if got := snap.History[0].CompletedChecklist; len(got) != 3 || !got[1] {
		t.Errorf("Expected completion state archived with the plan, got %v", got)
	}
	if snap.CurrentPlan == nil {
		t.Error("Expiry detection must not drop the current plan itself")
	}
}

func TestStoreRestoresFromRepository(t *testing.T) {
	repo := &memoryRepo{}
	first := New(repo)
	first.SetGoals("bulk clean")
	first.SetCurrentPlan(samplePlan(2))

	second := New(repo)
	snap := second.Snapshot()
	if snap.Goals != "bulk clean" {
		t.Errorf("Expected goals restored, got %q", snap.Goals)
	}
	if snap.CurrentPlan == nil || len(snap.CompletedChecklist) != 2 {
		t.Error("Expected plan and checklist restored")
	}
}

func TestCommitFailureDegradesToMemory(t *testing.T) {
	repo := &memoryRepo{saveErr: errors.New("disk full")}
	s := New(repo)
	s.SetGoals("still works")
	if s.Snapshot().Goals != "still works" {
		t.Error("Expected mutation to survive a failed commit")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s, _ := newTestStore(t)
	s.SetCurrentPlan(samplePlan(2))
	s.SetGroceryList([]entities.GroceryItem{{ID: "a", Name: "Eggs", Category: "protein"}})

	snap := s.Snapshot()
	snap.GroceryList[0].Purchased = true
	snap.CompletedChecklist[0] = true
	snap.CurrentPlan.Checklist[0] = "mutated"

	fresh := s.Snapshot()
	if fresh.GroceryList[0].Purchased || fresh.CompletedChecklist[0] {
		t.Error("Snapshot mutation leaked into the store")
	}
	if fresh.CurrentPlan.Checklist[0] == "mutated" {
		t.Error("Plan mutation leaked into the store")
	}
}
