package planstore

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"kaio/entities"
	"kaio/pkg/planstore/repository"
)

// SnapshotName is the key of the single persisted blob.
const SnapshotName = "kaio-plan-storage"

const historyLimit = 30

var ErrIndexOutOfRange = errors.New("index out of range")
var ErrInvalidResetTime = errors.New("invalid reset time")

// Store is the single source of truth for all planning state. Commands run
// under one mutex so each mutation is an atomic step; every mutation ends
// with a commit of the full snapshot through the repository.
type Store struct {
	mu   sync.Mutex
	snap entities.PlanSnapshot
	repo repository.SnapshotRepository
	now  func() time.Time
}

// New builds a Store restored from the repository, or defaulted when
// nothing has been persisted yet.
func New(repo repository.SnapshotRepository) *Store {
	s := &Store{repo: repo, now: time.Now}
	if repo != nil {
		if snap, err := repo.Load(); err != nil {
			log.Printf("[store] load failed, starting fresh: %v", err)
		} else if snap != nil {
			s.snap = *snap
			if !s.snap.ResetTime.Valid() {
				s.snap.ResetTime = entities.ResetSixAM
			}
			return s
		}
	}
	s.snap = defaultSnapshot(s.now())
	return s
}

func defaultSnapshot(now time.Time) entities.PlanSnapshot {
	return entities.PlanSnapshot{
		GroceryList:        []entities.GroceryItem{},
		History:            []entities.PlanHistory{},
		CompletedChecklist: []bool{},
		CurrentDayIndex:    entities.DayIndexFor(now),
		ResetTime:          entities.ResetSixAM,
	}
}

// Persistence is best-effort: a failed commit keeps the state in memory
// for the session rather than failing the command.
func (s *Store) commit() {
	if s.repo == nil {
		return
	}
	snap := cloneSnapshot(s.snap)
	if err := s.repo.Save(&snap); err != nil {
		log.Printf("[store] persist failed, keeping state in memory: %v", err)
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() entities.PlanSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSnapshot(s.snap)
}

func (s *Store) SetUserProfile(p entities.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.UserProfile = p
	s.commit()
}

func (s *Store) SetGoals(goals string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Goals = goals
	s.commit()
}

// SetCurrentPlan replaces the active plan and reallocates the completion
// vector to match its checklist, all false.
func (s *Store) SetCurrentPlan(p entities.DailyPlan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	plan := cloneDailyPlan(p)
	s.snap.CurrentPlan = &plan
	s.snap.CompletedChecklist = make([]bool, len(plan.Checklist))
	s.commit()
}

func (s *Store) SetWeeklyPlan(p entities.WeeklyPlan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	plan := cloneWeeklyPlan(p)
	s.snap.WeeklyPlan = &plan
	s.commit()
}

func (s *Store) SetCurrentDayIndex(i int) error {
	if i < 0 || i > 6 {
		return fmt.Errorf("day index %d: %w", i, ErrIndexOutOfRange)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.CurrentDayIndex = i
	s.commit()
	return nil
}

func (s *Store) NextDay() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.CurrentDayIndex = (s.snap.CurrentDayIndex + 1) % 7
	s.commit()
	return s.snap.CurrentDayIndex
}

func (s *Store) PreviousDay() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap.CurrentDayIndex == 0 {
		s.snap.CurrentDayIndex = 6
	} else {
		s.snap.CurrentDayIndex--
	}
	s.commit()
	return s.snap.CurrentDayIndex
}

func (s *Store) SetGroceryList(items []entities.GroceryItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.GroceryList = append([]entities.GroceryItem{}, items...)
	s.commit()
}

// ToggleGroceryItem flips the purchased flag of the matching item. An
// unknown id is a benign no-op (stale UI reference).
func (s *Store) ToggleGroceryItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snap.GroceryList {
		if s.snap.GroceryList[i].ID == id {
			s.snap.GroceryList[i].Purchased = !s.snap.GroceryList[i].Purchased
			s.commit()
			return
		}
	}
}

func (s *Store) SetLastGenerated(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.LastGenerated = &t
	s.commit()
}

func (s *Store) ToggleChecklistItem(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.snap.CompletedChecklist) {
		return fmt.Errorf("checklist index %d of %d: %w", index, len(s.snap.CompletedChecklist), ErrIndexOutOfRange)
	}
	s.snap.CompletedChecklist[index] = !s.snap.CompletedChecklist[index]
	s.commit()
	return nil
}

// AddToHistory prepends an entry stamped now and trims to the newest 30.
func (s *Store) AddToHistory(plan entities.DailyPlan, completed []bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addToHistoryLocked(plan, completed)
	s.commit()
}

func (s *Store) addToHistoryLocked(plan entities.DailyPlan, completed []bool) {
	entry := entities.PlanHistory{
		Date:               s.now(),
		Plan:               cloneDailyPlan(plan),
		CompletedChecklist: append([]bool{}, completed...),
	}
	s.snap.History = append([]entities.PlanHistory{entry}, s.snap.History...)
	if len(s.snap.History) > historyLimit {
		s.snap.History = s.snap.History[:historyLimit]
	}
}

// CheckAndRegeneratePlan reports whether the active plan has crossed its
// cycle boundary and should be replaced. On expiry the current plan, if
// any, is archived with its completion state; a plan that never existed
// expires without archival. No other mutation happens here.
func (s *Store) CheckAndRegeneratePlan() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap.LastGenerated == nil {
		return true
	}

	lastGen := *s.snap.LastGenerated
	resetHour := s.snap.ResetTime.Hour()

	// Start of the cycle lastGen fell into: the boundary on its calendar
	// day, stepped back a day if that boundary is after lastGen.
	lastReset := time.Date(lastGen.Year(), lastGen.Month(), lastGen.Day(), resetHour, 0, 0, 0, lastGen.Location())
	if lastGen.Before(lastReset) {
		lastReset = lastReset.AddDate(0, 0, -1)
	}
	nextReset := lastReset.AddDate(0, 0, 1)

	if !s.now().Before(nextReset) {
		if s.snap.CurrentPlan != nil {
			s.addToHistoryLocked(*s.snap.CurrentPlan, s.snap.CompletedChecklist)
			s.commit()
		}
		return true
	}
	return false
}

func (s *Store) SetResetTime(t entities.ResetTime) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidResetTime, t)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.ResetTime = t
	s.commit()
	return nil
}

// ClearAllData resets everything to defaults except the reset time, which
// is a standing preference rather than plan data.
func (s *Store) ClearAllData() {
	s.mu.Lock()
	defer s.mu.Unlock()
	keep := s.snap.ResetTime
	s.snap = defaultSnapshot(s.now())
	s.snap.ResetTime = keep
	s.commit()
}

func cloneSnapshot(in entities.PlanSnapshot) entities.PlanSnapshot {
	out := in
	if in.CurrentPlan != nil {
		p := cloneDailyPlan(*in.CurrentPlan)
		out.CurrentPlan = &p
	}
	if in.WeeklyPlan != nil {
		p := cloneWeeklyPlan(*in.WeeklyPlan)
		out.WeeklyPlan = &p
	}
	if in.LastGenerated != nil {
		t := *in.LastGenerated
		out.LastGenerated = &t
	}
	out.GroceryList = append([]entities.GroceryItem{}, in.GroceryList...)
	out.CompletedChecklist = append([]bool{}, in.CompletedChecklist...)
	out.History = make([]entities.PlanHistory, len(in.History))
	for i, h := range in.History {
		out.History[i] = entities.PlanHistory{
			Date:               h.Date,
			Plan:               cloneDailyPlan(h.Plan),
			CompletedChecklist: append([]bool{}, h.CompletedChecklist...),
		}
	}
	return out
}

func cloneDailyPlan(in entities.DailyPlan) entities.DailyPlan {
	out := in
	out.Meals = append([]entities.Meal{}, in.Meals...)
	out.Checklist = append([]string{}, in.Checklist...)
	if in.LifestyleTips != nil {
		out.LifestyleTips = append([]string{}, in.LifestyleTips...)
	}
	return out
}

func cloneWeeklyPlan(in entities.WeeklyPlan) entities.WeeklyPlan {
	out := entities.WeeklyPlan{StartDate: in.StartDate, Days: make(map[string]entities.DailyPlan, len(in.Days))}
	for day, p := range in.Days {
		out.Days[day] = cloneDailyPlan(p)
	}
	return out
}
