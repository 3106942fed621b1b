package serviceImp

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"kaio/entities"
	"kaio/pkg/ai"
	"kaio/pkg/planstore"
)

var ErrNoGoals = errors.New("no goals set")
var ErrGenerationInFlight = errors.New("a generation is already running")

// kbContext is the slice of the knowledge base the planner needs.
type kbContext interface {
	Context(query string, maxLen int) string
}

type PlanSvc struct {
	store    *planstore.Store
	llm      ai.Client
	kb       kbContext
	inFlight atomic.Bool
	now      func() time.Time
}

func NewPlanService(store *planstore.Store, llm ai.Client, kb kbContext) *PlanSvc {
	return &PlanSvc{store: store, llm: llm, kb: kb, now: time.Now}
}

func (s *PlanSvc) kbCtxFor(snap entities.PlanSnapshot) string {
	if s.kb == nil {
		return ""
	}
	query := snap.Goals + " " + snap.UserProfile.FitnessGoals + " " + snap.UserProfile.DietaryPreferences
	if strings.TrimSpace(query) == "" {
		return ""
	}
	return s.kb.Context(query, 6000)
}

// GenerateDaily calls the generator and installs the result. Overlapping
// calls are refused so two generations cannot race to SetCurrentPlan.
func (s *PlanSvc) GenerateDaily(ctx context.Context) (*entities.DailyPlan, error) {
	snap := s.store.Snapshot()
	if strings.TrimSpace(snap.Goals) == "" {
		return nil, ErrNoGoals
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrGenerationInFlight
	}
	defer s.inFlight.Store(false)

	plan, err := s.llm.GenerateDailyPlan(ctx, snap.UserProfile, snap.Goals, s.kbCtxFor(snap))
	if err != nil {
		return nil, err
	}
	s.store.SetCurrentPlan(*plan)
	s.store.SetLastGenerated(s.now())
	return plan, nil
}

// GenerateWeekly installs the seven-day plan and its grocery list, and
// makes the current weekday's plan the active daily plan.
func (s *PlanSvc) GenerateWeekly(ctx context.Context) (*entities.WeeklyPlan, error) {
	snap := s.store.Snapshot()
	if strings.TrimSpace(snap.Goals) == "" {
		return nil, ErrNoGoals
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrGenerationInFlight
	}
	defer s.inFlight.Store(false)

	days, drafts, err := s.llm.GenerateWeeklyPlan(ctx, snap.UserProfile, snap.Goals, s.kbCtxFor(snap))
	if err != nil {
		return nil, err
	}

	now := s.now()
	weekly := entities.WeeklyPlan{
		StartDate: mondayOf(now).Format("2006-01-02"),
		Days:      days,
	}
	items := make([]entities.GroceryItem, 0, len(drafts))
	for _, d := range drafts {
		items = append(items, entities.GroceryItem{
			ID:       uuid.NewString(),
			Name:     d.Name,
			Category: entities.NormalizeGroceryCategory(d.Category),
		})
	}

	s.store.SetWeeklyPlan(weekly)
	s.store.SetGroceryList(items)
	if today, ok := days[entities.Weekdays[entities.DayIndexFor(now)]]; ok {
		s.store.SetCurrentPlan(today)
	}
	s.store.SetLastGenerated(now)
	return &weekly, nil
}

func (s *PlanSvc) CheckExpiry() bool {
	return s.store.CheckAndRegeneratePlan()
}

func mondayOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -entities.DayIndexFor(t))
}
