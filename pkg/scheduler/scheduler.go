package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/robfig/cron/v3"

	"kaio/pkg/notify"
	"kaio/pkg/plan/service"
	"kaio/pkg/planstore"
)

// Scheduler runs the periodic cycle-boundary check. When the active plan
// has expired it nudges the user and, in auto mode, regenerates through
// the plan service so the in-flight guard still applies.
type Scheduler struct {
	cron    *cron.Cron
	store   *planstore.Store
	plans   service.PlanService
	sender  notify.Sender
	auto    bool
	everyMn int
}

func New(store *planstore.Store, plans service.PlanService, sender notify.Sender, everyMin int, auto bool) *Scheduler {
	if sender == nil {
		sender = notify.NewNoop()
	}
	return &Scheduler{
		cron:    cron.New(),
		store:   store,
		plans:   plans,
		sender:  sender,
		auto:    auto,
		everyMn: everyMin,
	}
}

func (s *Scheduler) Start() error {
	spec := fmt.Sprintf("@every %dm", s.everyMn)
	if _, err := s.cron.AddFunc(spec, s.Tick); err != nil {
		return fmt.Errorf("schedule check: %w", err)
	}
	s.cron.Start()
	log.Printf("[cron] expiry check every %dm (auto=%v)", s.everyMn, s.auto)
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// Tick is one check pass. Exported so a first pass can run at startup.
func (s *Scheduler) Tick() {
	if !s.plans.CheckExpiry() {
		return
	}
	log.Printf("[cron] plan expired")

	goals := s.store.Snapshot().Goals
	if strings.TrimSpace(goals) == "" {
		// regenerating without goals is rejected upstream of the store
		return
	}

	if !s.auto {
		if err := s.sender.SendMessage("Your daily plan has expired. Open kaio to regenerate it."); err != nil {
			log.Printf("[cron] notify failed: %v", err)
		}
		return
	}

	if _, err := s.plans.GenerateDaily(context.Background()); err != nil {
		log.Printf("[cron] auto-regenerate failed: %v", err)
		if err := s.sender.SendMessage("Automatic plan regeneration failed: " + err.Error()); err != nil {
			log.Printf("[cron] notify failed: %v", err)
		}
		return
	}
	if err := s.sender.SendMessage("A fresh daily plan is ready."); err != nil {
		log.Printf("[cron] notify failed: %v", err)
	}
}
