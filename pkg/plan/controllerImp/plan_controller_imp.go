package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"kaio/entities"
	"kaio/pkg/plan/service"
	"kaio/pkg/plan/serviceImp"
	"kaio/pkg/planstore"
)

type PlanCtrl struct {
	store *planstore.Store
	svc   service.PlanService
}

func NewPlanCtrl(store *planstore.Store, svc service.PlanService) *PlanCtrl {
	return &PlanCtrl{store: store, svc: svc}
}

func (h *PlanCtrl) Get(c echo.Context) error {
	snap := h.store.Snapshot()
	return c.JSON(http.StatusOK, map[string]any{
		"currentPlan":        snap.CurrentPlan,
		"weeklyPlan":         snap.WeeklyPlan,
		"currentDayIndex":    snap.CurrentDayIndex,
		"currentDay":         entities.Weekdays[snap.CurrentDayIndex],
		"completedChecklist": snap.CompletedChecklist,
		"lastGenerated":      snap.LastGenerated,
	})
}

func generationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, serviceImp.ErrNoGoals):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "set your goals first"})
	case errors.Is(err, serviceImp.ErrGenerationInFlight):
		return c.JSON(http.StatusConflict, map[string]string{"error": "a generation is already running"})
	default:
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
}

func (h *PlanCtrl) Generate(c echo.Context) error {
	plan, err := h.svc.GenerateDaily(c.Request().Context())
	if err != nil {
		return generationError(c, err)
	}
	return c.JSON(http.StatusCreated, plan)
}

func (h *PlanCtrl) GenerateWeekly(c echo.Context) error {
	weekly, err := h.svc.GenerateWeekly(c.Request().Context())
	if err != nil {
		return generationError(c, err)
	}
	return c.JSON(http.StatusCreated, weekly)
}

func (h *PlanCtrl) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"regenerate": h.svc.CheckExpiry()})
}

func (h *PlanCtrl) SetDay(c echo.Context) error {
	var req struct {
		Index int `json:"index"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.store.SetCurrentDayIndex(req.Index); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return h.day(c, req.Index)
}

func (h *PlanCtrl) NextDay(c echo.Context) error {
	return h.day(c, h.store.NextDay())
}

func (h *PlanCtrl) PreviousDay(c echo.Context) error {
	return h.day(c, h.store.PreviousDay())
}

func (h *PlanCtrl) day(c echo.Context, index int) error {
	return c.JSON(http.StatusOK, map[string]any{
		"currentDayIndex": index,
		"currentDay":      entities.Weekdays[index],
	})
}

func (h *PlanCtrl) ToggleChecklist(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad index"})
	}
	if err := h.store.ToggleChecklistItem(index); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"completedChecklist": h.store.Snapshot().CompletedChecklist})
}
