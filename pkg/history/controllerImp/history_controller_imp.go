package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kaio/pkg/planstore"
)

type HistoryCtrl struct{ store *planstore.Store }

func New(store *planstore.Store) *HistoryCtrl { return &HistoryCtrl{store} }

// List returns archived plans, newest first, with a completion ratio per
// entry for the history view.
func (h *HistoryCtrl) List(c echo.Context) error {
	hist := h.store.Snapshot().History

	type entry struct {
		Date      string `json:"date"`
		Workout   string `json:"workout"`
		Meals     int    `json:"meals"`
		Completed int    `json:"completed"`
		Total     int    `json:"total"`
	}
	out := make([]entry, 0, len(hist))
	for _, e := range hist {
		done := 0
		for _, v := range e.CompletedChecklist {
			if v {
				done++
			}
		}
		out = append(out, entry{
			Date:      e.Date.Format("2006-01-02 15:04"),
			Workout:   e.Plan.Workout,
			Meals:     len(e.Plan.Meals),
			Completed: done,
			Total:     len(e.CompletedChecklist),
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"entries": out, "count": len(out)})
}
