package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kaio/entities"
	"kaio/pkg/planstore"
)

type SettingsCtrl struct{ store *planstore.Store }

func New(store *planstore.Store) *SettingsCtrl { return &SettingsCtrl{store} }

func (h *SettingsCtrl) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"resetTime": h.store.Snapshot().ResetTime,
		"options":   []entities.ResetTime{entities.ResetMidnight, entities.ResetSixAM},
	})
}

func (h *SettingsCtrl) PutResetTime(c echo.Context) error {
	var req struct {
		ResetTime entities.ResetTime `json:"resetTime"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.store.SetResetTime(req.ResetTime); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"resetTime": req.ResetTime})
}

// Clear wipes everything except the reset-time preference. The confirm
// flag stands in for the UI's confirmation dialog.
func (h *SettingsCtrl) Clear(c echo.Context) error {
	var req struct {
		Confirm bool `json:"confirm"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if !req.Confirm {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "confirm required"})
	}
	h.store.ClearAllData()
	return c.JSON(http.StatusOK, map[string]string{"status": "cleared"})
}
